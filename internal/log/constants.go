package log

const (
	KeyAppName      = "app"
	KeyTag          = "tag"
	KeyProcess      = "process"
	KeyConfig       = "config"
	KeyRequestID    = "requestId"
	KeyRequestURL   = "requestURL"
	KeyHTTPMethod   = "httpMethod"
	KeyStatusCode   = "statusCode"
	KeyProductID    = "productId"
	KeyProduct      = "product"
	KeyProducts     = "products"
	KeyCacheKey     = "cacheKey"
	KeyNotification = "notification"
	KeyTraceID      = "traceId"
	KeySpanID       = "spanId"
)
