package request

import (
	"github.com/shopspring/decimal"
)

func init() {
	// The backend expects price as a JSON number, not a string.
	decimal.MarshalJSONWithoutQuotes = true
}

// CreateProduct carries the user-supplied fields of a product. The id and
// timestamps are always assigned server side.
type CreateProduct struct {
	SKU      string          `validate:"required,min=3" json:"sku"`
	Name     string          `validate:"required,min=2" json:"name"`
	Quantity int             `validate:"min=0"          json:"quantity"`
	Price    decimal.Decimal `validate:"price"          json:"price"`
}

// UpdateProduct addresses an existing product by id.
type UpdateProduct struct {
	CreateProduct
	ID int64 `validate:"required" json:"id"`
}
