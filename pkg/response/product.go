package response

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// The backend serializes price as a JSON number, not a string.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is the server-owned inventory record. The client never mutates it
// directly; it only caches the collection returned by the list endpoint.
type Product struct {
	ID        int64           `json:"id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
