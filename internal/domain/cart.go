package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is the per-owner in-progress selection. Exactly one cart exists per
// owner; product references are IDs only, never embedded product data.
type Cart struct {
	ID        string     `json:"id"`
	Owner     string     `json:"-"`
	Items     []CartItem `json:"items"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CartItem struct {
	ProductID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// HydratedCart is the display view of a cart: each line joined against the
// catalog for name, image and current price. Lines whose product no longer
// resolves are excluded from the view and the subtotal, but stay in storage.
type HydratedCart struct {
	Items    []HydratedItem  `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type HydratedItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Image     string          `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}
