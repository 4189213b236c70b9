package order

import (
	"context"

	"coffeestore/internal/domain"
)

type PlaceInput struct {
	Owner         string
	Address       string
	PaymentMethod string
	PaymentStatus string
}

// Repository is the append-only order ledger. Orders are never mutated after
// creation.
type Repository interface {
	// PlaceFromCart converts the owner's cart into an order and clears the
	// cart in one transaction. It locks the cart row for the duration, so a
	// concurrent call for the same owner waits and then fails with
	// domain.ErrEmptyCart. Returns domain.ErrEmptyCart when the cart is
	// missing or has no lines, domain.ErrUnresolvableItem when any line
	// references a deleted product.
	PlaceFromCart(ctx context.Context, in PlaceInput) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
}
