package cart

import (
	"context"

	"coffeestore/internal/domain"
)

// Repository persists one cart per owner. All mutating operations are atomic
// at the storage layer so concurrent calls for the same owner never lose an
// increment (no read-modify-write in application code).
type Repository interface {
	// EnsureByOwner returns the owner's cart, creating it if absent. Safe
	// under concurrent callers; never produces a second cart for an owner.
	EnsureByOwner(ctx context.Context, owner string) (*domain.Cart, error)
	// GetByOwner returns domain.ErrNotFound when the owner has no cart yet.
	GetByOwner(ctx context.Context, owner string) (*domain.Cart, error)
	// AddItem increments the line for productID by quantity, creating the
	// line if absent, in a single atomic statement.
	AddItem(ctx context.Context, cartID, productID string, quantity int) error
	// SetItemQuantity sets the absolute quantity of an existing line and
	// returns domain.ErrItemNotFound when the line does not exist.
	SetItemQuantity(ctx context.Context, cartID, productID string, quantity int) error
	// RemoveItem deletes the line if present; removing an absent line is a no-op.
	RemoveItem(ctx context.Context, cartID, productID string) error
}
