package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates malformed or missing input.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidQuantity indicates a quantity below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrItemNotFound indicates a quantity update for a product not in the cart.
	ErrItemNotFound = errors.New("item not in cart")
	// ErrEmptyCart indicates checkout on a missing or empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrUnresolvableItem indicates a cart line whose product no longer exists
	// was seen during checkout.
	ErrUnresolvableItem = errors.New("cart references a product that no longer exists")
)
