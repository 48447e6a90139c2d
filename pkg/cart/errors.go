package cart

import "errors"

var (
	// ErrInvalidQuantity indicates a requested quantity below 1
	ErrInvalidQuantity = errors.New("cart.invalid_quantity")
)
