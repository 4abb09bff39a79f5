package order

import "errors"

var (
	ErrEmptyItems      = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrInvalidPrice    = errors.New("total price must be greater than zero")
	ErrMissingField    = errors.New("required field is missing")
	ErrUnknownStatus   = errors.New("unknown order status")
	ErrNotFound        = errors.New("order not found")
)
