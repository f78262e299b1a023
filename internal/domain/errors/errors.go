package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrEmptyTitle         = errors.New("order title must not be empty")
)
