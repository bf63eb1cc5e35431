package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrNoItems               = errors.New("order has no items")
	ErrInvalidQuantity       = errors.New("line item quantity must be positive")
	ErrInvalidUnitPrice      = errors.New("line item unit price must not be negative")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")

	ErrOrderNotFound            = errors.New("order not found")
	ErrOrderNotPending          = errors.New("order is not pending")
	ErrDeliveryAlreadyConfirmed = errors.New("delivery already confirmed")
)
