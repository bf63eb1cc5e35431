package order

import (
	"strings"

	"mozcommerce/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidPaymentMethod(method entities.PaymentMethodType) bool {
	switch method {
	case entities.MPesa, entities.EMola, entities.MKesh, entities.Visa, entities.Mastercard:
		return true
	default:
		return false
	}
}

func validateCreate(orderCreate entities.OrderCreate) error {
	if len(orderCreate.Items) == 0 {
		return ErrNoItems
	}
	for _, item := range orderCreate.Items {
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
		if item.UnitPrice < 0 {
			return ErrInvalidUnitPrice
		}
	}
	if !isValidPaymentMethod(orderCreate.PaymentMethod) {
		return ErrInvalidPaymentMethod
	}
	if strings.TrimSpace(orderCreate.Buyer.ID) == "" ||
		strings.TrimSpace(orderCreate.Buyer.Phone) == "" {
		return ErrMissingRequiredFields
	}
	return nil
}
