package entities

import "time"

// PaymentConfirmation is immutable once received from the gateway.
type PaymentConfirmation struct {
	OrderID       string
	Method        PaymentMethodType
	Amount        float64
	Reference     string
	TransactionID string
	ConfirmedAt   time.Time
}

type ChargeRequest struct {
	OrderID    string
	Method     PaymentMethodType
	Amount     float64
	Credential string
}
