package entities

import "time"

type Order struct {
	ID                string
	Items             []LineItem
	Buyer             Buyer
	Shipping          Shipping
	PaymentMethod     PaymentMethodType
	Status            OrderStatusType
	Subtotal          float64
	Total             float64
	Commission        float64
	SellerAmount      float64
	DeliveryConfirmed bool
	TrackingCode      string
	Payment           *PaymentConfirmation
	CreatedAt         time.Time
	PaidAt            *time.Time
	DeliveredAt       *time.Time
	PaymentReleasedAt *time.Time
	// start of the manual reconciliation window for unconfirmed charges
	PaymentInitiatedAt *time.Time
	FlaggedAt          *time.Time
	UpdatedAt          time.Time
}

type LineItem struct {
	ProductID   string
	SellerID    string
	SellerPhone string
	UnitPrice   float64
	Quantity    int64
}

type Shipping struct {
	Address string
	City    string
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderPaid      OrderStatusType = "paid"
	OrderCompleted OrderStatusType = "completed"
	OrderRejected  OrderStatusType = "rejected"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type PaymentMethodType string

const (
	MPesa      PaymentMethodType = "mpesa"
	EMola      PaymentMethodType = "emola"
	MKesh      PaymentMethodType = "mkesh"
	Visa       PaymentMethodType = "visa"
	Mastercard PaymentMethodType = "mastercard"
)

func (m PaymentMethodType) String() string {
	return string(m)
}

type OrderModify struct {
	ID                 *string
	Status             *OrderStatusType
	Commission         *float64
	SellerAmount       *float64
	DeliveryConfirmed  *bool
	TrackingCode       *string
	Payment            *PaymentConfirmation
	PaidAt             *time.Time
	DeliveredAt        *time.Time
	PaymentReleasedAt  *time.Time
	PaymentInitiatedAt *time.Time
}

type OrderCreate struct {
	Items         []LineItem
	Buyer         Buyer
	Shipping      Shipping
	PaymentMethod PaymentMethodType
}
