package order

import "time"

type OrderDB struct {
	ID                   string
	BuyerID              string
	BuyerPhone           string
	BuyerVerified        bool
	BuyerCreatedAt       time.Time
	ShippingAddress      string
	ShippingCity         string
	PaymentMethod        string
	Status               string
	Subtotal             float64
	Total                float64
	Commission           float64
	SellerAmount         float64
	DeliveryConfirmed    bool
	TrackingCode         *string
	PaymentReference     *string
	PaymentTransactionID *string
	PaymentAmount        *float64
	PaymentConfirmedAt   *time.Time
	CreatedAt            time.Time
	PaidAt               *time.Time
	DeliveredAt          *time.Time
	PaymentReleasedAt    *time.Time
	PaymentInitiatedAt   *time.Time
	FlaggedAt            *time.Time
	UpdatedAt            time.Time
}

// scanTargets keeps a single source of truth for the column order shared by
// every SELECT and RETURNING in this package.
func (o *OrderDB) scanTargets() []interface{} {
	return []interface{}{
		&o.ID,
		&o.BuyerID,
		&o.BuyerPhone,
		&o.BuyerVerified,
		&o.BuyerCreatedAt,
		&o.ShippingAddress,
		&o.ShippingCity,
		&o.PaymentMethod,
		&o.Status,
		&o.Subtotal,
		&o.Total,
		&o.Commission,
		&o.SellerAmount,
		&o.DeliveryConfirmed,
		&o.TrackingCode,
		&o.PaymentReference,
		&o.PaymentTransactionID,
		&o.PaymentAmount,
		&o.PaymentConfirmedAt,
		&o.CreatedAt,
		&o.PaidAt,
		&o.DeliveredAt,
		&o.PaymentReleasedAt,
		&o.PaymentInitiatedAt,
		&o.FlaggedAt,
		&o.UpdatedAt,
	}
}

type ItemDB struct {
	OrderID     string
	ProductID   string
	SellerID    string
	SellerPhone string
	UnitPrice   float64
	Quantity    int64
}
