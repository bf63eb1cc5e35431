//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"mozcommerce/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) error
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)

	FlagStalePending(ctx context.Context, initiatedBefore time.Time) (int64, error)
}

type RiskEvaluator interface {
	Check(order entities.Order, now time.Time) entities.RiskAssessment
}

type PaymentGateway interface {
	// Charge initiates a payment and returns the provider reference.
	// Confirmation arrives later on an independent path (see ConfirmPayment).
	Charge(ctx context.Context, req entities.ChargeRequest) (string, error)
}

// Notifier delivery is fire-and-forget, implementations never fail the pipeline.
type Notifier interface {
	OrderPlaced(ctx context.Context, order entities.Order)
	PaymentConfirmed(ctx context.Context, order entities.Order)
	DeliveryUpdate(ctx context.Context, order entities.Order)
	PaymentReleased(ctx context.Context, order entities.Order)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
