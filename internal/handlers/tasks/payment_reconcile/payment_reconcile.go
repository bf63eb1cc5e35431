package payment_reconcile

import (
	"context"
	"time"

	"mozcommerce/pkg/logger"
)

type Service interface {
	FlagStalePayments(ctx context.Context) (int64, error)
}

type PaymentReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewPaymentReconcile(log logger.Logger, service Service, interval time.Duration) *PaymentReconcile {
	return &PaymentReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *PaymentReconcile) TTL() time.Duration {
	return p.interval
}

func (p *PaymentReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	rowsAffected, err := p.service.FlagStalePayments(ctxWithTimeout)

	if rowsAffected > 0 {
		p.log.With(
			logger.NewField("stale_orders", rowsAffected),
		).Warn("payment reconcile flagged unconfirmed charges")
	}

	return err
}

func (p *PaymentReconcile) Info() string {
	return "payment reconcile"
}
