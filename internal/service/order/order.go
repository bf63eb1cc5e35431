package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mozcommerce/internal/entities"
)

type Config struct {
	// CommissionRate is the platform cut applied to the order total on payment.
	CommissionRate float64
	// ReconcileWindow bounds how long an initiated charge may stay
	// unconfirmed before the order is flagged for manual reconciliation.
	ReconcileWindow time.Duration
}

type Service struct {
	repository Repository
	risk       RiskEvaluator
	gateway    PaymentGateway
	notifier   Notifier
	txManager  TxManager
	config     Config
}

func New(
	repository Repository,
	risk RiskEvaluator,
	gateway PaymentGateway,
	notifier Notifier,
	txManager TxManager,
	config Config,
) *Service {
	return &Service{
		repository: repository,
		risk:       risk,
		gateway:    gateway,
		notifier:   notifier,
		txManager:  txManager,
		config:     config,
	}
}

func (s *Service) CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	if err := validateCreate(orderCreate); err != nil {
		return nil, err
	}

	total := 0.0
	for _, item := range orderCreate.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	commission := total * s.config.CommissionRate

	order := entities.Order{
		ID:            uuid.NewString(),
		Items:         orderCreate.Items,
		Buyer:         orderCreate.Buyer,
		Shipping:      orderCreate.Shipping,
		PaymentMethod: orderCreate.PaymentMethod,
		Status:        entities.OrderPending,
		Subtotal:      total,
		Total:         total,
		Commission:    commission,
		SellerAmount:  total - commission,
		CreatedAt:     time.Now().UTC(),
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repository.Create(ctx, order)
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.notifier.OrderPlaced(ctx, order)

	return &order, nil
}

func (s *Service) SubmitForPayment(ctx context.Context, orderID, credential string) (*entities.RiskAssessment, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var (
		assessment entities.RiskAssessment
		order      *entities.Order
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if order.Status != entities.OrderPending {
			return ErrOrderNotPending
		}

		// проверка риска строго до обращения к платежному шлюзу
		assessment = s.risk.Check(*order, time.Now().UTC())
		if assessment.Approved {
			return nil
		}

		rejected := entities.OrderRejected
		_, err = s.repository.Update(ctx, entities.OrderModify{
			ID:     &order.ID,
			Status: &rejected,
		})
		if err != nil {
			return fmt.Errorf("reject order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !assessment.Approved {
		// шлюз не вызываем — отклоненные заказы не тратят ресурсы провайдера
		return &assessment, nil
	}

	_, err = s.gateway.Charge(ctx, entities.ChargeRequest{
		OrderID:    order.ID,
		Method:     order.PaymentMethod,
		Amount:     order.Total,
		Credential: credential,
	})
	if err != nil {
		// заказ остается pending, вызывающий может повторить инициацию
		return &assessment, fmt.Errorf("initiate payment: %w", err)
	}

	initiatedAt := time.Now().UTC()
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.repository.Update(ctx, entities.OrderModify{
			ID:                 &order.ID,
			PaymentInitiatedAt: &initiatedAt,
		})
		return err
	})
	if err != nil {
		return &assessment, fmt.Errorf("mark payment initiated: %w", err)
	}

	return &assessment, nil
}

func (s *Service) ConfirmPayment(ctx context.Context, confirmation entities.PaymentConfirmation) (*entities.Order, error) {
	if !isValidOrderID(confirmation.OrderID) {
		return nil, ErrInvalidOrderID
	}

	var (
		updated *entities.Order
		applied bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, confirmation.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		switch order.Status {
		case entities.OrderPaid, entities.OrderCompleted:
			// повторный callback от шлюза, комиссия уже применена
			updated = order
			return nil
		case entities.OrderRejected:
			return ErrOrderNotPending
		case entities.OrderPending:
		}

		paid := entities.OrderPaid
		commission := order.Total * s.config.CommissionRate
		sellerAmount := order.Total - commission
		paidAt := confirmation.ConfirmedAt

		updated, err = s.repository.Update(ctx, entities.OrderModify{
			ID:           &order.ID,
			Status:       &paid,
			Commission:   &commission,
			SellerAmount: &sellerAmount,
			Payment:      &confirmation,
			PaidAt:       &paidAt,
		})
		if err != nil {
			return fmt.Errorf("apply payment: %w", err)
		}
		applied = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	// уведомляем только при первом применении, повторы от Kafka молчат
	if applied {
		s.notifier.PaymentConfirmed(ctx, *updated)
	}

	return updated, nil
}

func (s *Service) ConfirmDelivery(ctx context.Context, orderID, trackingCode string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if order.DeliveryConfirmed {
			return ErrDeliveryAlreadyConfirmed
		}

		confirmed := true
		deliveredAt := time.Now().UTC()
		updated, err = s.repository.Update(ctx, entities.OrderModify{
			ID:                &order.ID,
			DeliveryConfirmed: &confirmed,
			TrackingCode:      &trackingCode,
			DeliveredAt:       &deliveredAt,
		})
		if err != nil {
			return fmt.Errorf("confirm delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.DeliveryUpdate(ctx, *updated)

	// релиз спекулятивный: до оплаты он просто no-op и отложится
	released, err := s.ReleasePayment(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("release after delivery: %w", err)
	}

	return released, nil
}

func (s *Service) ReleasePayment(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var (
		updated  *entities.Order
		released bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if order.Status != entities.OrderPaid || !order.DeliveryConfirmed {
			// guard-предусловие, не ошибка
			updated = order
			return nil
		}

		completed := entities.OrderCompleted
		releasedAt := time.Now().UTC()
		updated, err = s.repository.Update(ctx, entities.OrderModify{
			ID:                &order.ID,
			Status:            &completed,
			PaymentReleasedAt: &releasedAt,
		})
		if err != nil {
			return fmt.Errorf("release payment: %w", err)
		}
		released = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if released {
		s.notifier.PaymentReleased(ctx, *updated)
	}

	return updated, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *Service) GetOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return orders, nil
}

func (s *Service) FlagStalePayments(ctx context.Context) (int64, error) {
	initiatedBefore := time.Now().UTC().Add(-s.config.ReconcileWindow)

	flagged, err := s.repository.FlagStalePending(ctx, initiatedBefore)
	if err != nil {
		return 0, fmt.Errorf("flag stale payments: %w", err)
	}
	return flagged, nil
}
