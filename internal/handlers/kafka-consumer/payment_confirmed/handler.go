package payment_confirmed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"mozcommerce/internal/entities"
	orderservice "mozcommerce/internal/service/order"
	"mozcommerce/pkg/logger"
)

type confirmedEvent struct {
	OrderID       string    `json:"order_id"`
	Method        string    `json:"method"`
	Amount        float64   `json:"amount"`
	Reference     string    `json:"reference"`
	TransactionID string    `json:"transaction_id"`
	ConfirmedAt   time.Time `json:"confirmed_at"`
	Status        string    `json:"status"`
}

const statusCompleted = "completed"

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("payment.confirmed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("payment.confirmed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event confirmedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.confirmed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("reference", event.Reference),
		logger.NewField("offset", message.Offset),
	)

	if event.Status != "" && event.Status != statusCompleted {
		msgLog.With(
			logger.NewField("status", event.Status),
		).Warn("payment.confirmed handler skipping non-completed event")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("payment.confirmed processing")

	confirmation := entities.PaymentConfirmation{
		OrderID:       event.OrderID,
		Method:        entities.PaymentMethodType(event.Method),
		Amount:        event.Amount,
		Reference:     event.Reference,
		TransactionID: event.TransactionID,
		ConfirmedAt:   event.ConfirmedAt,
	}

	order, err := h.orderService.ConfirmPayment(ctx, confirmation)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmed handler unknown order")

		case errors.Is(err, orderservice.ErrOrderNotPending):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmed handler order not payable")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmed handler failed to process confirmation")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("current_status", order.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("payment.confirmed: processed")

	sess.MarkMessage(message, "")
	return false
}
