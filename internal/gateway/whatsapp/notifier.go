package whatsapp

import (
	"context"

	"mozcommerce/internal/entities"
	"mozcommerce/pkg/logger"
)

// Notifier maps pipeline events onto WhatsApp messages. Send failures are
// logged and swallowed, a lost notification must never fail an order.
type Notifier struct {
	sender sender
	logger logger.Logger
}

func NewNotifier(sender sender, log logger.Logger) *Notifier {
	return &Notifier{
		sender: sender,
		logger: log,
	}
}

func (n *Notifier) OrderPlaced(ctx context.Context, order entities.Order) {
	n.sendToSellers(ctx, order, orderPlacedMessage(order))
}

func (n *Notifier) PaymentConfirmed(ctx context.Context, order entities.Order) {
	n.sendToSellers(ctx, order, paymentConfirmedMessage(order))
}

func (n *Notifier) DeliveryUpdate(ctx context.Context, order entities.Order) {
	n.send(ctx, order.ID, order.Buyer.Phone, deliveryUpdateMessage(order))
}

func (n *Notifier) PaymentReleased(ctx context.Context, order entities.Order) {
	n.sendToSellers(ctx, order, paymentReleasedMessage(order))
}

func (n *Notifier) sendToSellers(ctx context.Context, order entities.Order, message string) {
	// один продавец может держать несколько позиций заказа
	seen := make(map[string]struct{}, len(order.Items))
	for _, item := range order.Items {
		if _, ok := seen[item.SellerPhone]; ok {
			continue
		}
		seen[item.SellerPhone] = struct{}{}

		n.send(ctx, order.ID, item.SellerPhone, message)
	}
}

func (n *Notifier) send(ctx context.Context, orderID, phone, message string) {
	if phone == "" {
		return
	}

	err := n.sender.Send(ctx, phone, message)
	if err != nil {
		n.logger.Error("whatsapp notification failed",
			logger.NewField("order_id", orderID),
			logger.NewField("error", err.Error()),
		)
	}
}
