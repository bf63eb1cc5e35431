package whatsapp

import (
	"fmt"

	"mozcommerce/internal/entities"
)

func orderPlacedMessage(order entities.Order) string {
	return fmt.Sprintf(
		"🎉 Novo pedido #%s!\n\nTotal: %s\nItens: %d\n\nAcesse o painel do vendedor para mais detalhes.",
		order.ID, FormatPrice(order.Total), len(order.Items),
	)
}

func paymentConfirmedMessage(order entities.Order) string {
	return fmt.Sprintf(
		"✅ Pagamento confirmado!\n\nPedido #%s\nValor: %s\n\nPrepare os produtos para envio.",
		order.ID, FormatPrice(order.Total),
	)
}

func deliveryUpdateMessage(order entities.Order) string {
	return fmt.Sprintf(
		"📦 Atualização de entrega\n\nPedido #%s\nStatus: Entregue\n\nRastreamento: %s",
		order.ID, order.TrackingCode,
	)
}

func paymentReleasedMessage(order entities.Order) string {
	return fmt.Sprintf(
		"💰 Pagamento liberado!\n\nPedido #%s\nValor: %s\n\nO valor foi transferido para a sua conta.",
		order.ID, FormatPrice(order.SellerAmount),
	)
}
