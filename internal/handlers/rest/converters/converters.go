// Package converters maps domain entities onto transport DTOs shared by the
// REST handlers.
package converters

import (
	"mozcommerce/internal/entities"
	"mozcommerce/internal/generated/dto"
)

func OrderToDTO(orderEntity entities.Order) dto.Order {
	orderDTO := dto.Order{
		ID: orderEntity.ID,
		Buyer: dto.Buyer{
			ID:        orderEntity.Buyer.ID,
			Phone:     orderEntity.Buyer.Phone,
			Verified:  orderEntity.Buyer.Verified,
			CreatedAt: orderEntity.Buyer.CreatedAt,
		},
		Shipping: dto.Shipping{
			Address: orderEntity.Shipping.Address,
			City:    orderEntity.Shipping.City,
		},
		PaymentMethod:     orderEntity.PaymentMethod.String(),
		Status:            orderEntity.Status.String(),
		Subtotal:          orderEntity.Subtotal,
		Total:             orderEntity.Total,
		Commission:        orderEntity.Commission,
		SellerAmount:      orderEntity.SellerAmount,
		DeliveryConfirmed: orderEntity.DeliveryConfirmed,
		TrackingCode:      orderEntity.TrackingCode,
		CreatedAt:         orderEntity.CreatedAt,
		PaidAt:            orderEntity.PaidAt,
		DeliveredAt:       orderEntity.DeliveredAt,
		PaymentReleasedAt: orderEntity.PaymentReleasedAt,
	}

	orderDTO.Items = make([]dto.OrderItem, len(orderEntity.Items))
	for i, item := range orderEntity.Items {
		orderDTO.Items[i] = dto.OrderItem{
			ProductID:   item.ProductID,
			SellerID:    item.SellerID,
			SellerPhone: item.SellerPhone,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		}
	}

	if orderEntity.Payment != nil {
		orderDTO.Payment = &dto.PaymentConfirmation{
			Method:        orderEntity.Payment.Method.String(),
			Amount:        orderEntity.Payment.Amount,
			Reference:     orderEntity.Payment.Reference,
			TransactionID: orderEntity.Payment.TransactionID,
			ConfirmedAt:   orderEntity.Payment.ConfirmedAt,
		}
	}

	return orderDTO
}
