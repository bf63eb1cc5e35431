package order

import "mozcommerce/internal/entities"

func ToDomain(o *OrderDB, items []ItemDB) *entities.Order {
	if o == nil {
		return nil
	}

	orderEntity := &entities.Order{
		ID:    o.ID,
		Items: ToDomainItems(items),
		Buyer: entities.Buyer{
			ID:        o.BuyerID,
			Phone:     o.BuyerPhone,
			Verified:  o.BuyerVerified,
			CreatedAt: o.BuyerCreatedAt,
		},
		Shipping: entities.Shipping{
			Address: o.ShippingAddress,
			City:    o.ShippingCity,
		},
		PaymentMethod:      entities.PaymentMethodType(o.PaymentMethod),
		Status:             entities.OrderStatusType(o.Status),
		Subtotal:           o.Subtotal,
		Total:              o.Total,
		Commission:         o.Commission,
		SellerAmount:       o.SellerAmount,
		DeliveryConfirmed:  o.DeliveryConfirmed,
		CreatedAt:          o.CreatedAt,
		PaidAt:             o.PaidAt,
		DeliveredAt:        o.DeliveredAt,
		PaymentReleasedAt:  o.PaymentReleasedAt,
		PaymentInitiatedAt: o.PaymentInitiatedAt,
		FlaggedAt:          o.FlaggedAt,
		UpdatedAt:          o.UpdatedAt,
	}

	if o.TrackingCode != nil {
		orderEntity.TrackingCode = *o.TrackingCode
	}

	if o.PaymentReference != nil && o.PaymentConfirmedAt != nil {
		orderEntity.Payment = &entities.PaymentConfirmation{
			OrderID:     o.ID,
			Method:      entities.PaymentMethodType(o.PaymentMethod),
			Reference:   *o.PaymentReference,
			ConfirmedAt: *o.PaymentConfirmedAt,
		}
		if o.PaymentTransactionID != nil {
			orderEntity.Payment.TransactionID = *o.PaymentTransactionID
		}
		if o.PaymentAmount != nil {
			orderEntity.Payment.Amount = *o.PaymentAmount
		}
	}

	return orderEntity
}

func ToDomainItems(items []ItemDB) []entities.LineItem {
	lineItems := make([]entities.LineItem, 0, len(items))
	for _, item := range items {
		lineItems = append(lineItems, entities.LineItem{
			ProductID:   item.ProductID,
			SellerID:    item.SellerID,
			SellerPhone: item.SellerPhone,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}
	return lineItems
}

func FromDomain(o *entities.Order) (*OrderDB, []ItemDB) {
	if o == nil {
		return nil, nil
	}

	orderDB := &OrderDB{
		ID:                 o.ID,
		BuyerID:            o.Buyer.ID,
		BuyerPhone:         o.Buyer.Phone,
		BuyerVerified:      o.Buyer.Verified,
		BuyerCreatedAt:     o.Buyer.CreatedAt,
		ShippingAddress:    o.Shipping.Address,
		ShippingCity:       o.Shipping.City,
		PaymentMethod:      string(o.PaymentMethod),
		Status:             string(o.Status),
		Subtotal:           o.Subtotal,
		Total:              o.Total,
		Commission:         o.Commission,
		SellerAmount:       o.SellerAmount,
		DeliveryConfirmed:  o.DeliveryConfirmed,
		CreatedAt:          o.CreatedAt,
		PaidAt:             o.PaidAt,
		DeliveredAt:        o.DeliveredAt,
		PaymentReleasedAt:  o.PaymentReleasedAt,
		PaymentInitiatedAt: o.PaymentInitiatedAt,
		FlaggedAt:          o.FlaggedAt,
		UpdatedAt:          o.UpdatedAt,
	}
	if o.TrackingCode != "" {
		orderDB.TrackingCode = &o.TrackingCode
	}

	itemsDB := make([]ItemDB, 0, len(o.Items))
	for _, item := range o.Items {
		itemsDB = append(itemsDB, ItemDB{
			OrderID:     o.ID,
			ProductID:   item.ProductID,
			SellerID:    item.SellerID,
			SellerPhone: item.SellerPhone,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}

	return orderDB, itemsDB
}
