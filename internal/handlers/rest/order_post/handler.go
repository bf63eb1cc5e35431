package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"mozcommerce/internal/entities"
	"mozcommerce/internal/generated/dto"
	"mozcommerce/internal/handlers/rest/converters"
	"mozcommerce/internal/service/order"
	"mozcommerce/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]entities.LineItem, len(orderCreateDTO.Items))
	for i, item := range orderCreateDTO.Items {
		items[i] = entities.LineItem{
			ProductID:   item.ProductID,
			SellerID:    item.SellerID,
			SellerPhone: item.SellerPhone,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		}
	}

	orderCreateEntity := entities.OrderCreate{
		Items: items,
		Buyer: entities.Buyer{
			ID:        orderCreateDTO.Buyer.ID,
			Phone:     orderCreateDTO.Buyer.Phone,
			Verified:  orderCreateDTO.Buyer.Verified,
			CreatedAt: orderCreateDTO.Buyer.CreatedAt,
		},
		Shipping: entities.Shipping{
			Address: orderCreateDTO.Shipping.Address,
			City:    orderCreateDTO.Shipping.City,
		},
		PaymentMethod: entities.PaymentMethodType(orderCreateDTO.PaymentMethod),
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderCreateEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrNoItems),
			errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrInvalidUnitPrice),
			errors.Is(err, order.ErrInvalidPaymentMethod):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := converters.OrderToDTO(*orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
