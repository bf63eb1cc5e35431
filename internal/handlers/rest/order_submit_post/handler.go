package order_submit_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"mozcommerce/internal/generated/dto"
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
	var submitDTO dto.PaymentSubmit
	err := json.NewDecoder(r.Body).Decode(&submitDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assessment, err := h.service.SubmitForPayment(r.Context(), submitDTO.OrderID, submitDTO.Credential)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrOrderNotPending):
			w.WriteHeader(http.StatusConflict)
		default:
			// провайдер недоступен, заказ остался pending
			w.WriteHeader(http.StatusBadGateway)
		}
		return
	}

	response := dto.RiskAssessment{
		Approved: assessment.Approved,
		Score:    assessment.Score,
		Reason:   assessment.Reason,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
