package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/usecase"
	apperrors "hotel-booking/pkg/errors"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// RecordPayment handles POST /api/payments
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req request.RecordPaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.log, apperrors.InvalidInput("invalid request body"), "record payment")
		return
	}

	payment, err := h.service.RecordPayment(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "record payment")
		return
	}

	utils.ResponseCreated(w, "Payment recorded successfully", payment)
}

// GetMethods handles GET /api/payment-methods
func (h *PaymentHandler) GetMethods(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "Payment methods retrieved successfully", h.service.GetMethods())
}

// GetReservationPayments handles GET /api/reservations/{id}/payments
func (h *PaymentHandler) GetReservationPayments(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		respondError(w, h.log, apperrors.InvalidInput("reservation id is required"), "get reservation payments")
		return
	}

	payments, err := h.service.GetReservationPayments(r.Context(), reservationID)
	if err != nil {
		respondError(w, h.log, err, "get reservation payments")
		return
	}

	utils.ResponseSuccess(w, "Payments retrieved successfully", payments)
}
