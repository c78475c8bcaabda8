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

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// CreateReservation handles POST /api/reservations
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReservationRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.log, apperrors.InvalidInput("invalid request body"), "create reservation")
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "Reservation created successfully", reservation)
}

// GetReservations handles GET /api/reservations
func (h *ReservationHandler) GetReservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.NewPaginatedRequest(
		utils.ParseInt(query.Get("page"), 1),
		utils.ParseInt(query.Get("per_page"), 10),
	)

	// filter: all, active, upcoming, completed, cancelled
	reservations, err := h.service.GetReservations(r.Context(), req, query.Get("filter"))
	if err != nil {
		respondError(w, h.log, err, "get reservations")
		return
	}

	utils.ResponseSuccess(w, "Reservations retrieved successfully", reservations)
}

// GetReservationByID handles GET /api/reservations/{id}
func (h *ReservationHandler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		respondError(w, h.log, apperrors.InvalidInput("reservation id is required"), "get reservation")
		return
	}

	reservation, err := h.service.GetReservationByID(r.Context(), reservationID)
	if err != nil {
		respondError(w, h.log, err, "get reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation retrieved successfully", reservation)
}

// CheckIn handles POST /api/reservations/{id}/check-in
func (h *ReservationHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		respondError(w, h.log, apperrors.InvalidInput("reservation id is required"), "check in")
		return
	}

	reservation, err := h.service.CheckIn(r.Context(), reservationID)
	if err != nil {
		respondError(w, h.log, err, "check in")
		return
	}

	utils.ResponseSuccess(w, "Guest checked in", reservation)
}

// CheckOut handles POST /api/reservations/{id}/check-out
func (h *ReservationHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		respondError(w, h.log, apperrors.InvalidInput("reservation id is required"), "check out")
		return
	}

	reservation, err := h.service.CheckOut(r.Context(), reservationID)
	if err != nil {
		respondError(w, h.log, err, "check out")
		return
	}

	utils.ResponseSuccess(w, "Guest checked out", reservation)
}

// Cancel handles POST /api/reservations/{id}/cancel
func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		respondError(w, h.log, apperrors.InvalidInput("reservation id is required"), "cancel reservation")
		return
	}

	reservation, err := h.service.Cancel(r.Context(), reservationID)
	if err != nil {
		respondError(w, h.log, err, "cancel reservation")
		return
	}

	utils.ResponseSuccess(w, "Reservation cancelled", reservation)
}
