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

type GuestHandler struct {
	service usecase.GuestService
	log     *zap.Logger
}

func NewGuestHandler(service usecase.GuestService, log *zap.Logger) *GuestHandler {
	return &GuestHandler{
		service: service,
		log:     log.With(zap.String("handler", "guest")),
	}
}

// CreateGuest handles POST /api/guests
func (h *GuestHandler) CreateGuest(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGuestRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.log, apperrors.InvalidInput("invalid request body"), "create guest")
		return
	}

	guest, err := h.service.CreateGuest(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create guest")
		return
	}

	utils.ResponseCreated(w, "Guest created successfully", guest)
}

// GetGuests handles GET /api/guests
func (h *GuestHandler) GetGuests(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := request.NewPaginatedRequest(
		utils.ParseInt(query.Get("page"), 1),
		utils.ParseInt(query.Get("per_page"), 10),
	)

	// Search by name atau phone (optional)
	var search *string
	if value := query.Get("search"); value != "" {
		search = &value
	}

	guests, err := h.service.GetGuests(r.Context(), req, search)
	if err != nil {
		respondError(w, h.log, err, "get guests")
		return
	}

	utils.ResponseSuccess(w, "Guests retrieved successfully", guests)
}

// GetGuestByID handles GET /api/guests/{id}
func (h *GuestHandler) GetGuestByID(w http.ResponseWriter, r *http.Request) {
	guestID := chi.URLParam(r, "id")
	if guestID == "" {
		respondError(w, h.log, apperrors.InvalidInput("guest id is required"), "get guest")
		return
	}

	guest, err := h.service.GetGuestByID(r.Context(), guestID)
	if err != nil {
		respondError(w, h.log, err, "get guest")
		return
	}

	utils.ResponseSuccess(w, "Guest retrieved successfully", guest)
}

// GetGuestReservations handles GET /api/guests/{id}/reservations
func (h *GuestHandler) GetGuestReservations(w http.ResponseWriter, r *http.Request) {
	guestID := chi.URLParam(r, "id")
	if guestID == "" {
		respondError(w, h.log, apperrors.InvalidInput("guest id is required"), "get guest reservations")
		return
	}

	reservations, err := h.service.GetGuestReservations(r.Context(), guestID)
	if err != nil {
		respondError(w, h.log, err, "get guest reservations")
		return
	}

	utils.ResponseSuccess(w, "Guest reservations retrieved successfully", reservations)
}
