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

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// GetRooms handles GET /api/rooms
func (h *RoomHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	// Parse query parameters
	query := r.URL.Query()
	req := request.NewPaginatedRequest(
		utils.ParseInt(query.Get("page"), 1),
		utils.ParseInt(query.Get("per_page"), 10),
	)

	// Filter by category (optional)
	var category *string
	if value := query.Get("category"); value != "" {
		category = &value
	}

	rooms, err := h.service.GetRooms(r.Context(), req, category)
	if err != nil {
		respondError(w, h.log, err, "get rooms")
		return
	}

	utils.ResponseSuccess(w, "Rooms retrieved successfully", rooms)
}

// GetRoomByID handles GET /api/rooms/{id}
func (h *RoomHandler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		respondError(w, h.log, apperrors.InvalidInput("room id is required"), "get room")
		return
	}

	room, err := h.service.GetRoomByID(r.Context(), roomID)
	if err != nil {
		respondError(w, h.log, err, "get room")
		return
	}

	utils.ResponseSuccess(w, "Room retrieved successfully", room)
}

// SearchAvailable handles GET /api/rooms/available
func (h *RoomHandler) SearchAvailable(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var category *string
	if value := query.Get("category"); value != "" {
		category = &value
	}

	rooms, err := h.service.SearchAvailable(r.Context(), query.Get("check_in"), query.Get("check_out"), category)
	if err != nil {
		respondError(w, h.log, err, "search available rooms")
		return
	}

	utils.ResponseSuccess(w, "Available rooms retrieved successfully", rooms)
}

// CheckAvailability handles GET /api/rooms/{id}/availability
func (h *RoomHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		respondError(w, h.log, apperrors.InvalidInput("room id is required"), "check availability")
		return
	}

	query := r.URL.Query()
	availability, err := h.service.CheckAvailability(r.Context(), roomID, query.Get("check_in"), query.Get("check_out"))
	if err != nil {
		respondError(w, h.log, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "Availability checked", availability)
}

// CreateRoom handles POST /api/admin/rooms (admin only)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.log, apperrors.InvalidInput("invalid request body"), "create room")
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "Room created successfully", room)
}

// UpdateRate handles PATCH /api/admin/rooms/{id}/rate (admin only)
func (h *RoomHandler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		respondError(w, h.log, apperrors.InvalidInput("room id is required"), "update rate")
		return
	}

	var req request.UpdateRoomRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.log, apperrors.InvalidInput("invalid request body"), "update rate")
		return
	}

	room, err := h.service.UpdateRate(r.Context(), roomID, &req)
	if err != nil {
		respondError(w, h.log, err, "update rate")
		return
	}

	utils.ResponseSuccess(w, "Room rate updated successfully", room)
}
