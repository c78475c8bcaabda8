package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Catalog dan availability bisa dilihat tanpa login
	r.Get("/api/rooms", roomHandler.GetRooms)
	r.Get("/api/rooms/available", roomHandler.SearchAvailable)
	r.Get("/api/rooms/{id}", roomHandler.GetRoomByID)
	r.Get("/api/rooms/{id}/availability", roomHandler.CheckAvailability)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/rooms", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.Staff, log))

		// Admin room management endpoints
		r.Post("/", roomHandler.CreateRoom)           // POST /api/admin/rooms
		r.Patch("/{id}/rate", roomHandler.UpdateRate) // PATCH /api/admin/rooms/{id}/rate
	})
}
