package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGuest(
	r chi.Router,
	guestHandler *adaptor.GuestHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== STAFF ROUTES ====================
	// Guest directory hanya untuk staff
	r.Route("/api/guests", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/", guestHandler.CreateGuest) // POST /api/guests
		r.Get("/", guestHandler.GetGuests)    // GET /api/guests?search=
		r.Get("/{id}", guestHandler.GetGuestByID)
		r.Get("/{id}/reservations", guestHandler.GetGuestReservations)
	})
}
