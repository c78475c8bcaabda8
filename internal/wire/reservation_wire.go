package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== STAFF ROUTES ====================
	// Semua operasi reservasi lewat front desk
	r.Route("/api/reservations", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/", reservationHandler.CreateReservation) // POST /api/reservations
		r.Get("/", reservationHandler.GetReservations)    // GET /api/reservations
		r.Get("/{id}", reservationHandler.GetReservationByID)

		// Lifecycle transitions
		r.Post("/{id}/check-in", reservationHandler.CheckIn)
		r.Post("/{id}/check-out", reservationHandler.CheckOut)
		r.Post("/{id}/cancel", reservationHandler.Cancel)

		// Payment history untuk satu reservasi
		r.Get("/{id}/payments", paymentHandler.GetReservationPayments)
	})
}
