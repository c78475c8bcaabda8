package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Login tanpa auth middleware
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	// Logout butuh session yang valid
	r.With(middleware.AuthSession(repo.Session, log)).Post("/api/logout", authHandler.Logout)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/staff", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.Staff, log))

		// POST /api/admin/staff - buat akun front desk / admin baru
		r.Post("/", authHandler.CreateStaff)
	})
}
