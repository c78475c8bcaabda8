package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// Daftar metode pembayaran yang didukung
	r.Get("/api/payment-methods", paymentHandler.GetMethods)

	// ==================== STAFF ROUTES ====================
	// Pencatatan pembayaran oleh front desk
	r.With(middleware.AuthSession(repo.Session, log)).Post("/api/payments", paymentHandler.RecordPayment)
}
