package usecase

import (
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/ledger"
	"hotel-booking/pkg/cache"
	apperrors "hotel-booking/pkg/errors"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Room        RoomService
	Reservation ReservationService
	Guest       GuestService
	Payment     PaymentService
}

func NewService(repo *repository.Repository, ledger *ledger.Ledger, availability *cache.AvailabilityCache, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		Room:        NewRoomService(ledger, availability, log),
		Reservation: NewReservationService(repo, ledger, availability, log),
		Guest:       NewGuestService(repo.Guest, ledger, log),
		Payment:     NewPaymentService(repo.Payment, ledger, log),
	}
}

// validationError converts validator output into a typed validation error.
func validationError(errs map[string]string) error {
	details := make(map[string]any, len(errs))
	for field, message := range errs {
		details[field] = message
	}
	return apperrors.Validation("validation failed", details)
}
