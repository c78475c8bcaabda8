package adaptor

import (
	"net/http"

	"hotel-booking/internal/usecase"
	apperrors "hotel-booking/pkg/errors"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Room        *RoomHandler
	Reservation *ReservationHandler
	Guest       *GuestHandler
	Payment     *PaymentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Room:        NewRoomHandler(service.Room, log),
		Reservation: NewReservationHandler(service.Reservation, log),
		Guest:       NewGuestHandler(service.Guest, log),
		Payment:     NewPaymentHandler(service.Payment, log),
	}
}

// respondError logs the failed operation and writes the error envelope.
// Client errors log at warn, server errors at error.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	appErr := apperrors.AsAppError(err)

	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
	} else {
		log.Warn(operation+" rejected",
			zap.String("code", appErr.Code),
			zap.String("reason", appErr.Message))
	}

	apperrors.WriteError(w, appErr)
}
