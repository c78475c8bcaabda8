package repository

import (
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Room        RoomRepository
	Reservation ReservationRepository
	Guest       GuestRepository
	Staff       StaffRepository
	Session     SessionRepository
	Payment     PaymentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Room:        NewRoomRepository(db, log),
		Reservation: NewReservationRepository(db, log),
		Guest:       NewGuestRepository(db, log),
		Staff:       NewStaffRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Payment:     NewPaymentRepository(db, log),
	}
}
