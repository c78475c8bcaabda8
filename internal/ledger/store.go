package ledger

import (
	"context"
	"time"

	"hotel-booking/internal/data/entity"

	"github.com/google/uuid"
)

// Store is the persistence collaborator the ledger writes through.
// The ledger loads the full state once at startup and persists every
// mutation before applying it to memory, so a store failure never
// leaves memory and storage disagreeing.
type Store interface {
	LoadRooms(ctx context.Context) ([]*entity.Room, error)
	LoadReservations(ctx context.Context) ([]*entity.Reservation, error)

	InsertRoom(ctx context.Context, room *entity.Room) error
	UpdateRoomRate(ctx context.Context, roomID uuid.UUID, rate float64, updatedAt time.Time) error

	InsertReservation(ctx context.Context, reservation *entity.Reservation) error
	UpdateReservationStatus(ctx context.Context, reservationID uuid.UUID, status entity.ReservationStatus, updatedAt time.Time) error
}
