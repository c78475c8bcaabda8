package repository

import (
	"context"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/ledger"

	"github.com/google/uuid"
)

// ledgerStore adapts the room and reservation repositories to the
// persistence contract the availability ledger writes through.
type ledgerStore struct {
	room        RoomRepository
	reservation ReservationRepository
}

func NewLedgerStore(room RoomRepository, reservation ReservationRepository) ledger.Store {
	return &ledgerStore{
		room:        room,
		reservation: reservation,
	}
}

func (s *ledgerStore) LoadRooms(ctx context.Context) ([]*entity.Room, error) {
	return s.room.FindAll(ctx)
}

func (s *ledgerStore) LoadReservations(ctx context.Context) ([]*entity.Reservation, error) {
	return s.reservation.FindAll(ctx)
}

func (s *ledgerStore) InsertRoom(ctx context.Context, room *entity.Room) error {
	return s.room.Create(ctx, room)
}

func (s *ledgerStore) UpdateRoomRate(ctx context.Context, roomID uuid.UUID, rate float64, updatedAt time.Time) error {
	return s.room.UpdateRate(ctx, roomID, rate, updatedAt)
}

func (s *ledgerStore) InsertReservation(ctx context.Context, reservation *entity.Reservation) error {
	return s.reservation.Create(ctx, reservation)
}

func (s *ledgerStore) UpdateReservationStatus(ctx context.Context, reservationID uuid.UUID, status entity.ReservationStatus, updatedAt time.Time) error {
	return s.reservation.UpdateStatus(ctx, reservationID, status, updatedAt)
}
