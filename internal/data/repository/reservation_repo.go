package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindAll(ctx context.Context) ([]*entity.Reservation, error)
	UpdateStatus(ctx context.Context, reservationID uuid.UUID, status entity.ReservationStatus, updatedAt time.Time) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, confirmation_code, room_id, guest_id,
		                          check_in, check_out, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.ConfirmationCode,
		reservation.RoomID,
		reservation.GuestID,
		reservation.CheckIn,
		reservation.CheckOut,
		reservation.Status,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("room_id", reservation.RoomID.String()),
			zap.String("confirmation_code", reservation.ConfirmationCode),
		)
		return fmt.Errorf("failed to create reservation: %w", err)
	}

	return nil
}

// FindAll returns the full reservation history. The ledger replays it at
// startup to rebuild the per-room availability state.
func (r *reservationRepository) FindAll(ctx context.Context) ([]*entity.Reservation, error) {
	query := `
		SELECT id, confirmation_code, room_id, guest_id,
		       check_in, check_out, status, created_at, updated_at
		FROM reservations
		ORDER BY check_in
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all reservations", zap.Error(err))
		return nil, fmt.Errorf("failed to find reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		var reservation entity.Reservation
		err := rows.Scan(
			&reservation.ID,
			&reservation.ConfirmationCode,
			&reservation.RoomID,
			&reservation.GuestID,
			&reservation.CheckIn,
			&reservation.CheckOut,
			&reservation.Status,
			&reservation.CreatedAt,
			&reservation.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		reservations = append(reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Reservations loaded", zap.Int("count", len(reservations)))

	return reservations, nil
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, reservationID uuid.UUID, status entity.ReservationStatus, updatedAt time.Time) error {
	query := `
		UPDATE reservations
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, reservationID, status, updatedAt)
	if err != nil {
		r.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("failed to update reservation status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation not found")
	}

	return nil
}
