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

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindAll(ctx context.Context) ([]*entity.Room, error)
	UpdateRate(ctx context.Context, roomID uuid.UUID, rate float64, updatedAt time.Time) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, room_number, category, rate, description,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomNumber,
		room.Category,
		room.Rate,
		room.Description,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_number", room.RoomNumber),
		)
		return fmt.Errorf("failed to create room: %w", err)
	}

	return nil
}

// FindAll returns every room that has not been soft deleted. The ledger
// loads the full catalog at startup, so there is no pagination here.
func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `
		SELECT id, room_number, category, rate, description,
		       created_at, updated_at, deleted_at
		FROM rooms
		WHERE deleted_at IS NULL
		ORDER BY room_number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all rooms", zap.Error(err))
		return nil, fmt.Errorf("failed to find rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.RoomNumber,
			&room.Category,
			&room.Rate,
			&room.Description,
			&room.CreatedAt,
			&room.UpdatedAt,
			&room.DeletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Rooms loaded", zap.Int("count", len(rooms)))

	return rooms, nil
}

func (r *roomRepository) UpdateRate(ctx context.Context, roomID uuid.UUID, rate float64, updatedAt time.Time) error {
	query := `
		UPDATE rooms
		SET rate = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, roomID, rate, updatedAt)
	if err != nil {
		r.log.Error("Failed to update room rate",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.Float64("rate", rate),
		)
		return fmt.Errorf("failed to update room rate: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room not found or already deleted")
	}

	return nil
}
