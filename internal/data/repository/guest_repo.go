package repository

import (
	"context"
	"fmt"
	"strings"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	FindByPhone(ctx context.Context, phone string) (*entity.Guest, error)
	FindAll(ctx context.Context, offset, limit int, search *string) ([]*entity.Guest, error)
	CountAll(ctx context.Context, search *string) (int64, error)
}

type guestRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGuestRepository(db database.PgxIface, log *zap.Logger) GuestRepository {
	return &guestRepository{
		db:  db,
		log: log.With(zap.String("repository", "guest")),
	}
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	query := `
		INSERT INTO guests (id, name, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		guest.ID,
		guest.Name,
		guest.Phone,
		guest.Address,
		guest.CreatedAt,
		guest.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create guest",
			zap.Error(err),
			zap.String("phone", guest.Phone),
		)
		return fmt.Errorf("failed to create guest: %w", err)
	}

	return nil
}

func (r *guestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	query := `
		SELECT id, name, phone, address, created_at, updated_at, deleted_at
		FROM guests
		WHERE id = $1 AND deleted_at IS NULL
	`

	var guest entity.Guest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&guest.ID,
		&guest.Name,
		&guest.Phone,
		&guest.Address,
		&guest.CreatedAt,
		&guest.UpdatedAt,
		&guest.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest by ID",
			zap.Error(err),
			zap.String("guest_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find guest: %w", err)
	}

	return &guest, nil
}

func (r *guestRepository) FindByPhone(ctx context.Context, phone string) (*entity.Guest, error) {
	query := `
		SELECT id, name, phone, address, created_at, updated_at, deleted_at
		FROM guests
		WHERE phone = $1 AND deleted_at IS NULL
	`

	var guest entity.Guest
	err := r.db.QueryRow(ctx, query, phone).Scan(
		&guest.ID,
		&guest.Name,
		&guest.Phone,
		&guest.Address,
		&guest.CreatedAt,
		&guest.UpdatedAt,
		&guest.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest by phone",
			zap.Error(err),
			zap.String("phone", phone),
		)
		return nil, fmt.Errorf("failed to find guest: %w", err)
	}

	return &guest, nil
}

func (r *guestRepository) FindAll(ctx context.Context, offset, limit int, search *string) ([]*entity.Guest, error) {
	// Build query dengan optional search filter
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, name, phone, address, created_at, updated_at
		FROM guests
		WHERE deleted_at IS NULL
	`)

	args := []interface{}{}
	argCount := 1

	if search != nil && *search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND (name ILIKE $%d OR phone ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+*search+"%")
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all guests",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
			zap.Stringp("search", search),
		)
		return nil, fmt.Errorf("failed to find guests: %w", err)
	}
	defer rows.Close()

	var guests []*entity.Guest
	for rows.Next() {
		var guest entity.Guest
		err := rows.Scan(
			&guest.ID,
			&guest.Name,
			&guest.Phone,
			&guest.Address,
			&guest.CreatedAt,
			&guest.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan guest row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan guest: %w", err)
		}
		guests = append(guests, &guest)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	r.log.Debug("Guests found",
		zap.Int("count", len(guests)),
		zap.Int("offset", offset),
		zap.Int("limit", limit),
	)

	return guests, nil
}

func (r *guestRepository) CountAll(ctx context.Context, search *string) (int64, error) {
	query := `SELECT COUNT(*) FROM guests WHERE deleted_at IS NULL`
	args := []interface{}{}

	if search != nil && *search != "" {
		query += " AND (name ILIKE $1 OR phone ILIKE $1)"
		args = append(args, "%"+*search+"%")
	}

	var total int64
	err := r.db.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count guests",
			zap.Error(err),
			zap.Stringp("search", search),
		)
		return 0, fmt.Errorf("failed to count guests: %w", err)
	}

	return total, nil
}
