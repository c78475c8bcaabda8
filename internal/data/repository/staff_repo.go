package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error)
	FindByUsername(ctx context.Context, username string) (*entity.Staff, error)
	FindByEmail(ctx context.Context, email string) (*entity.Staff, error)
	Count(ctx context.Context) (int64, error)
}

type staffRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStaffRepository(db database.PgxIface, log *zap.Logger) StaffRepository {
	return &staffRepository{
		db:  db,
		log: log.With(zap.String("repository", "staff")),
	}
}

func (r *staffRepository) Create(ctx context.Context, staff *entity.Staff) error {
	query := `
		INSERT INTO staff (id, username, email, password, role, is_active,
		                   created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		staff.ID,
		staff.Username,
		staff.Email,
		staff.PasswordHash,
		staff.Role,
		staff.IsActive,
		staff.CreatedAt,
		staff.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create staff",
			zap.Error(err),
			zap.String("username", staff.Username),
		)
		return fmt.Errorf("failed to create staff: %w", err)
	}

	return nil
}

func (r *staffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Staff, error) {
	query := `
		SELECT id, username, email, password, role, is_active,
		       created_at, updated_at, deleted_at
		FROM staff
		WHERE id = $1 AND deleted_at IS NULL
	`

	var staff entity.Staff
	err := r.db.QueryRow(ctx, query, id).Scan(
		&staff.ID,
		&staff.Username,
		&staff.Email,
		&staff.PasswordHash,
		&staff.Role,
		&staff.IsActive,
		&staff.CreatedAt,
		&staff.UpdatedAt,
		&staff.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find staff by ID",
			zap.Error(err),
			zap.String("staff_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find staff: %w", err)
	}

	return &staff, nil
}

func (r *staffRepository) FindByUsername(ctx context.Context, username string) (*entity.Staff, error) {
	query := `
		SELECT id, username, email, password, role, is_active,
		       created_at, updated_at, deleted_at
		FROM staff
		WHERE username = $1 AND deleted_at IS NULL
	`

	var staff entity.Staff
	err := r.db.QueryRow(ctx, query, username).Scan(
		&staff.ID,
		&staff.Username,
		&staff.Email,
		&staff.PasswordHash,
		&staff.Role,
		&staff.IsActive,
		&staff.CreatedAt,
		&staff.UpdatedAt,
		&staff.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find staff by username",
			zap.Error(err),
			zap.String("username", username),
		)
		return nil, fmt.Errorf("failed to find staff: %w", err)
	}

	return &staff, nil
}

func (r *staffRepository) FindByEmail(ctx context.Context, email string) (*entity.Staff, error) {
	query := `
		SELECT id, username, email, password, role, is_active,
		       created_at, updated_at, deleted_at
		FROM staff
		WHERE email = $1 AND deleted_at IS NULL
	`

	var staff entity.Staff
	err := r.db.QueryRow(ctx, query, email).Scan(
		&staff.ID,
		&staff.Username,
		&staff.Email,
		&staff.PasswordHash,
		&staff.Role,
		&staff.IsActive,
		&staff.CreatedAt,
		&staff.UpdatedAt,
		&staff.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find staff by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("failed to find staff: %w", err)
	}

	return &staff, nil
}

func (r *staffRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM staff WHERE deleted_at IS NULL`

	var total int64
	err := r.db.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count staff", zap.Error(err))
		return 0, fmt.Errorf("failed to count staff: %w", err)
	}

	return total, nil
}
