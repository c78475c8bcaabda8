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

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Payment, error)
	Complete(ctx context.Context, paymentID uuid.UUID, method entity.PaymentMethod, reference string, updatedAt time.Time) error
	UpdateStatus(ctx context.Context, paymentID uuid.UUID, status entity.PaymentStatus, updatedAt time.Time) error
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, reservation_id, method, amount, status,
		                      reference, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.ReservationID,
		payment.Method,
		payment.Amount,
		payment.Status,
		payment.Reference,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("reservation_id", payment.ReservationID.String()),
		)
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

func (r *paymentRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Payment, error) {
	query := `
		SELECT id, reservation_id, method, amount, status, reference,
		       created_at, updated_at, deleted_at
		FROM payments
		WHERE reservation_id = $1 AND deleted_at IS NULL
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to find payments by reservation",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("failed to find payments: %w", err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.ReservationID,
			&payment.Method,
			&payment.Amount,
			&payment.Status,
			&payment.Reference,
			&payment.CreatedAt,
			&payment.UpdatedAt,
			&payment.DeletedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return payments, nil
}

// Complete settles a pending payment with the method the guest paid by and
// the processor reference.
func (r *paymentRepository) Complete(ctx context.Context, paymentID uuid.UUID, method entity.PaymentMethod, reference string, updatedAt time.Time) error {
	query := `
		UPDATE payments
		SET method = $2, status = $3, reference = $4, updated_at = $5
		WHERE id = $1 AND status = $6 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		paymentID,
		method,
		entity.PaymentStatusCompleted,
		reference,
		updatedAt,
		entity.PaymentStatusPending,
	)

	if err != nil {
		r.log.Error("Failed to complete payment",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
		)
		return fmt.Errorf("failed to complete payment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment not found or not pending")
	}

	return nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, paymentID uuid.UUID, status entity.PaymentStatus, updatedAt time.Time) error {
	query := `
		UPDATE payments
		SET status = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, paymentID, status, updatedAt)
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment not found")
	}

	return nil
}
