package usecase

import (
	"context"
	"math"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/ledger"
	apperrors "hotel-booking/pkg/errors"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	RecordPayment(ctx context.Context, req *request.RecordPaymentRequest) (*response.PaymentResponse, error)
	GetMethods() []response.PaymentMethodResponse
	GetReservationPayments(ctx context.Context, reservationID string) ([]response.PaymentResponse, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	ledger      *ledger.Ledger
	log         *zap.Logger
}

func NewPaymentService(paymentRepo repository.PaymentRepository, ledger *ledger.Ledger, log *zap.Logger) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		ledger:      ledger,
		log:         log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) RecordPayment(ctx context.Context, req *request.RecordPaymentRequest) (*response.PaymentResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Record payment validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	// 2. Reservation harus ada dan belum dibatalkan
	reservationID, err := uuid.Parse(req.ReservationID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid reservation id")
	}

	reservation, ok := s.ledger.Reservation(reservationID)
	if !ok {
		return nil, apperrors.NotFoundWithID("Reservation", req.ReservationID)
	}
	if reservation.Status == entity.ReservationStatusCancelled {
		return nil, apperrors.State("reservation is cancelled, cannot record payment")
	}

	// 3. Amount harus sama dengan bill total
	room, ok := s.ledger.Room(reservation.RoomID)
	if !ok {
		return nil, apperrors.NotFoundWithID("Room", reservation.RoomID.String())
	}

	bill := calculateBill(reservation.Nights(), room.Rate)
	if math.Abs(req.Amount-bill.Total) > 0.01 {
		return nil, apperrors.Validation("payment amount does not match the bill total", map[string]any{
			"expected": bill.Total,
			"got":      req.Amount,
		})
	}

	// 4. Reservation yang sudah lunas tidak boleh dibayar lagi
	payments, err := s.paymentRepo.FindByReservationID(ctx, reservationID)
	if err != nil {
		s.log.Error("Failed to find payments", zap.Error(err), zap.String("reservation_id", req.ReservationID))
		return nil, apperrors.Internal("failed to find payments", err)
	}

	var pending *entity.Payment
	for _, payment := range payments {
		if payment.Status == entity.PaymentStatusCompleted {
			return nil, apperrors.Conflict("reservation is already paid")
		}
		if payment.Status == entity.PaymentStatusPending && pending == nil {
			pending = payment
		}
	}

	// 5. Process lewat method processor
	method, ok := entity.ParsePaymentMethod(req.Method)
	if !ok {
		return nil, apperrors.Validation("unknown payment method", map[string]any{"method": req.Method})
	}

	processor, ok := newPaymentProcessor(method)
	if !ok {
		return nil, apperrors.Validation("unknown payment method", map[string]any{"method": req.Method})
	}

	reference, err := processor.Process(req.Amount, req.Details)
	if err != nil {
		return nil, err
	}

	// 6. Settle the pending payment, atau insert completed baru
	now := time.Now()
	var settled *entity.Payment

	if pending != nil {
		if err := s.paymentRepo.Complete(ctx, pending.ID, method, reference, now); err != nil {
			s.log.Error("Failed to complete payment", zap.Error(err), zap.String("payment_id", pending.ID.String()))
			return nil, apperrors.Internal("failed to record payment", err)
		}

		settled = pending
		settled.Method = &method
		settled.Status = entity.PaymentStatusCompleted
		settled.Reference = &reference
		settled.UpdatedAt = now
	} else {
		settled = &entity.Payment{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			ReservationID: reservationID,
			Method:        &method,
			Amount:        req.Amount,
			Status:        entity.PaymentStatusCompleted,
			Reference:     &reference,
		}

		if err := s.paymentRepo.Create(ctx, settled); err != nil {
			s.log.Error("Failed to create payment", zap.Error(err), zap.String("reservation_id", req.ReservationID))
			return nil, apperrors.Internal("failed to record payment", err)
		}
	}

	s.log.Info("Payment recorded",
		zap.String("payment_id", settled.ID.String()),
		zap.String("reservation_id", req.ReservationID),
		zap.String("method", string(method)),
		zap.Float64("amount", req.Amount))

	resp := response.PaymentToResponse(settled)
	return &resp, nil
}

// GetMethods lists the accepted payment methods with the details each one
// asks for, so the desk can render the right form.
func (s *paymentService) GetMethods() []response.PaymentMethodResponse {
	methods := make([]response.PaymentMethodResponse, 0, len(paymentMethods))
	for _, method := range paymentMethods {
		processor, ok := newPaymentProcessor(method)
		if !ok {
			continue
		}

		fields := processor.RequiredFields()
		if fields == nil {
			fields = []string{}
		}

		methods = append(methods, response.PaymentMethodResponse{
			Method:         processor.Method(),
			Label:          processor.Label(),
			RequiredFields: fields,
		})
	}

	return methods
}

func (s *paymentService) GetReservationPayments(ctx context.Context, reservationID string) ([]response.PaymentResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid reservation id")
	}

	if _, ok := s.ledger.Reservation(id); !ok {
		return nil, apperrors.NotFoundWithID("Reservation", reservationID)
	}

	payments, err := s.paymentRepo.FindByReservationID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find payments", zap.Error(err), zap.String("reservation_id", reservationID))
		return nil, apperrors.Internal("failed to find payments", err)
	}

	return response.PaymentsToResponse(payments), nil
}
