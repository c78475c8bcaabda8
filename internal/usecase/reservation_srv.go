package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/ledger"
	"hotel-booking/pkg/cache"
	apperrors "hotel-booking/pkg/errors"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	taxRate           = 0.18
	serviceChargeRate = 0.10
	maxStayNights     = 30
)

// Record filters untuk listing.
const (
	filterAll       = "all"
	filterActive    = "active"
	filterUpcoming  = "upcoming"
	filterCompleted = "completed"
	filterCancelled = "cancelled"
)

type ReservationService interface {
	CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationDetailResponse, error)
	GetReservations(ctx context.Context, req *request.PaginatedRequest, filter string) (*response.PaginatedResponse[response.ReservationResponse], error)
	GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationDetailResponse, error)
	CheckIn(ctx context.Context, reservationID string) (*response.ReservationResponse, error)
	CheckOut(ctx context.Context, reservationID string) (*response.ReservationDetailResponse, error)
	Cancel(ctx context.Context, reservationID string) (*response.ReservationResponse, error)
}

type reservationService struct {
	repo         *repository.Repository // grouping guestRepo & paymentRepo
	ledger       *ledger.Ledger
	availability *cache.AvailabilityCache
	log          *zap.Logger
}

func NewReservationService(
	repo *repository.Repository,
	ledger *ledger.Ledger,
	availability *cache.AvailabilityCache,
	log *zap.Logger,
) ReservationService {
	return &reservationService{
		repo:         repo,
		ledger:       ledger,
		availability: availability,
		log:          log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationDetailResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	// 2. Parse stay dates
	checkIn, checkOut, err := parseStayRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	// 3. Front-desk date rules; the range order itself is the ledger's call
	if checkIn.Before(utils.Today()) {
		return nil, apperrors.Validation("check-in date cannot be in the past", map[string]any{"check_in": req.CheckIn})
	}
	if nights := utils.Nights(checkIn, checkOut); nights > maxStayNights {
		return nil, apperrors.Validation(
			fmt.Sprintf("stay cannot exceed %d nights", maxStayNights),
			map[string]any{"nights": nights},
		)
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid room id")
	}

	// 4. Resolve guest: by id, by phone, atau buat baru
	guest, err := s.resolveGuest(ctx, req)
	if err != nil {
		return nil, err
	}

	// 5. Book pada ledger
	reservation, err := s.ledger.Book(ctx, roomID, guest.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	// 6. Record pending payment untuk tagihan
	if room, ok := s.ledger.Room(reservation.RoomID); ok {
		bill := calculateBill(reservation.Nights(), room.Rate)

		now := time.Now()
		payment := &entity.Payment{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			ReservationID: reservation.ID,
			Amount:        bill.Total,
			Status:        entity.PaymentStatusPending,
		}

		if err := s.repo.Payment.Create(ctx, payment); err != nil {
			// Reservation tetap tercatat; bill is recomputed at payment time
			s.log.Warn("Failed to record pending payment",
				zap.Error(err),
				zap.String("reservation_id", reservation.ID.String()))
		}
	}

	s.availability.Invalidate(ctx)

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("confirmation_code", reservation.ConfirmationCode),
		zap.String("guest_id", guest.ID.String()),
		zap.String("check_in", req.CheckIn),
		zap.String("check_out", req.CheckOut))

	return s.toDetail(ctx, reservation), nil
}

func (s *reservationService) GetReservations(ctx context.Context, req *request.PaginatedRequest, filter string) (*response.PaginatedResponse[response.ReservationResponse], error) {
	if filter == "" {
		filter = filterAll
	}

	switch filter {
	case filterAll, filterActive, filterUpcoming, filterCompleted, filterCancelled:
	default:
		return nil, apperrors.Validation("unknown filter", map[string]any{"filter": filter})
	}

	today := utils.Today()
	var filtered []*entity.Reservation
	for _, reservation := range s.ledger.Reservations() {
		if matchesRecordFilter(reservation, filter, today) {
			filtered = append(filtered, reservation)
		}
	}

	total := int64(len(filtered))
	window := paginate(filtered, req.Offset(), req.Limit())

	responses := make([]response.ReservationResponse, 0, len(window))
	for _, reservation := range window {
		responses = append(responses, s.toResponse(ctx, reservation))
	}

	return response.NewPaginatedResponse(responses, req.Page, req.PerPage, total), nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationDetailResponse, error) {
	reservation, err := s.findReservation(reservationID)
	if err != nil {
		return nil, err
	}

	return s.toDetail(ctx, reservation), nil
}

func (s *reservationService) CheckIn(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid reservation id")
	}

	reservation, err := s.ledger.CheckIn(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(ctx, reservation)
	return &resp, nil
}

func (s *reservationService) CheckOut(ctx context.Context, reservationID string) (*response.ReservationDetailResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid reservation id")
	}

	reservation, err := s.ledger.CheckOut(ctx, id)
	if err != nil {
		return nil, err
	}

	// Checked-out stay no longer blocks the room.
	s.availability.Invalidate(ctx)

	// Detail membawa final bill
	return s.toDetail(ctx, reservation), nil
}

func (s *reservationService) Cancel(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid reservation id")
	}

	reservation, err := s.ledger.Cancel(ctx, id)
	if err != nil {
		return nil, err
	}

	// Cancelled stay frees the room.
	s.availability.Invalidate(ctx)

	s.refundCompletedPayments(ctx, reservation.ID)

	resp := s.toResponse(ctx, reservation)
	return &resp, nil
}

// ==================== HELPER METHODS ====================

func (s *reservationService) findReservation(reservationID string) (*entity.Reservation, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid reservation id")
	}

	reservation, ok := s.ledger.Reservation(id)
	if !ok {
		return nil, apperrors.NotFoundWithID("Reservation", reservationID)
	}

	return reservation, nil
}

func (s *reservationService) resolveGuest(ctx context.Context, req *request.CreateReservationRequest) (*entity.Guest, error) {
	// By id jika dikirim
	if req.GuestID != nil && *req.GuestID != "" {
		guestID, err := uuid.Parse(*req.GuestID)
		if err != nil {
			return nil, apperrors.InvalidInput("invalid guest id")
		}

		guest, err := s.repo.Guest.FindByID(ctx, guestID)
		if err != nil {
			s.log.Error("Failed to find guest", zap.Error(err), zap.String("guest_id", *req.GuestID))
			return nil, apperrors.Internal("failed to find guest", err)
		}
		if guest == nil {
			return nil, apperrors.NotFoundWithID("Guest", *req.GuestID)
		}

		return guest, nil
	}

	if req.GuestName == "" || req.GuestPhone == "" {
		return nil, apperrors.Validation("guest_id or guest_name and guest_phone are required", nil)
	}

	// Coba cari by phone
	guest, err := s.repo.Guest.FindByPhone(ctx, req.GuestPhone)
	if err != nil {
		s.log.Error("Failed to find guest by phone", zap.Error(err), zap.String("phone", req.GuestPhone))
		return nil, apperrors.Internal("failed to find guest", err)
	}
	if guest != nil {
		return guest, nil
	}

	// Walk-in guest baru
	now := time.Now()
	guest = &entity.Guest{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    req.GuestName,
		Phone:   req.GuestPhone,
		Address: req.GuestAddress,
	}

	if err := s.repo.Guest.Create(ctx, guest); err != nil {
		s.log.Error("Failed to create guest", zap.Error(err), zap.String("phone", req.GuestPhone))
		return nil, apperrors.Internal("failed to create guest", err)
	}

	s.log.Info("Guest created",
		zap.String("guest_id", guest.ID.String()),
		zap.String("name", guest.Name))

	return guest, nil
}

func (s *reservationService) refundCompletedPayments(ctx context.Context, reservationID uuid.UUID) {
	payments, err := s.repo.Payment.FindByReservationID(ctx, reservationID)
	if err != nil {
		s.log.Warn("Failed to load payments for refund",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()))
		return
	}

	for _, payment := range payments {
		if payment.Status != entity.PaymentStatusCompleted {
			continue
		}

		if err := s.repo.Payment.UpdateStatus(ctx, payment.ID, entity.PaymentStatusRefunded, time.Now()); err != nil {
			s.log.Error("Failed to mark payment refunded",
				zap.Error(err),
				zap.String("payment_id", payment.ID.String()))
			continue
		}

		s.log.Info("Payment refunded",
			zap.String("payment_id", payment.ID.String()),
			zap.Float64("amount", payment.Amount))
	}
}

func (s *reservationService) toResponse(ctx context.Context, reservation *entity.Reservation) response.ReservationResponse {
	room, _ := s.ledger.Room(reservation.RoomID)

	guest, err := s.repo.Guest.FindByID(ctx, reservation.GuestID)
	if err != nil {
		s.log.Warn("Failed to load guest for response",
			zap.Error(err),
			zap.String("guest_id", reservation.GuestID.String()))
	}

	return response.ReservationToResponse(reservation, room, guest)
}

func (s *reservationService) toDetail(ctx context.Context, reservation *entity.Reservation) *response.ReservationDetailResponse {
	room, _ := s.ledger.Room(reservation.RoomID)

	guest, err := s.repo.Guest.FindByID(ctx, reservation.GuestID)
	if err != nil {
		s.log.Warn("Failed to load guest for response",
			zap.Error(err),
			zap.String("guest_id", reservation.GuestID.String()))
	}

	detail := &response.ReservationDetailResponse{
		ReservationResponse: response.ReservationToResponse(reservation, room, guest),
	}

	if room != nil {
		roomResp := response.RoomToResponse(room)
		detail.Room = &roomResp

		bill := calculateBill(reservation.Nights(), room.Rate)
		detail.Bill = &bill
	}

	if guest != nil {
		guestResp := response.GuestToResponse(guest)
		detail.Guest = &guestResp
	}

	payments, err := s.repo.Payment.FindByReservationID(ctx, reservation.ID)
	if err != nil {
		s.log.Warn("Failed to load payments for response",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()))
	} else if len(payments) > 0 {
		detail.Payments = response.PaymentsToResponse(payments)
	}

	return detail
}

// matchesRecordFilter buckets a reservation for the front-desk listing:
// active = currently blocking a room and inside the stay window, upcoming
// = booked with the stay ahead, completed = checked out or the stay has
// passed without cancellation.
func matchesRecordFilter(reservation *entity.Reservation, filter string, today time.Time) bool {
	switch filter {
	case filterActive:
		return reservation.Status.IsActive() &&
			!reservation.CheckIn.After(today) &&
			today.Before(reservation.CheckOut)
	case filterUpcoming:
		return reservation.Status == entity.ReservationStatusBooked &&
			reservation.CheckIn.After(today)
	case filterCompleted:
		return reservation.Status == entity.ReservationStatusCheckedOut ||
			(reservation.Status != entity.ReservationStatusCancelled && !reservation.CheckOut.After(today))
	case filterCancelled:
		return reservation.Status == entity.ReservationStatusCancelled
	default:
		return true
	}
}

func calculateBill(nights int, rate float64) response.BillResponse {
	roomCharge := roundCents(float64(nights) * rate)
	tax := roundCents(roomCharge * taxRate)
	serviceCharge := roundCents(roomCharge * serviceChargeRate)

	return response.BillResponse{
		Nights:        nights,
		Rate:          rate,
		RoomCharge:    roomCharge,
		Tax:           tax,
		ServiceCharge: serviceCharge,
		Total:         roundCents(roomCharge + tax + serviceCharge),
	}
}

func roundCents(value float64) float64 {
	return math.Round(value*100) / 100
}
