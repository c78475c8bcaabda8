package usecase

import (
	"context"
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

type GuestService interface {
	CreateGuest(ctx context.Context, req *request.CreateGuestRequest) (*response.GuestResponse, error)
	GetGuestByID(ctx context.Context, guestID string) (*response.GuestResponse, error)
	GetGuests(ctx context.Context, req *request.PaginatedRequest, search *string) (*response.PaginatedResponse[response.GuestResponse], error)
	GetGuestReservations(ctx context.Context, guestID string) ([]response.ReservationResponse, error)
}

type guestService struct {
	guestRepo repository.GuestRepository
	ledger    *ledger.Ledger
	log       *zap.Logger
}

func NewGuestService(guestRepo repository.GuestRepository, ledger *ledger.Ledger, log *zap.Logger) GuestService {
	return &guestService{
		guestRepo: guestRepo,
		ledger:    ledger,
		log:       log.With(zap.String("service", "guest")),
	}
}

func (s *guestService) CreateGuest(ctx context.Context, req *request.CreateGuestRequest) (*response.GuestResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create guest validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	// 2. Phone harus unik
	existing, err := s.guestRepo.FindByPhone(ctx, req.Phone)
	if err != nil {
		s.log.Error("Failed to check phone", zap.Error(err), zap.String("phone", req.Phone))
		return nil, apperrors.Internal("failed to check phone", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("guest with this phone already exists")
	}

	// 3. Create guest entity
	now := time.Now()
	guest := &entity.Guest{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	}

	if err := s.guestRepo.Create(ctx, guest); err != nil {
		s.log.Error("Failed to create guest", zap.Error(err), zap.String("phone", req.Phone))
		return nil, apperrors.Internal("failed to create guest", err)
	}

	s.log.Info("Guest created",
		zap.String("guest_id", guest.ID.String()),
		zap.String("name", guest.Name))

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) GetGuestByID(ctx context.Context, guestID string) (*response.GuestResponse, error) {
	guest, err := s.findGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) GetGuests(ctx context.Context, req *request.PaginatedRequest, search *string) (*response.PaginatedResponse[response.GuestResponse], error) {
	guests, err := s.guestRepo.FindAll(ctx, req.Offset(), req.Limit(), search)
	if err != nil {
		s.log.Error("Failed to find guests", zap.Error(err))
		return nil, apperrors.Internal("failed to find guests", err)
	}

	total, err := s.guestRepo.CountAll(ctx, search)
	if err != nil {
		s.log.Error("Failed to count guests", zap.Error(err))
		return nil, apperrors.Internal("failed to count guests", err)
	}

	responses := make([]response.GuestResponse, 0, len(guests))
	for _, guest := range guests {
		responses = append(responses, response.GuestToResponse(guest))
	}

	return response.NewPaginatedResponse(responses, req.Page, req.PerPage, total), nil
}

// GetGuestReservations lists the guest's stay history, ordered by
// check-in date.
func (s *guestService) GetGuestReservations(ctx context.Context, guestID string) ([]response.ReservationResponse, error) {
	guest, err := s.findGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}

	reservations := s.ledger.ReservationsForGuest(guest.ID)

	responses := make([]response.ReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		room, _ := s.ledger.Room(reservation.RoomID)
		responses = append(responses, response.ReservationToResponse(reservation, room, guest))
	}

	return responses, nil
}

// ==================== HELPER METHODS ====================

func (s *guestService) findGuest(ctx context.Context, guestID string) (*entity.Guest, error) {
	id, err := uuid.Parse(guestID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid guest id")
	}

	guest, err := s.guestRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find guest", zap.Error(err), zap.String("guest_id", guestID))
		return nil, apperrors.Internal("failed to find guest", err)
	}
	if guest == nil {
		return nil, apperrors.NotFoundWithID("Guest", guestID)
	}

	return guest, nil
}
