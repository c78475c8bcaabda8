package usecase

import (
	"context"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/ledger"
	"hotel-booking/pkg/cache"
	apperrors "hotel-booking/pkg/errors"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomService interface {
	GetRooms(ctx context.Context, req *request.PaginatedRequest, category *string) (*response.PaginatedResponse[response.RoomResponse], error)
	GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error)
	SearchAvailable(ctx context.Context, checkIn, checkOut string, category *string) ([]response.RoomResponse, error)
	CheckAvailability(ctx context.Context, roomID, checkIn, checkOut string) (*response.AvailabilityResponse, error)
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	UpdateRate(ctx context.Context, roomID string, req *request.UpdateRoomRateRequest) (*response.RoomResponse, error)
	SeedDefaultRooms(ctx context.Context) error
}

type roomService struct {
	ledger       *ledger.Ledger
	availability *cache.AvailabilityCache
	log          *zap.Logger
}

func NewRoomService(ledger *ledger.Ledger, availability *cache.AvailabilityCache, log *zap.Logger) RoomService {
	return &roomService{
		ledger:       ledger,
		availability: availability,
		log:          log.With(zap.String("service", "room")),
	}
}

// Default catalog untuk fresh install.
var defaultRooms = []struct {
	Number   string
	Category entity.RoomCategory
	Rate     float64
}{
	{"101", entity.CategoryStandard, 100},
	{"102", entity.CategoryStandard, 100},
	{"103", entity.CategoryStandard, 100},
	{"201", entity.CategoryDeluxe, 150},
	{"202", entity.CategoryDeluxe, 150},
	{"301", entity.CategorySuite, 250},
	{"401", entity.CategoryFamily, 300},
}

func (s *roomService) GetRooms(ctx context.Context, req *request.PaginatedRequest, category *string) (*response.PaginatedResponse[response.RoomResponse], error) {
	rooms := s.ledger.Rooms()

	// Optional category filter
	if category != nil && *category != "" {
		parsed, ok := entity.ParseRoomCategory(*category)
		if !ok {
			return nil, apperrors.Validation("unknown room category", map[string]any{"category": *category})
		}

		filtered := rooms[:0]
		for _, room := range rooms {
			if room.Category == parsed {
				filtered = append(filtered, room)
			}
		}
		rooms = filtered
	}

	total := int64(len(rooms))
	page := paginate(rooms, req.Offset(), req.Limit())

	return response.NewPaginatedResponse(response.RoomsToResponse(page), req.Page, req.PerPage, total), nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid room id")
	}

	room, ok := s.ledger.Room(id)
	if !ok {
		return nil, apperrors.NotFoundWithID("Room", roomID)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) SearchAvailable(ctx context.Context, checkIn, checkOut string, category *string) ([]response.RoomResponse, error) {
	start, end, err := parseStayRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	var parsedCategory *entity.RoomCategory
	categoryKey := ""
	if category != nil && *category != "" {
		parsed, ok := entity.ParseRoomCategory(*category)
		if !ok {
			return nil, apperrors.Validation("unknown room category", map[string]any{"category": *category})
		}
		parsedCategory = &parsed
		categoryKey = *category
	}

	// Cek cache dulu
	var cached []response.RoomResponse
	if s.availability.GetSearch(ctx, checkIn, checkOut, categoryKey, &cached) {
		s.log.Debug("Availability search served from cache",
			zap.String("check_in", checkIn),
			zap.String("check_out", checkOut))
		return cached, nil
	}

	rooms, err := s.ledger.AvailableRooms(start, end, parsedCategory)
	if err != nil {
		return nil, err
	}

	result := response.RoomsToResponse(rooms)
	s.availability.SetSearch(ctx, checkIn, checkOut, categoryKey, result)

	return result, nil
}

func (s *roomService) CheckAvailability(ctx context.Context, roomID, checkIn, checkOut string) (*response.AvailabilityResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid room id")
	}

	start, end, err := parseStayRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	available, err := s.ledger.IsAvailable(id, start, end)
	if err != nil {
		return nil, err
	}

	// Count the active reservations that block the range.
	conflicts := 0
	for _, reservation := range s.ledger.ReservationsForRoom(id) {
		if reservation.Status.IsActive() && reservation.Overlaps(start, end) {
			conflicts++
		}
	}

	return &response.AvailabilityResponse{
		RoomID:    roomID,
		CheckIn:   utils.FormatDate(start),
		CheckOut:  utils.FormatDate(end),
		Nights:    utils.Nights(start, end),
		Available: available,
		Conflicts: conflicts,
	}, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	category, ok := entity.ParseRoomCategory(req.Category)
	if !ok {
		return nil, apperrors.Validation("unknown room category", map[string]any{"category": req.Category})
	}

	// 2. Create room entity
	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomNumber:  req.RoomNumber,
		Category:    category,
		Rate:        req.Rate,
		Description: req.Description,
	}

	// 3. Register pada ledger (persists through the store)
	created, err := s.ledger.AddRoom(ctx, room)
	if err != nil {
		return nil, err
	}

	// New room changes search results.
	s.availability.Invalidate(ctx)

	s.log.Info("Room created",
		zap.String("room_id", created.ID.String()),
		zap.String("room_number", created.RoomNumber),
		zap.String("category", string(created.Category)))

	resp := response.RoomToResponse(created)
	return &resp, nil
}

func (s *roomService) UpdateRate(ctx context.Context, roomID string, req *request.UpdateRoomRateRequest) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid room id")
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update rate validation failed", zap.Any("errors", errs))
		return nil, validationError(errs)
	}

	updated, err := s.ledger.UpdateRate(ctx, id, req.Rate)
	if err != nil {
		return nil, err
	}

	// Cached search results carry the old rate.
	s.availability.Invalidate(ctx)

	resp := response.RoomToResponse(updated)
	return &resp, nil
}

// SeedDefaultRooms fills an empty catalog with the default rooms so the
// service is bookable out of the box.
func (s *roomService) SeedDefaultRooms(ctx context.Context) error {
	if len(s.ledger.Rooms()) > 0 {
		s.log.Debug("Room catalog not empty, seed skipped")
		return nil
	}

	now := time.Now()
	for _, seed := range defaultRooms {
		room := &entity.Room{
			Base: entity.Base{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			RoomNumber: seed.Number,
			Category:   seed.Category,
			Rate:       seed.Rate,
		}

		if _, err := s.ledger.AddRoom(ctx, room); err != nil {
			s.log.Error("Failed to seed room",
				zap.Error(err),
				zap.String("room_number", seed.Number))
			return err
		}
	}

	s.log.Info("Room catalog seeded", zap.Int("count", len(defaultRooms)))
	return nil
}

// ==================== HELPER METHODS ====================

// parseStayRange parses the wire dates. Range order is checked by the
// ledger, so only the format is validated here.
func parseStayRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	start, err := utils.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.Validation("check_in must be a date in YYYY-MM-DD format", map[string]any{"check_in": checkIn})
	}

	end, err := utils.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.Validation("check_out must be a date in YYYY-MM-DD format", map[string]any{"check_out": checkOut})
	}

	return start, end, nil
}

// paginate returns the window of an in-memory listing.
func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
