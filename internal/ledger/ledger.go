// Package ledger keeps the authoritative availability state for the
// property: every room and every reservation, guarded by a single
// mutex. The invariant it protects is that no two reservations with
// status booked or checked_in ever overlap on the same room, where
// stays are half-open date ranges [check_in, check_out).
package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"hotel-booking/internal/data/entity"
	apperrors "hotel-booking/pkg/errors"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Ledger struct {
	mu    sync.RWMutex
	store Store
	log   *zap.Logger

	rooms         map[uuid.UUID]*entity.Room
	roomsByNumber map[string]uuid.UUID
	reservations  map[uuid.UUID]*entity.Reservation
	byRoom        map[uuid.UUID][]uuid.UUID
}

// Load reads the full room and reservation state from the store and
// builds the in-memory ledger. Conflicting active reservations found
// in storage are reported but do not abort startup.
func Load(ctx context.Context, store Store, log *zap.Logger) (*Ledger, error) {
	rooms, err := store.LoadRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	reservations, err := store.LoadReservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}

	l := &Ledger{
		store:         store,
		log:           log.With(zap.String("component", "ledger")),
		rooms:         make(map[uuid.UUID]*entity.Room, len(rooms)),
		roomsByNumber: make(map[string]uuid.UUID, len(rooms)),
		reservations:  make(map[uuid.UUID]*entity.Reservation, len(reservations)),
		byRoom:        make(map[uuid.UUID][]uuid.UUID),
	}

	for _, room := range rooms {
		l.rooms[room.ID] = room
		l.roomsByNumber[room.RoomNumber] = room.ID
	}

	for _, res := range reservations {
		if res.Status.IsActive() {
			if conflict := l.findConflict(res.RoomID, res.CheckIn, res.CheckOut); conflict != nil {
				l.log.Warn("Conflicting active reservations found in storage",
					zap.String("reservation_id", res.ID.String()),
					zap.String("conflicts_with", conflict.ID.String()),
					zap.String("room_id", res.RoomID.String()),
				)
			}
		}
		l.reservations[res.ID] = res
		l.byRoom[res.RoomID] = append(l.byRoom[res.RoomID], res.ID)
	}

	l.log.Info("Availability ledger loaded",
		zap.Int("rooms", len(rooms)),
		zap.Int("reservations", len(reservations)),
	)

	return l, nil
}

// ==================== BOOKING ====================

// Book places a new reservation on a room. It fails with a validation
// error for a bad date range or unknown room and with a conflict error
// when an active reservation overlaps the requested stay. On any
// failure, including a store failure, the ledger is unchanged.
func (l *Ledger) Book(ctx context.Context, roomID, guestID uuid.UUID, checkIn, checkOut time.Time) (*entity.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !checkIn.Before(checkOut) {
		return nil, apperrors.Validation("check-in date must be before check-out date", map[string]any{
			"check_in":  utils.FormatDate(checkIn),
			"check_out": utils.FormatDate(checkOut),
		})
	}

	room, ok := l.rooms[roomID]
	if !ok {
		return nil, apperrors.Validation("unknown room", map[string]any{
			"room_id": roomID.String(),
		})
	}

	if conflict := l.findConflict(roomID, checkIn, checkOut); conflict != nil {
		return nil, apperrors.Conflict(fmt.Sprintf(
			"room %s is already booked from %s to %s",
			room.RoomNumber,
			utils.FormatDate(conflict.CheckIn),
			utils.FormatDate(conflict.CheckOut),
		))
	}

	now := time.Now()
	res := &entity.Reservation{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ConfirmationCode: utils.GenerateConfirmationCode(),
		RoomID:           roomID,
		GuestID:          guestID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Status:           entity.ReservationStatusBooked,
	}

	// Persist before touching memory so a store failure cannot leave
	// a reservation the database never saw.
	if err := l.store.InsertReservation(ctx, res); err != nil {
		l.log.Error("Failed to persist reservation",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("insert reservation: %w", err)
	}

	l.reservations[res.ID] = res
	l.byRoom[roomID] = append(l.byRoom[roomID], res.ID)

	l.log.Info("Reservation booked",
		zap.String("reservation_id", res.ID.String()),
		zap.String("confirmation_code", res.ConfirmationCode),
		zap.String("room_number", room.RoomNumber),
		zap.String("check_in", utils.FormatDate(checkIn)),
		zap.String("check_out", utils.FormatDate(checkOut)),
	)

	return cloneReservation(res), nil
}

// CheckIn moves a booked reservation to checked_in.
func (l *Ledger) CheckIn(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return l.transition(ctx, id, entity.ReservationStatusCheckedIn)
}

// CheckOut moves a checked_in reservation to checked_out.
func (l *Ledger) CheckOut(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return l.transition(ctx, id, entity.ReservationStatusCheckedOut)
}

// Cancel moves a booked reservation to cancelled.
func (l *Ledger) Cancel(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return l.transition(ctx, id, entity.ReservationStatusCancelled)
}

var transitionVerbs = map[entity.ReservationStatus]string{
	entity.ReservationStatusCheckedIn:  "check in",
	entity.ReservationStatusCheckedOut: "check out",
	entity.ReservationStatusCancelled:  "cancel",
}

func (l *Ledger) transition(ctx context.Context, id uuid.UUID, target entity.ReservationStatus) (*entity.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	res, ok := l.reservations[id]
	if !ok {
		return nil, apperrors.NotFoundWithID("Reservation", id.String())
	}

	if !res.Status.CanTransitionTo(target) {
		return nil, apperrors.State(fmt.Sprintf(
			"reservation status is %s, cannot %s", res.Status, transitionVerbs[target],
		))
	}

	now := time.Now()
	if err := l.store.UpdateReservationStatus(ctx, id, target, now); err != nil {
		l.log.Error("Failed to persist reservation status",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
			zap.String("target_status", string(target)),
		)
		return nil, fmt.Errorf("update reservation status: %w", err)
	}

	res.Status = target
	res.UpdatedAt = now

	l.log.Info("Reservation status changed",
		zap.String("reservation_id", id.String()),
		zap.String("status", string(target)),
	)

	return cloneReservation(res), nil
}

// ==================== AVAILABILITY ====================

// IsAvailable reports whether the room is free for the whole half-open
// range [checkIn, checkOut).
func (l *Ledger) IsAvailable(roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if !checkIn.Before(checkOut) {
		return false, apperrors.Validation("check-in date must be before check-out date", nil)
	}
	if _, ok := l.rooms[roomID]; !ok {
		return false, apperrors.Validation("unknown room", map[string]any{
			"room_id": roomID.String(),
		})
	}

	return l.findConflict(roomID, checkIn, checkOut) == nil, nil
}

// AvailableRooms returns every room free for the whole range, optionally
// restricted to a category, sorted by room number.
func (l *Ledger) AvailableRooms(checkIn, checkOut time.Time, category *entity.RoomCategory) ([]*entity.Room, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if !checkIn.Before(checkOut) {
		return nil, apperrors.Validation("check-in date must be before check-out date", nil)
	}

	var available []*entity.Room
	for id, room := range l.rooms {
		if category != nil && room.Category != *category {
			continue
		}
		if l.findConflict(id, checkIn, checkOut) == nil {
			available = append(available, cloneRoom(room))
		}
	}

	sort.Slice(available, func(i, j int) bool {
		return available[i].RoomNumber < available[j].RoomNumber
	})

	return available, nil
}

// findConflict returns an active reservation overlapping [start, end)
// on the room, or nil. Callers must hold at least the read lock.
func (l *Ledger) findConflict(roomID uuid.UUID, start, end time.Time) *entity.Reservation {
	for _, id := range l.byRoom[roomID] {
		res := l.reservations[id]
		if res.Status.IsActive() && res.Overlaps(start, end) {
			return res
		}
	}
	return nil
}

// ==================== ROOMS ====================

// AddRoom registers a new room. Room numbers are unique.
func (l *Ledger) AddRoom(ctx context.Context, room *entity.Room) (*entity.Room, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if room.RoomNumber == "" {
		return nil, apperrors.Validation("room number is required", nil)
	}
	if room.Rate <= 0 {
		return nil, apperrors.Validation("nightly rate must be positive", map[string]any{
			"rate": room.Rate,
		})
	}
	if _, exists := l.roomsByNumber[room.RoomNumber]; exists {
		return nil, apperrors.Conflict(fmt.Sprintf("room %s already exists", room.RoomNumber))
	}

	if err := l.store.InsertRoom(ctx, room); err != nil {
		l.log.Error("Failed to persist room",
			zap.Error(err),
			zap.String("room_number", room.RoomNumber),
		)
		return nil, fmt.Errorf("insert room: %w", err)
	}

	l.rooms[room.ID] = room
	l.roomsByNumber[room.RoomNumber] = room.ID

	l.log.Info("Room added",
		zap.String("room_id", room.ID.String()),
		zap.String("room_number", room.RoomNumber),
		zap.String("category", string(room.Category)),
		zap.Float64("rate", room.Rate),
	)

	return cloneRoom(room), nil
}

// UpdateRate changes a room's nightly rate. Existing reservations are
// not repriced; the new rate applies to bills computed afterwards.
func (l *Ledger) UpdateRate(ctx context.Context, roomID uuid.UUID, rate float64) (*entity.Room, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	room, ok := l.rooms[roomID]
	if !ok {
		return nil, apperrors.NotFoundWithID("Room", roomID.String())
	}
	if rate <= 0 {
		return nil, apperrors.Validation("nightly rate must be positive", map[string]any{
			"rate": rate,
		})
	}

	now := time.Now()
	if err := l.store.UpdateRoomRate(ctx, roomID, rate, now); err != nil {
		l.log.Error("Failed to persist room rate",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.Float64("rate", rate),
		)
		return nil, fmt.Errorf("update room rate: %w", err)
	}

	oldRate := room.Rate
	room.Rate = rate
	room.UpdatedAt = now

	l.log.Info("Room rate updated",
		zap.String("room_number", room.RoomNumber),
		zap.Float64("old_rate", oldRate),
		zap.Float64("new_rate", rate),
	)

	return cloneRoom(room), nil
}

// ==================== READS ====================

func (l *Ledger) Room(id uuid.UUID) (*entity.Room, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	room, ok := l.rooms[id]
	if !ok {
		return nil, false
	}
	return cloneRoom(room), true
}

func (l *Ledger) RoomByNumber(number string) (*entity.Room, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	id, ok := l.roomsByNumber[number]
	if !ok {
		return nil, false
	}
	return cloneRoom(l.rooms[id]), true
}

// Rooms returns every room sorted by room number.
func (l *Ledger) Rooms() []*entity.Room {
	l.mu.RLock()
	defer l.mu.RUnlock()

	rooms := make([]*entity.Room, 0, len(l.rooms))
	for _, room := range l.rooms {
		rooms = append(rooms, cloneRoom(room))
	}

	sort.Slice(rooms, func(i, j int) bool {
		return rooms[i].RoomNumber < rooms[j].RoomNumber
	})

	return rooms
}

func (l *Ledger) Reservation(id uuid.UUID) (*entity.Reservation, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	res, ok := l.reservations[id]
	if !ok {
		return nil, false
	}
	return cloneReservation(res), true
}

// Reservations returns every reservation sorted by check-in date,
// newest first for equal dates.
func (l *Ledger) Reservations() []*entity.Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	reservations := make([]*entity.Reservation, 0, len(l.reservations))
	for _, res := range l.reservations {
		reservations = append(reservations, cloneReservation(res))
	}

	sortReservations(reservations)
	return reservations
}

func (l *Ledger) ReservationsForRoom(roomID uuid.UUID) []*entity.Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	ids := l.byRoom[roomID]
	reservations := make([]*entity.Reservation, 0, len(ids))
	for _, id := range ids {
		reservations = append(reservations, cloneReservation(l.reservations[id]))
	}

	sortReservations(reservations)
	return reservations
}

func (l *Ledger) ReservationsForGuest(guestID uuid.UUID) []*entity.Reservation {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var reservations []*entity.Reservation
	for _, res := range l.reservations {
		if res.GuestID == guestID {
			reservations = append(reservations, cloneReservation(res))
		}
	}

	sortReservations(reservations)
	return reservations
}

func sortReservations(reservations []*entity.Reservation) {
	sort.Slice(reservations, func(i, j int) bool {
		if !reservations[i].CheckIn.Equal(reservations[j].CheckIn) {
			return reservations[i].CheckIn.Before(reservations[j].CheckIn)
		}
		return reservations[i].CreatedAt.After(reservations[j].CreatedAt)
	})
}

func cloneRoom(room *entity.Room) *entity.Room {
	c := *room
	return &c
}

func cloneReservation(res *entity.Reservation) *entity.Reservation {
	c := *res
	return &c
}
