package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	apperrors "hotel-booking/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type fakeStore struct {
	rooms        []*entity.Room
	reservations []*entity.Reservation

	insertRoomErr        error
	updateRateErr        error
	insertReservationErr error
	updateStatusErr      error

	insertedRooms        int
	insertedReservations int
	statusUpdates        int
	rateUpdates          int
}

func (s *fakeStore) LoadRooms(ctx context.Context) ([]*entity.Room, error) {
	return s.rooms, nil
}

func (s *fakeStore) LoadReservations(ctx context.Context) ([]*entity.Reservation, error) {
	return s.reservations, nil
}

func (s *fakeStore) InsertRoom(ctx context.Context, room *entity.Room) error {
	if s.insertRoomErr != nil {
		return s.insertRoomErr
	}
	s.insertedRooms++
	return nil
}

func (s *fakeStore) UpdateRoomRate(ctx context.Context, roomID uuid.UUID, rate float64, updatedAt time.Time) error {
	if s.updateRateErr != nil {
		return s.updateRateErr
	}
	s.rateUpdates++
	return nil
}

func (s *fakeStore) InsertReservation(ctx context.Context, reservation *entity.Reservation) error {
	if s.insertReservationErr != nil {
		return s.insertReservationErr
	}
	s.insertedReservations++
	return nil
}

func (s *fakeStore) UpdateReservationStatus(ctx context.Context, reservationID uuid.UUID, status entity.ReservationStatus, updatedAt time.Time) error {
	if s.updateStatusErr != nil {
		return s.updateStatusErr
	}
	s.statusUpdates++
	return nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRoom(number string) *entity.Room {
	now := time.Now()
	return &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomNumber: number,
		Category:   entity.CategoryStandard,
		Rate:       100,
	}
}

func loadLedger(t *testing.T, store *fakeStore) *Ledger {
	t.Helper()
	l, err := Load(context.Background(), store, zap.NewNop())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return l
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	appErr, ok := err.(*apperrors.AppError)
	if !ok {
		t.Fatalf("expected AppError with code %s, got %T: %v", code, err, err)
	}
	if appErr.Code != code {
		t.Errorf("error code = %s, want %s", appErr.Code, code)
	}
}

func TestBook(t *testing.T) {
	room := testRoom("101")
	store := &fakeStore{rooms: []*entity.Room{room}}
	l := loadLedger(t, store)

	res, err := l.Book(context.Background(), room.ID, uuid.New(), date(2024, 1, 1), date(2024, 1, 5))
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}

	if res.ID == uuid.Nil {
		t.Errorf("reservation ID should be set")
	}
	if res.Status != entity.ReservationStatusBooked {
		t.Errorf("status = %s, want %s", res.Status, entity.ReservationStatusBooked)
	}
	if res.ConfirmationCode == "" {
		t.Errorf("confirmation code should be set")
	}
	if store.insertedReservations != 1 {
		t.Errorf("store inserts = %d, want 1", store.insertedReservations)
	}

	stored, ok := l.Reservation(res.ID)
	if !ok {
		t.Fatalf("reservation not found in ledger after Book")
	}
	if stored.RoomID != room.ID {
		t.Errorf("room ID = %s, want %s", stored.RoomID, room.ID)
	}
}

func TestBook_Overlap(t *testing.T) {
	room := testRoom("101")
	store := &fakeStore{rooms: []*entity.Room{room}}
	l := loadLedger(t, store)

	if _, err := l.Book(context.Background(), room.ID, uuid.New(), date(2024, 1, 1), date(2024, 1, 5)); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	// Overlaps the existing stay on 2024-01-04.
	_, err := l.Book(context.Background(), room.ID, uuid.New(), date(2024, 1, 4), date(2024, 1, 6))
	assertCode(t, err, apperrors.CodeConflict)

	if store.insertedReservations != 1 {
		t.Errorf("conflicting booking must not reach the store, inserts = %d", store.insertedReservations)
	}
	if got := len(l.ReservationsForRoom(room.ID)); got != 1 {
		t.Errorf("reservations on room = %d, want 1", got)
	}

	// Adjacent stay: check-in on the previous check-out day is fine.
	if _, err := l.Book(context.Background(), room.ID, uuid.New(), date(2024, 1, 5), date(2024, 1, 7)); err != nil {
		t.Errorf("adjacent booking should succeed, got %v", err)
	}
}

func TestBook_Validation(t *testing.T) {
	room := testRoom("101")
	store := &fakeStore{rooms: []*entity.Room{room}}
	l := loadLedger(t, store)

	tests := []struct {
		name     string
		roomID   uuid.UUID
		checkIn  time.Time
		checkOut time.Time
	}{
		{"equal dates", room.ID, date(2024, 1, 1), date(2024, 1, 1)},
		{"reversed dates", room.ID, date(2024, 1, 5), date(2024, 1, 1)},
		{"unknown room", uuid.New(), date(2024, 1, 1), date(2024, 1, 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Book(context.Background(), tt.roomID, uuid.New(), tt.checkIn, tt.checkOut)
			assertCode(t, err, apperrors.CodeValidation)
		})
	}

	if store.insertedReservations != 0 {
		t.Errorf("invalid bookings must not reach the store, inserts = %d", store.insertedReservations)
	}
}

func TestBook_StoreFailure(t *testing.T) {
	room := testRoom("101")
	store := &fakeStore{
		rooms:                []*entity.Room{room},
		insertReservationErr: errors.New("connection reset"),
	}
	l := loadLedger(t, store)

	_, err := l.Book(context.Background(), room.ID, uuid.New(), date(2024, 1, 1), date(2024, 1, 5))
	if err == nil {
		t.Fatalf("Book should fail when the store fails")
	}

	// Memory must be untouched: the room is still free.
	available, err := l.IsAvailable(room.ID, date(2024, 1, 1), date(2024, 1, 5))
	if err != nil {
		t.Fatalf("IsAvailable returned error: %v", err)
	}
	if !available {
		t.Errorf("failed booking must leave the ledger unchanged")
	}
	if got := len(l.ReservationsForRoom(room.ID)); got != 0 {
		t.Errorf("reservations on room = %d, want 0", got)
	}
}

func TestTransitions(t *testing.T) {
	ctx := context.Background()

	// Each step drives one reservation through a sequence of
	// operations and expects the final one to fail or succeed.
	type op func(l *Ledger, id uuid.UUID) error
	checkIn := func(l *Ledger, id uuid.UUID) error { _, err := l.CheckIn(ctx, id); return err }
	checkOut := func(l *Ledger, id uuid.UUID) error { _, err := l.CheckOut(ctx, id); return err }
	cancel := func(l *Ledger, id uuid.UUID) error { _, err := l.Cancel(ctx, id); return err }

	tests := []struct {
		name     string
		steps    []op
		wantCode string
		wantLast entity.ReservationStatus
	}{
		{"check in booked", []op{checkIn}, "", entity.ReservationStatusCheckedIn},
		{"full stay", []op{checkIn, checkOut}, "", entity.ReservationStatusCheckedOut},
		{"cancel booked", []op{cancel}, "", entity.ReservationStatusCancelled},
		{"check out before check in", []op{checkOut}, apperrors.CodeState, entity.ReservationStatusBooked},
		{"cancel after check in", []op{checkIn, cancel}, apperrors.CodeState, entity.ReservationStatusCheckedIn},
		{"cancel after check out", []op{checkIn, checkOut, cancel}, apperrors.CodeState, entity.ReservationStatusCheckedOut},
		{"check in twice", []op{checkIn, checkIn}, apperrors.CodeState, entity.ReservationStatusCheckedIn},
		{"check in after cancel", []op{cancel, checkIn}, apperrors.CodeState, entity.ReservationStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := testRoom("101")
			store := &fakeStore{rooms: []*entity.Room{room}}
			l := loadLedger(t, store)

			res, err := l.Book(ctx, room.ID, uuid.New(), date(2024, 1, 1), date(2024, 1, 5))
			if err != nil {
				t.Fatalf("Book returned error: %v", err)
			}

			var lastErr error
			for _, step := range tt.steps {
				lastErr = step(l, res.ID)
			}

			if tt.wantCode == "" {
				if lastErr != nil {
					t.Fatalf("unexpected error: %v", lastErr)
				}
			} else {
				assertCode(t, lastErr, tt.wantCode)
			}

			current, _ := l.Reservation(res.ID)
			if current.Status != tt.wantLast {
				t.Errorf("final status = %s, want %s", current.Status, tt.wantLast)
			}
		})
	}
}

func TestTransition_NotFound(t *testing.T) {
	store := &fakeStore{rooms: []*entity.Room{testRoom("101")}}
	l := loadLedger(t, store)

	_, err := l.CheckIn(context.Background(), uuid.New())
	assertCode(t, err, apperrors.CodeNotFound)
}

func TestTransition_StoreFailure(t *testing.T) {
	room := testRoom("101")
	store := &fakeStore{rooms: []*entity.Room{room}}
	l := loadLedger(t, store)

	res, err := l.Book(context.Background(), room.ID, uuid.New(), date(2024, 1, 1), date(2024, 1, 5))
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}

	store.updateStatusErr = errors.New("connection reset")
	if _, err := l.CheckIn(context.Background(), res.ID); err == nil {
		t.Fatalf("CheckIn should fail when the store fails")
	}

	current, _ := l.Reservation(res.ID)
	if current.Status != entity.ReservationStatusBooked {
		t.Errorf("status = %s, want %s after failed persist", current.Status, entity.ReservationStatusBooked)
	}
}

func TestCancelFreesRoom(t *testing.T) {
	room := testRoom("101")
	store := &fakeStore{rooms: []*entity.Room{room}}
	l := loadLedger(t, store)
	ctx := context.Background()

	res, err := l.Book(ctx, room.ID, uuid.New(), date(2024, 1, 1), date(2024, 1, 5))
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}

	if available, _ := l.IsAvailable(room.ID, date(2024, 1, 2), date(2024, 1, 4)); available {
		t.Fatalf("room should be unavailable while booked")
	}

	if _, err := l.Cancel(ctx, res.ID); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}

	if available, _ := l.IsAvailable(room.ID, date(2024, 1, 2), date(2024, 1, 4)); !available {
		t.Errorf("cancelled reservation should free the room")
	}
}

func TestIsAvailable_Validation(t *testing.T) {
	room := testRoom("101")
	l := loadLedger(t, &fakeStore{rooms: []*entity.Room{room}})

	_, err := l.IsAvailable(room.ID, date(2024, 1, 5), date(2024, 1, 5))
	assertCode(t, err, apperrors.CodeValidation)

	_, err = l.IsAvailable(uuid.New(), date(2024, 1, 1), date(2024, 1, 5))
	assertCode(t, err, apperrors.CodeValidation)
}

func TestAvailableRooms(t *testing.T) {
	standard := testRoom("101")
	deluxe := testRoom("201")
	deluxe.Category = entity.CategoryDeluxe
	suite := testRoom("301")
	suite.Category = entity.CategorySuite

	store := &fakeStore{rooms: []*entity.Room{standard, deluxe, suite}}
	l := loadLedger(t, store)
	ctx := context.Background()

	if _, err := l.Book(ctx, deluxe.ID, uuid.New(), date(2024, 1, 1), date(2024, 1, 5)); err != nil {
		t.Fatalf("Book returned error: %v", err)
	}

	rooms, err := l.AvailableRooms(date(2024, 1, 2), date(2024, 1, 4), nil)
	if err != nil {
		t.Fatalf("AvailableRooms returned error: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("available rooms = %d, want 2", len(rooms))
	}
	if rooms[0].RoomNumber != "101" || rooms[1].RoomNumber != "301" {
		t.Errorf("rooms = [%s %s], want [101 301]", rooms[0].RoomNumber, rooms[1].RoomNumber)
	}

	category := entity.CategorySuite
	rooms, err = l.AvailableRooms(date(2024, 1, 2), date(2024, 1, 4), &category)
	if err != nil {
		t.Fatalf("AvailableRooms returned error: %v", err)
	}
	if len(rooms) != 1 || rooms[0].RoomNumber != "301" {
		t.Errorf("suite filter should return room 301 only, got %d rooms", len(rooms))
	}
}

func TestAddRoom(t *testing.T) {
	store := &fakeStore{}
	l := loadLedger(t, store)
	ctx := context.Background()

	room := testRoom("101")
	added, err := l.AddRoom(ctx, room)
	if err != nil {
		t.Fatalf("AddRoom returned error: %v", err)
	}
	if added.RoomNumber != "101" {
		t.Errorf("room number = %s, want 101", added.RoomNumber)
	}
	if store.insertedRooms != 1 {
		t.Errorf("store inserts = %d, want 1", store.insertedRooms)
	}

	_, err = l.AddRoom(ctx, testRoom("101"))
	assertCode(t, err, apperrors.CodeConflict)

	bad := testRoom("102")
	bad.Rate = 0
	_, err = l.AddRoom(ctx, bad)
	assertCode(t, err, apperrors.CodeValidation)
}

func TestUpdateRate(t *testing.T) {
	room := testRoom("101")
	store := &fakeStore{rooms: []*entity.Room{room}}
	l := loadLedger(t, store)
	ctx := context.Background()

	updated, err := l.UpdateRate(ctx, room.ID, 175)
	if err != nil {
		t.Fatalf("UpdateRate returned error: %v", err)
	}
	if updated.Rate != 175 {
		t.Errorf("rate = %.2f, want 175", updated.Rate)
	}

	current, _ := l.Room(room.ID)
	if current.Rate != 175 {
		t.Errorf("ledger rate = %.2f, want 175", current.Rate)
	}

	_, err = l.UpdateRate(ctx, uuid.New(), 200)
	assertCode(t, err, apperrors.CodeNotFound)

	_, err = l.UpdateRate(ctx, room.ID, -10)
	assertCode(t, err, apperrors.CodeValidation)

	// The failed updates must not change the rate.
	current, _ = l.Room(room.ID)
	if current.Rate != 175 {
		t.Errorf("ledger rate = %.2f, want 175 after failed updates", current.Rate)
	}
}

func TestLoad_ExistingReservations(t *testing.T) {
	room := testRoom("101")
	existing := &entity.Reservation{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ConfirmationCode: "RSV-20240101-000000-0001",
		RoomID:           room.ID,
		GuestID:          uuid.New(),
		CheckIn:          date(2024, 1, 1),
		CheckOut:         date(2024, 1, 5),
		Status:           entity.ReservationStatusBooked,
	}

	store := &fakeStore{
		rooms:        []*entity.Room{room},
		reservations: []*entity.Reservation{existing},
	}
	l := loadLedger(t, store)

	// Loaded state participates in conflict detection.
	_, err := l.Book(context.Background(), room.ID, uuid.New(), date(2024, 1, 3), date(2024, 1, 6))
	assertCode(t, err, apperrors.CodeConflict)

	if _, ok := l.Reservation(existing.ID); !ok {
		t.Errorf("loaded reservation should be readable")
	}
}

func TestConcurrentBooking(t *testing.T) {
	room := testRoom("101")
	store := &fakeStore{rooms: []*entity.Room{room}}
	l := loadLedger(t, store)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = l.Book(context.Background(), room.ID, uuid.New(), date(2024, 1, 1), date(2024, 1, 5))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assertCode(t, err, apperrors.CodeConflict)
		}
	}

	if succeeded != 1 {
		t.Errorf("exactly one concurrent booking should win, got %d", succeeded)
	}
	if got := len(l.ReservationsForRoom(room.ID)); got != 1 {
		t.Errorf("reservations on room = %d, want 1", got)
	}
}
