package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/ledger"
	apperrors "hotel-booking/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type paymentFixture struct {
	service  PaymentService
	ledger   *ledger.Ledger
	payments *fakePaymentRepo
	room     *entity.Room
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomNumber: "101",
		Category:   entity.CategoryStandard,
		Rate:       100,
	}

	l, err := ledger.Load(context.Background(), &fakeLedgerStore{rooms: []*entity.Room{room}}, zap.NewNop())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	payments := newFakePaymentRepo()

	return &paymentFixture{
		service:  NewPaymentService(payments, l, zap.NewNop()),
		ledger:   l,
		payments: payments,
		room:     room,
	}
}

// bookStay books four nights at rate 100, so the bill totals 512 with
// tax and service charge.
func (f *paymentFixture) bookStay(t *testing.T) *entity.Reservation {
	t.Helper()

	reservation, err := f.ledger.Book(context.Background(), f.room.ID, uuid.New(),
		time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2031, 1, 5, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	return reservation
}

func (f *paymentFixture) seedPending(t *testing.T, reservationID uuid.UUID, amount float64) *entity.Payment {
	t.Helper()

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ReservationID: reservationID,
		Amount:        amount,
		Status:        entity.PaymentStatusPending,
	}
	if err := f.payments.Create(context.Background(), payment); err != nil {
		t.Fatalf("seed payment: %v", err)
	}
	return payment
}

func TestRecordPayment_SettlesPending(t *testing.T) {
	f := newPaymentFixture(t)
	reservation := f.bookStay(t)
	pending := f.seedPending(t, reservation.ID, 512)

	resp, err := f.service.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		ReservationID: reservation.ID.String(),
		Method:        "cash",
		Amount:        512,
	})
	if err != nil {
		t.Fatalf("RecordPayment returned error: %v", err)
	}

	if resp.ID != pending.ID.String() {
		t.Errorf("settled payment id = %s, want pending payment %s", resp.ID, pending.ID)
	}
	if resp.Status != entity.PaymentStatusCompleted {
		t.Errorf("status = %s, want %s", resp.Status, entity.PaymentStatusCompleted)
	}
	if resp.Method == nil || *resp.Method != entity.PaymentMethodCash {
		t.Errorf("method should be cash")
	}
	if resp.Reference == nil || !strings.HasPrefix(*resp.Reference, "CASH-") {
		t.Errorf("reference should carry the CASH- receipt prefix")
	}
}

func TestRecordPayment_NoPendingInsertsCompleted(t *testing.T) {
	f := newPaymentFixture(t)
	reservation := f.bookStay(t)

	resp, err := f.service.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		ReservationID: reservation.ID.String(),
		Method:        "upi",
		Amount:        512,
		Details:       map[string]string{"upi_id": "guest@bank"},
	})
	if err != nil {
		t.Fatalf("RecordPayment returned error: %v", err)
	}

	if resp.Status != entity.PaymentStatusCompleted {
		t.Errorf("status = %s, want %s", resp.Status, entity.PaymentStatusCompleted)
	}

	stored, _ := f.payments.FindByReservationID(context.Background(), reservation.ID)
	if len(stored) != 1 {
		t.Errorf("stored payments = %d, want 1", len(stored))
	}
}

func TestRecordPayment_AmountMismatch(t *testing.T) {
	f := newPaymentFixture(t)
	reservation := f.bookStay(t)
	f.seedPending(t, reservation.ID, 512)

	_, err := f.service.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		ReservationID: reservation.ID.String(),
		Method:        "cash",
		Amount:        500,
	})
	assertErrorCode(t, err, apperrors.CodeValidation)

	stored, _ := f.payments.FindByReservationID(context.Background(), reservation.ID)
	if stored[0].Status != entity.PaymentStatusPending {
		t.Errorf("rejected payment must leave the pending row untouched")
	}
}

func TestRecordPayment_AlreadyPaid(t *testing.T) {
	f := newPaymentFixture(t)
	reservation := f.bookStay(t)
	pending := f.seedPending(t, reservation.ID, 512)

	if err := f.payments.Complete(context.Background(), pending.ID, entity.PaymentMethodCash, "CASH-TEST", time.Now()); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}

	_, err := f.service.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		ReservationID: reservation.ID.String(),
		Method:        "cash",
		Amount:        512,
	})
	assertErrorCode(t, err, apperrors.CodeConflict)
}

func TestRecordPayment_CancelledReservation(t *testing.T) {
	f := newPaymentFixture(t)
	reservation := f.bookStay(t)

	if _, err := f.ledger.Cancel(context.Background(), reservation.ID); err != nil {
		t.Fatalf("Cancel returned error: %v", err)
	}

	_, err := f.service.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		ReservationID: reservation.ID.String(),
		Method:        "cash",
		Amount:        512,
	})
	assertErrorCode(t, err, apperrors.CodeState)
}

func TestRecordPayment_UnknownReservation(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.service.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		ReservationID: uuid.New().String(),
		Method:        "cash",
		Amount:        512,
	})
	assertErrorCode(t, err, apperrors.CodeNotFound)
}

func TestGetMethods(t *testing.T) {
	f := newPaymentFixture(t)

	methods := f.service.GetMethods()
	if len(methods) != 4 {
		t.Fatalf("methods = %d, want 4", len(methods))
	}

	want := []entity.PaymentMethod{
		entity.PaymentMethodCreditCard,
		entity.PaymentMethodDebitCard,
		entity.PaymentMethodCash,
		entity.PaymentMethodUPI,
	}
	for i, method := range want {
		if methods[i].Method != method {
			t.Errorf("methods[%d] = %s, want %s", i, methods[i].Method, method)
		}
	}

	// Cash asks for no details but the field list is still present.
	if methods[2].RequiredFields == nil {
		t.Errorf("cash required fields should be an empty list, not null")
	}
}

func TestGetReservationPayments_UnknownReservation(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.service.GetReservationPayments(context.Background(), uuid.New().String())
	assertErrorCode(t, err, apperrors.CodeNotFound)
}
