package entity

import (
	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodUPI        PaymentMethod = "upi"
)

func ParsePaymentMethod(value string) (PaymentMethod, bool) {
	switch PaymentMethod(value) {
	case PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodCash, PaymentMethodUPI:
		return PaymentMethod(value), true
	default:
		return "", false
	}
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment is created pending when a reservation is booked and completed
// once the guest pays, so Method stays nil until then.
type Payment struct {
	Base
	ReservationID uuid.UUID      `db:"reservation_id"`
	Method        *PaymentMethod `db:"method"`
	Amount        float64        `db:"amount"`
	Status        PaymentStatus  `db:"status"`
	Reference     *string        `db:"reference"`
}
