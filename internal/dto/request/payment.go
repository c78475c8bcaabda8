package request

// RecordPaymentRequest settles the bill of a reservation. Details carries
// the method-specific fields the processor asks for, e.g. card_number for
// cards or upi_id for UPI.
type RecordPaymentRequest struct {
	ReservationID string            `json:"reservation_id" validate:"required,uuid4"`
	Method        string            `json:"method" validate:"required,oneof=credit_card debit_card cash upi"`
	Amount        float64           `json:"amount" validate:"required,gt=0"`
	Details       map[string]string `json:"details,omitempty"`
}
