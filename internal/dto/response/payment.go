package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type PaymentResponse struct {
	ID            string                `json:"id"`
	ReservationID string                `json:"reservation_id"`
	Method        *entity.PaymentMethod `json:"method,omitempty"`
	Amount        float64               `json:"amount"`
	Status        entity.PaymentStatus  `json:"status"`
	Reference     *string               `json:"reference,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}

type PaymentMethodResponse struct {
	Method         entity.PaymentMethod `json:"method"`
	Label          string               `json:"label"`
	RequiredFields []string             `json:"required_fields"`
}

// Helper converters
func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID.String(),
		ReservationID: payment.ReservationID.String(),
		Method:        payment.Method,
		Amount:        payment.Amount,
		Status:        payment.Status,
		Reference:     payment.Reference,
		CreatedAt:     payment.CreatedAt,
	}
}

func PaymentsToResponse(payments []*entity.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, 0, len(payments))
	for _, payment := range payments {
		responses = append(responses, PaymentToResponse(payment))
	}
	return responses
}
