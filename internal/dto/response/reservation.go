package response

import (
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/utils"
)

type BillResponse struct {
	Nights        int     `json:"nights"`
	Rate          float64 `json:"rate"`
	RoomCharge    float64 `json:"room_charge"`
	Tax           float64 `json:"tax"`
	ServiceCharge float64 `json:"service_charge"`
	Total         float64 `json:"total"`
}

type ReservationResponse struct {
	ID               string                   `json:"id"`
	ConfirmationCode string                   `json:"confirmation_code"`
	RoomID           string                   `json:"room_id"`
	RoomNumber       string                   `json:"room_number,omitempty"`
	GuestID          string                   `json:"guest_id"`
	GuestName        string                   `json:"guest_name,omitempty"`
	CheckIn          string                   `json:"check_in"`
	CheckOut         string                   `json:"check_out"`
	Nights           int                      `json:"nights"`
	Status           entity.ReservationStatus `json:"status"`
	CreatedAt        time.Time                `json:"created_at"`
}

type ReservationDetailResponse struct {
	ReservationResponse
	Room     *RoomResponse     `json:"room,omitempty"`
	Guest    *GuestResponse    `json:"guest,omitempty"`
	Bill     *BillResponse     `json:"bill,omitempty"`
	Payments []PaymentResponse `json:"payments,omitempty"`
}

// Helper converters. Room and guest are optional enrichment; the service
// passes nil when it only has the reservation.
func ReservationToResponse(reservation *entity.Reservation, room *entity.Room, guest *entity.Guest) ReservationResponse {
	resp := ReservationResponse{
		ID:               reservation.ID.String(),
		ConfirmationCode: reservation.ConfirmationCode,
		RoomID:           reservation.RoomID.String(),
		GuestID:          reservation.GuestID.String(),
		CheckIn:          utils.FormatDate(reservation.CheckIn),
		CheckOut:         utils.FormatDate(reservation.CheckOut),
		Nights:           reservation.Nights(),
		Status:           reservation.Status,
		CreatedAt:        reservation.CreatedAt,
	}

	if room != nil {
		resp.RoomNumber = room.RoomNumber
	}
	if guest != nil {
		resp.GuestName = guest.Name
	}

	return resp
}
