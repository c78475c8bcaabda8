package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type GuestResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Helper converters
func GuestToResponse(guest *entity.Guest) GuestResponse {
	return GuestResponse{
		ID:        guest.ID.String(),
		Name:      guest.Name,
		Phone:     guest.Phone,
		Address:   guest.Address,
		CreatedAt: guest.CreatedAt,
	}
}
