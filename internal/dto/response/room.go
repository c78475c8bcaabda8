package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type RoomResponse struct {
	ID          string              `json:"id"`
	RoomNumber  string              `json:"room_number"`
	Category    entity.RoomCategory `json:"category"`
	Rate        float64             `json:"rate"`
	Description *string             `json:"description,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Nights    int    `json:"nights"`
	Available bool   `json:"available"`
	Conflicts int    `json:"conflicts"`
}

// Helper converters
func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID.String(),
		RoomNumber:  room.RoomNumber,
		Category:    room.Category,
		Rate:        room.Rate,
		Description: room.Description,
		CreatedAt:   room.CreatedAt,
	}
}

func RoomsToResponse(rooms []*entity.Room) []RoomResponse {
	responses := make([]RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		responses = append(responses, RoomToResponse(room))
	}
	return responses
}
