package request

type CreateRoomRequest struct {
	RoomNumber  string  `json:"room_number" validate:"required,min=1,max=10"`
	Category    string  `json:"category" validate:"required,oneof=standard deluxe suite family"`
	Rate        float64 `json:"rate" validate:"required,gt=0"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type UpdateRoomRateRequest struct {
	Rate float64 `json:"rate" validate:"required,gt=0"`
}
