package request

// CreateReservationRequest books a room for a guest. The guest is either
// referenced by guest_id or described inline by name and phone, in which
// case an existing guest is matched by phone before a new one is created.
type CreateReservationRequest struct {
	RoomID       string  `json:"room_id" validate:"required,uuid4"`
	GuestID      *string `json:"guest_id,omitempty" validate:"omitempty,uuid4"`
	GuestName    string  `json:"guest_name,omitempty" validate:"omitempty,min=2,max=100"`
	GuestPhone   string  `json:"guest_phone,omitempty" validate:"omitempty,min=10,max=15"`
	GuestAddress *string `json:"guest_address,omitempty"`
	CheckIn      string  `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut     string  `json:"check_out" validate:"required,datetime=2006-01-02"`
}
