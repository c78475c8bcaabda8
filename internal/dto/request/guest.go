package request

type CreateGuestRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=100"`
	Phone   string  `json:"phone" validate:"required,min=10,max=15"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=500"`
}
