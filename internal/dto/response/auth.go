package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type AuthResponse struct {
	StaffID   string           `json:"staff_id"`
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	Role      entity.StaffRole `json:"role"`
}

type StaffResponse struct {
	ID        string           `json:"id"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	Role      entity.StaffRole `json:"role"`
	IsActive  bool             `json:"is_active"`
	CreatedAt time.Time        `json:"created_at"`
}

// Helper converters
func StaffToResponse(staff *entity.Staff) StaffResponse {
	return StaffResponse{
		ID:        staff.ID.String(),
		Username:  staff.Username,
		Email:     staff.Email,
		Role:      staff.Role,
		IsActive:  staff.IsActive,
		CreatedAt: staff.CreatedAt,
	}
}

func AuthToResponse(staff *entity.Staff, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		StaffID:  staff.ID.String(),
		Username: staff.Username,
		Email:    staff.Email,
		Role:     staff.Role,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
