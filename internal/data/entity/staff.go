package entity

type StaffRole string

const (
	RoleStaff StaffRole = "staff"
	RoleAdmin StaffRole = "admin"
)

type Staff struct {
	Base
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password"`
	Role         StaffRole `db:"role"`
	IsActive     bool      `db:"is_active"`
}
