package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusBooked     ReservationStatus = "booked"
	ReservationStatusCheckedIn  ReservationStatus = "checked_in"
	ReservationStatusCheckedOut ReservationStatus = "checked_out"
	ReservationStatusCancelled  ReservationStatus = "cancelled"
)

// IsActive reports whether the reservation holds its room. Only active
// reservations count for availability.
func (s ReservationStatus) IsActive() bool {
	return s == ReservationStatusBooked || s == ReservationStatusCheckedIn
}

func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCheckedOut || s == ReservationStatusCancelled
}

// CanTransitionTo encodes the reservation lifecycle:
// booked -> checked_in -> checked_out, booked -> cancelled.
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	switch s {
	case ReservationStatusBooked:
		return target == ReservationStatusCheckedIn || target == ReservationStatusCancelled
	case ReservationStatusCheckedIn:
		return target == ReservationStatusCheckedOut
	default:
		return false
	}
}

type Reservation struct {
	BaseNoDelete
	ConfirmationCode string            `db:"confirmation_code"`
	RoomID           uuid.UUID         `db:"room_id"`
	GuestID          uuid.UUID         `db:"guest_id"`
	CheckIn          time.Time         `db:"check_in"`
	CheckOut         time.Time         `db:"check_out"`
	Status           ReservationStatus `db:"status"`
}

// Overlaps reports whether the stay intersects the half-open range
// [start, end). A stay's check-out day can be another stay's check-in
// day without conflict.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.CheckIn.Before(end) && start.Before(r.CheckOut)
}

func (r *Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}
