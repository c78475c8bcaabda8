package utils

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for stay dates. Stays are calendar
// days, stored as midnight UTC.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a normalized UTC date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return NormalizeDate(t), nil
}

// NormalizeDate truncates a timestamp to midnight UTC.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current date normalized to midnight UTC.
func Today() time.Time {
	return NormalizeDate(time.Now().UTC())
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Nights counts the nights in a half-open [checkIn, checkOut) stay.
func Nights(checkIn, checkOut time.Time) int {
	return int(NormalizeDate(checkOut).Sub(NormalizeDate(checkIn)).Hours() / 24)
}
