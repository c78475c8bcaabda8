package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-01-05")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}

	want := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", got, want)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	tests := []string{
		"",
		"2024-13-01",
		"2024-01-32",
		"05-01-2024",
		"2024/01/05",
		"not-a-date",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseDate(input); err == nil {
				t.Errorf("ParseDate(%q) should fail", input)
			}
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	input := time.Date(2024, 3, 15, 23, 45, 12, 999, loc)

	got := NormalizeDate(input)
	want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("NormalizeDate = %v, want %v", got, want)
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"single night", "2024-01-01", "2024-01-02", 1},
		{"four nights", "2024-01-01", "2024-01-05", 4},
		{"same day", "2024-01-01", "2024-01-01", 0},
		{"across month end", "2024-01-30", "2024-02-02", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkIn, _ := ParseDate(tt.checkIn)
			checkOut, _ := ParseDate(tt.checkOut)

			if got := Nights(checkIn, checkOut); got != tt.want {
				t.Errorf("Nights(%s, %s) = %d, want %d", tt.checkIn, tt.checkOut, got, tt.want)
			}
		})
	}
}
