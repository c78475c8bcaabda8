package entity

type RoomCategory string

const (
	CategoryStandard RoomCategory = "standard"
	CategoryDeluxe   RoomCategory = "deluxe"
	CategorySuite    RoomCategory = "suite"
	CategoryFamily   RoomCategory = "family"
)

func ParseRoomCategory(value string) (RoomCategory, bool) {
	switch RoomCategory(value) {
	case CategoryStandard, CategoryDeluxe, CategorySuite, CategoryFamily:
		return RoomCategory(value), true
	default:
		return "", false
	}
}

type Room struct {
	Base
	RoomNumber  string       `db:"room_number"`
	Category    RoomCategory `db:"category"`
	Rate        float64      `db:"rate"`
	Description *string      `db:"description"`
}
