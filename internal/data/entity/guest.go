package entity

type Guest struct {
	Base
	Name    string  `db:"name"`
	Phone   string  `db:"phone"`
	Address *string `db:"address"`
}
