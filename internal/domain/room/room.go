package room

import "strings"

type Type string

const (
	Classic Type = "classic"
	Deluxe  Type = "deluxe"
	Suite   Type = "suite"
)

// All lists the room categories in catalogue order.
var All = []Type{Classic, Deluxe, Suite}

var inventory = map[Type]int{
	Classic: 14,
	Deluxe:  10,
	Suite:   6,
}

const MaxGuests = 4

func Parse(value string) (Type, bool) {
	t := Type(strings.ToLower(strings.TrimSpace(value)))
	return t, t.IsValid()
}

func (t Type) IsValid() bool {
	_, ok := inventory[t]
	return ok
}

// Inventory is the number of rooms of this category the hotel sells.
func (t Type) Inventory() int {
	return inventory[t]
}

func (t Type) String() string {
	return string(t)
}
