// Package availability computes the rooms left per category for a stay,
// given the bookings already recorded.
package availability

import (
	"time"

	"atlas-hotel/internal/domain/room"
	"atlas-hotel/internal/pkg/caldate"
)

// Stay is the part of a booking that holds inventory.
type Stay struct {
	RoomType  room.Type
	CheckIn   caldate.Date
	CheckOut  caldate.Date
	Cancelled bool
}

// Availability maps every room category to the number of rooms still free.
type Availability map[room.Type]int

func (a Availability) Has(t room.Type) bool {
	return a[t] > 0
}

// Overlaps uses half-open intervals: a stay checking out on the day another
// checks in does not conflict.
func Overlaps(aIn, aOut, bIn, bOut caldate.Date) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// HasWeekdayNight reports whether any night between checkIn and checkOut
// falls on Monday to Friday.
func HasWeekdayNight(checkIn, checkOut caldate.Date) bool {
	for d := checkIn; d.Before(checkOut); d = d.AddDays(1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			return true
		}
	}
	return false
}

// ByRoom parses the requested range and delegates to ByRoomDates. ok is false
// when either date is invalid or check-out is not after check-in.
func ByRoom(stays []Stay, checkIn, checkOut string) (Availability, bool) {
	in, err := caldate.Parse(checkIn)
	if err != nil {
		return nil, false
	}
	out, err := caldate.Parse(checkOut)
	if err != nil {
		return nil, false
	}
	return ByRoomDates(stays, in, out)
}

// ByRoomDates starts from the fixed inventory and takes one room per active
// overlapping stay, whatever the length of the overlap. Classic rooms are
// only sold for stays made entirely of weekend nights.
func ByRoomDates(stays []Stay, checkIn, checkOut caldate.Date) (Availability, bool) {
	if checkIn.IsZero() || checkOut.IsZero() || !checkIn.Before(checkOut) {
		return nil, false
	}

	result := make(Availability, len(room.All))
	for _, t := range room.All {
		result[t] = t.Inventory()
	}

	for _, s := range stays {
		if s.Cancelled || s.CheckIn.IsZero() || s.CheckOut.IsZero() {
			continue
		}
		if _, known := result[s.RoomType]; !known {
			continue
		}
		if !Overlaps(s.CheckIn, s.CheckOut, checkIn, checkOut) {
			continue
		}
		result[s.RoomType] = max(result[s.RoomType]-1, 0)
	}

	if HasWeekdayNight(checkIn, checkOut) {
		result[room.Classic] = 0
	}
	return result, true
}
