package shared

import (
	"strings"
	"time"

	"atlas-hotel/internal/domain/booking"
)

// BookingFilter narrows the admin booking list. Zero fields match everything.
type BookingFilter struct {
	// Query is matched case-insensitively against booking.SearchText
	Query string
	Status        booking.Status
	CreatedFrom   time.Time
	CreatedBefore time.Time
}

func (f BookingFilter) Matches(b *booking.Booking) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" && !strings.Contains(b.SearchText(), q) {
		return false
	}
	if f.Status != "" && b.Status() != f.Status {
		return false
	}
	if !f.CreatedFrom.IsZero() && b.CreatedAt().Before(f.CreatedFrom) {
		return false
	}
	if !f.CreatedBefore.IsZero() && !b.CreatedAt().Before(f.CreatedBefore) {
		return false
	}
	return true
}

type Totals struct {
	Bookings   int `json:"bookings"`
	Contacts   int `json:"contacts"`
	Newsletter int `json:"newsletter"`
	Analytics  int `json:"analytics"`
}
