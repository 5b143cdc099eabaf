package analytics

import (
	"strings"
	"time"

	"atlas-hotel/internal/pkg/errs"
)

const (
	PageView         = "page_view"
	CTAClick         = "cta_click"
	BookingSubmit    = "booking_submit"
	ContactSubmit    = "contact_submit"
	NewsletterSubmit = "newsletter_submit"
)

var allowed = map[string]struct{}{
	PageView:         {},
	CTAClick:         {},
	BookingSubmit:    {},
	ContactSubmit:    {},
	NewsletterSubmit: {},
}

func IsAllowed(name string) bool {
	_, ok := allowed[name]
	return ok
}

// Event is one front-end tracking hit.
type Event struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Event     string    `json:"event"`
	Path      string    `json:"path"`
	Label     string    `json:"label"`
}

func NewEvent(id, name, path, label string, now time.Time) (Event, error) {
	name = strings.TrimSpace(name)
	if !IsAllowed(name) {
		return Event{}, errs.ErrInvalidEvent
	}
	return Event{
		ID:        id,
		CreatedAt: now,
		Event:     name,
		Path:      strings.TrimSpace(path),
		Label:     strings.TrimSpace(label),
	}, nil
}
