package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"

	"atlas-hotel/internal/domain/analytics"
	"atlas-hotel/internal/domain/availability"
	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/domain/contact"
	"atlas-hotel/internal/domain/newsletter"
	"atlas-hotel/internal/pkg/caldate"
)

// UnitOfWork is implemented by both the JSON file store and Postgres.
type UnitOfWork interface {
	// Within: writes issued through tx commit together or not at all
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: query side, outside any write transaction
	Reads() ReadStore
}

type Tx interface {
	Bookings() BookingRepository
	Inquiries() InquiryRepository
}

type BookingRepository interface {
	// LockInventory serializes availability checks and inserts until the
	// surrounding transaction ends.
	LockInventory(ctx context.Context) error
	// Stays returns every booking, cancelled included, whose dates overlap [checkIn, checkOut).
	Stays(ctx context.Context, checkIn, checkOut caldate.Date) ([]availability.Stay, error)
	Create(ctx context.Context, b *booking.Booking) error
	// GetForUpdate locks the row until the transaction ends.
	GetForUpdate(ctx context.Context, id string) (*booking.Booking, error)
	Update(ctx context.Context, b *booking.Booking) error
}

type InquiryRepository interface {
	CreateContact(ctx context.Context, msg contact.Message) error
	CreateSubscription(ctx context.Context, s newsletter.Subscription) error
	CreateEvent(ctx context.Context, e analytics.Event) error
}

type ReadStore interface {
	BookingByID(ctx context.Context, id string) (*booking.Booking, error)
	Stays(ctx context.Context, checkIn, checkOut caldate.Date) ([]availability.Stay, error)
	// SearchBookings returns up to limit matches, newest first, and the total number of matches.
	SearchBookings(ctx context.Context, filter BookingFilter, limit int) ([]*booking.Booking, int, error)
	Totals(ctx context.Context) (Totals, error)
	RecentContacts(ctx context.Context, limit int) ([]contact.Message, error)
	RecentSubscriptions(ctx context.Context, limit int) ([]newsletter.Subscription, error)
	RecentEvents(ctx context.Context, limit int) ([]analytics.Event, error)
}
