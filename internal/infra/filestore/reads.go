package filestore

import (
	"context"

	"atlas-hotel/internal/domain/analytics"
	"atlas-hotel/internal/domain/availability"
	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/domain/contact"
	"atlas-hotel/internal/domain/newsletter"
	"atlas-hotel/internal/infra"
	"atlas-hotel/internal/infra/converter"
	"atlas-hotel/internal/pkg/caldate"
	"atlas-hotel/internal/usecase/shared"
)

type readStore struct {
	store *Store
}

func (r *readStore) BookingByID(ctx context.Context, id string) (*booking.Booking, error) {
	doc, err := r.store.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(doc.Bookings, id)
	if i < 0 {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return converter.RecordToBooking(doc.Bookings[i]), nil
}

func (r *readStore) Stays(ctx context.Context, checkIn, checkOut caldate.Date) ([]availability.Stay, error) {
	doc, err := r.store.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return overlappingStays(doc.Bookings, checkIn, checkOut), nil
}

func (r *readStore) SearchBookings(ctx context.Context, filter shared.BookingFilter, limit int) ([]*booking.Booking, int, error) {
	doc, err := r.store.snapshot(ctx)
	if err != nil {
		return nil, 0, err
	}

	matched := 0
	out := make([]*booking.Booking, 0, min(limit, len(doc.Bookings)))
	for _, rec := range doc.Bookings {
		b := converter.RecordToBooking(rec)
		if !filter.Matches(b) {
			continue
		}
		matched++
		if len(out) < limit {
			out = append(out, b)
		}
	}
	return out, matched, nil
}

func (r *readStore) Totals(ctx context.Context) (shared.Totals, error) {
	doc, err := r.store.snapshot(ctx)
	if err != nil {
		return shared.Totals{}, err
	}
	return shared.Totals{
		Bookings:   len(doc.Bookings),
		Contacts:   len(doc.Contacts),
		Newsletter: len(doc.Newsletter),
		Analytics:  len(doc.Analytics),
	}, nil
}

func (r *readStore) RecentContacts(ctx context.Context, limit int) ([]contact.Message, error) {
	doc, err := r.store.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return head(doc.Contacts, limit), nil
}

func (r *readStore) RecentSubscriptions(ctx context.Context, limit int) ([]newsletter.Subscription, error) {
	doc, err := r.store.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return head(doc.Newsletter, limit), nil
}

func (r *readStore) RecentEvents(ctx context.Context, limit int) ([]analytics.Event, error) {
	doc, err := r.store.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return head(doc.Analytics, limit), nil
}

func head[T any](rows []T, limit int) []T {
	if limit >= 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}
