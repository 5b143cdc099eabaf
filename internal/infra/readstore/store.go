// Package readstore serves the query side of the Postgres adapter.
package readstore

import (
	"context"
	"strings"

	"atlas-hotel/internal/domain/analytics"
	"atlas-hotel/internal/domain/availability"
	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/domain/contact"
	"atlas-hotel/internal/domain/newsletter"
	"atlas-hotel/internal/infra"
	"atlas-hotel/internal/infra/converter"
	"atlas-hotel/internal/infra/db"
	"atlas-hotel/internal/infra/repository"
	"atlas-hotel/internal/pkg/caldate"
	"atlas-hotel/internal/pkg/pgconv"
	"atlas-hotel/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

const (
	bookingByIDSQL = `SELECT ` + converter.BookingColumns + `
FROM bookings
WHERE id = $1`

	// count(*) OVER () is evaluated before LIMIT, so every row carries the
	// number of matches.
	searchBookingsSQL = `SELECT ` + converter.BookingColumns + `, count(*) OVER () AS matched
FROM bookings
WHERE ($1 = '' OR strpos(search_text, $1) > 0)
  AND ($2 = '' OR status = $2)
  AND ($3::timestamptz IS NULL OR created_at >= $3)
  AND ($4::timestamptz IS NULL OR created_at < $4)
ORDER BY created_at DESC, id DESC
LIMIT $5`

	totalsSQL = `SELECT
	(SELECT count(*) FROM bookings),
	(SELECT count(*) FROM contacts),
	(SELECT count(*) FROM newsletter),
	(SELECT count(*) FROM analytics)`

	recentContactsSQL = `SELECT id, created_at, name, email, message
FROM contacts ORDER BY created_at DESC, id DESC LIMIT $1`

	recentSubscriptionsSQL = `SELECT id, created_at, email
FROM newsletter ORDER BY created_at DESC, id DESC LIMIT $1`

	recentEventsSQL = `SELECT id, created_at, event, path, label
FROM analytics ORDER BY created_at DESC, id DESC LIMIT $1`
)

var _ shared.ReadStore = (*ReadStore)(nil)

type ReadStore struct {
	db db.DBTX
}

func NewReadStore(dbtx db.DBTX) *ReadStore {
	return &ReadStore{db: dbtx}
}

func (r *ReadStore) BookingByID(ctx context.Context, id string) (*booking.Booking, error) {
	rec, err := converter.ScanBookingRecord(r.db.QueryRow(ctx, bookingByIDSQL, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return converter.RecordToBooking(rec), nil
}

func (r *ReadStore) Stays(ctx context.Context, checkIn, checkOut caldate.Date) ([]availability.Stay, error) {
	return repository.NewBookingRepository(r.db).Stays(ctx, checkIn, checkOut)
}

func (r *ReadStore) SearchBookings(ctx context.Context, filter shared.BookingFilter, limit int) ([]*booking.Booking, int, error) {
	if limit <= 0 {
		return []*booking.Booking{}, 0, nil
	}

	rows, err := r.db.Query(ctx, searchBookingsSQL,
		strings.ToLower(strings.TrimSpace(filter.Query)),
		filter.Status.String(),
		pgconv.TimestamptzFromTime(filter.CreatedFrom),
		pgconv.TimestamptzFromTime(filter.CreatedBefore),
		limit,
	)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to search bookings", err)
	}
	defer rows.Close()

	matched := 0
	out := make([]*booking.Booking, 0)
	for rows.Next() {
		rec, total, err := scanSearchRow(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan booking", err)
		}
		matched = total
		out = append(out, converter.RecordToBooking(rec))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return out, matched, nil
}

type searchRow struct {
	rows    pgx.Rows
	matched int64
}

// Scan appends the matched column to the booking columns.
func (s *searchRow) Scan(dest ...any) error {
	return s.rows.Scan(append(dest, &s.matched)...)
}

func scanSearchRow(rows pgx.Rows) (converter.BookingRecord, int, error) {
	row := &searchRow{rows: rows}
	rec, err := converter.ScanBookingRecord(row)
	return rec, int(row.matched), err
}

func (r *ReadStore) Totals(ctx context.Context) (shared.Totals, error) {
	var bookings, contacts, subs, events int64
	if err := r.db.QueryRow(ctx, totalsSQL).Scan(&bookings, &contacts, &subs, &events); err != nil {
		return shared.Totals{}, infra.WrapRepoErr("failed to count collections", err)
	}
	return shared.Totals{
		Bookings:   int(bookings),
		Contacts:   int(contacts),
		Newsletter: int(subs),
		Analytics:  int(events),
	}, nil
}

func (r *ReadStore) RecentContacts(ctx context.Context, limit int) ([]contact.Message, error) {
	rows, err := r.db.Query(ctx, recentContactsSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list contacts", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (contact.Message, error) {
		var m contact.Message
		err := row.Scan(&m.ID, &m.CreatedAt, &m.Name, &m.Email, &m.Message)
		return m, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan contacts", err)
	}
	return out, nil
}

func (r *ReadStore) RecentSubscriptions(ctx context.Context, limit int) ([]newsletter.Subscription, error) {
	rows, err := r.db.Query(ctx, recentSubscriptionsSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list newsletter subscriptions", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (newsletter.Subscription, error) {
		var s newsletter.Subscription
		err := row.Scan(&s.ID, &s.CreatedAt, &s.Email)
		return s, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan newsletter subscriptions", err)
	}
	return out, nil
}

func (r *ReadStore) RecentEvents(ctx context.Context, limit int) ([]analytics.Event, error) {
	rows, err := r.db.Query(ctx, recentEventsSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list analytics events", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (analytics.Event, error) {
		var e analytics.Event
		err := row.Scan(&e.ID, &e.CreatedAt, &e.Event, &e.Path, &e.Label)
		return e, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan analytics events", err)
	}
	return out, nil
}
