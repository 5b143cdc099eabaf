package queries

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/queries/admin.go -package=queriesmock

import (
	"context"
	"strings"
	"time"

	"atlas-hotel/internal/domain/analytics"
	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/domain/contact"
	"atlas-hotel/internal/domain/newsletter"
	"atlas-hotel/internal/infra"
	"atlas-hotel/internal/pkg/caldate"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/usecase/shared"
)

const (
	DashboardBookingLimit   = 100
	DashboardInquiryLimit   = 20
	DashboardAnalyticsLimit = 30
)

// DashboardFilter carries the raw admin form values. Unparseable dates are ignored.
type DashboardFilter struct {
	Query    string
	Status   string
	DateFrom string
	DateTo   string
}

type DashboardTotals struct {
	shared.Totals
	FilteredBookings int `json:"filteredBookings"`
}

type Dashboard struct {
	Totals     DashboardTotals
	Bookings   []*booking.Booking
	Contacts   []contact.Message
	Newsletter []newsletter.Subscription
	Analytics  []analytics.Event
}

type AdminQueries interface {
	Dashboard(ctx context.Context, filter DashboardFilter) (*Dashboard, error)
	// ExportBookings returns the same bookings the dashboard lists for filter.
	ExportBookings(ctx context.Context, filter DashboardFilter) ([]*booking.Booking, error)
	Booking(ctx context.Context, id string) (*booking.Booking, error)
}

type adminQueriesImpl struct {
	reads    shared.ReadStore
	location *time.Location
}

// NewAdminQueries reads the date filters as calendar days in loc.
func NewAdminQueries(uow shared.UnitOfWork, loc *time.Location) AdminQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &adminQueriesImpl{
		reads:    uow.Reads(),
		location: loc,
	}
}

func (q *adminQueriesImpl) bookingFilter(f DashboardFilter) shared.BookingFilter {
	out := shared.BookingFilter{Query: strings.TrimSpace(f.Query)}

	status := strings.ToLower(strings.TrimSpace(f.Status))
	if status != "" && status != "all" {
		out.Status = booking.Status(status)
	}
	if from, err := caldate.Parse(f.DateFrom); err == nil {
		out.CreatedFrom = q.startOfDay(from)
	}
	if to, err := caldate.Parse(f.DateTo); err == nil {
		out.CreatedBefore = q.startOfDay(to.AddDays(1))
	}
	return out
}

func (q *adminQueriesImpl) startOfDay(d caldate.Date) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, q.location)
}

func (q *adminQueriesImpl) Dashboard(ctx context.Context, filter DashboardFilter) (*Dashboard, error) {
	bookings, matched, err := q.reads.SearchBookings(ctx, q.bookingFilter(filter), DashboardBookingLimit)
	if err != nil {
		return nil, err
	}
	totals, err := q.reads.Totals(ctx)
	if err != nil {
		return nil, err
	}
	contacts, err := q.reads.RecentContacts(ctx, DashboardInquiryLimit)
	if err != nil {
		return nil, err
	}
	subs, err := q.reads.RecentSubscriptions(ctx, DashboardInquiryLimit)
	if err != nil {
		return nil, err
	}
	events, err := q.reads.RecentEvents(ctx, DashboardAnalyticsLimit)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Totals:     DashboardTotals{Totals: totals, FilteredBookings: matched},
		Bookings:   bookings,
		Contacts:   contacts,
		Newsletter: subs,
		Analytics:  events,
	}, nil
}

func (q *adminQueriesImpl) ExportBookings(ctx context.Context, filter DashboardFilter) ([]*booking.Booking, error) {
	bookings, _, err := q.reads.SearchBookings(ctx, q.bookingFilter(filter), DashboardBookingLimit)
	return bookings, err
}

func (q *adminQueriesImpl) Booking(ctx context.Context, id string) (*booking.Booking, error) {
	b, err := q.reads.BookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	return b, nil
}
