package response

import (
	"atlas-hotel/internal/usecase/queries"
)

type DashboardResponse struct {
	OK         bool                    `json:"ok"`
	Totals     queries.DashboardTotals `json:"totals"`
	Bookings   []*BookingResponse      `json:"bookings"`
	Contacts   []ContactResponse       `json:"contacts"`
	Newsletter []SubscriptionResponse  `json:"newsletter"`
	Analytics  []EventResponse         `json:"analytics"`
}

func FromDashboard(d *queries.Dashboard) (*DashboardResponse, error) {
	contacts, err := FromContacts(d.Contacts)
	if err != nil {
		return nil, err
	}
	subs, err := FromSubscriptions(d.Newsletter)
	if err != nil {
		return nil, err
	}
	events, err := FromEvents(d.Analytics)
	if err != nil {
		return nil, err
	}
	return &DashboardResponse{
		OK:         true,
		Totals:     d.Totals,
		Bookings:   FromBookings(d.Bookings),
		Contacts:   contacts,
		Newsletter: subs,
		Analytics:  events,
	}, nil
}
