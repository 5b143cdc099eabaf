//go:build unit || e2e

package builder

import (
	"testing"
	"time"

	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/domain/customer"
	"atlas-hotel/internal/domain/pricing"
	reqdto "atlas-hotel/internal/handler/dto/request"

	"github.com/stretchr/testify/require"
)

// BookingBuilder defaults to a priceable weekend stay in a suite.
type BookingBuilder struct {
	ID        string
	FullName  string
	Email     string
	Phone     string
	CheckIn   string
	CheckOut  string
	RoomType  string
	Guests    int
	Addons    []string
	Promo     string
	Status    booking.Status
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        "ATL-0000TEST",
		FullName:  "Jeanne Martin",
		Email:     "jeanne@example.com",
		Phone:     "+33 6 12 34 56 78",
		CheckIn:   "2026-07-11",
		CheckOut:  "2026-07-13",
		RoomType:  "suite",
		Guests:    2,
		Addons:    []string{"breakfast"},
		Status:    booking.StatusNew,
		CreatedAt: time.Date(2026, 6, 1, 9, 30, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) WithID(id string) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithCustomer(fullName, email string) *BookingBuilder {
	b.FullName = fullName
	b.Email = email
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut, roomType string) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	b.RoomType = roomType
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithCreatedAt(t time.Time) *BookingBuilder {
	b.CreatedAt = t
	return b
}

func (b *BookingBuilder) StayRequest() pricing.StayRequest {
	return pricing.StayRequest{
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		RoomType:  b.RoomType,
		Guests:    b.Guests,
		Addons:    b.Addons,
		PromoCode: b.Promo,
	}
}

// Build prices the stay with the default tariff.
func (b *BookingBuilder) Build(t *testing.T) *booking.Booking {
	t.Helper()

	req := b.StayRequest()
	est, ok := pricing.CalculateEstimate(req)
	require.True(t, ok, "builder stay must be priceable")

	cust := customer.Customer{FullName: b.FullName, Email: b.Email, Phone: b.Phone}
	created, err := booking.New(b.ID, cust, req, est, b.CreatedAt)
	require.NoError(t, err)
	if b.Status != booking.StatusNew {
		require.NoError(t, created.ChangeStatus(b.Status, b.CreatedAt))
	}
	return created
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		StayFields: reqdto.StayFields{
			CheckIn:  b.CheckIn,
			CheckOut: b.CheckOut,
			RoomType: b.RoomType,
			Guests:   b.Guests,
			Addons:   reqdto.StringList(b.Addons),
			Promo:    b.Promo,
		},
		FullName: b.FullName,
		Email:    b.Email,
		Phone:    b.Phone,
	}
}
