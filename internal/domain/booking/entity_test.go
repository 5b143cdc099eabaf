//go:build unit

package booking_test

import (
	"testing"
	"time"

	"atlas-hotel/internal/domain/availability"
	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/domain/customer"
	"atlas-hotel/internal/domain/pricing"
	"atlas-hotel/internal/domain/room"
	"atlas-hotel/internal/pkg/caldate"
	"atlas-hotel/internal/pkg/clock"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/pkg/ref"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.February, 1, 9, 0, 0, 0, time.UTC)

func newFactory() *booking.Factory {
	return booking.NewFactory(clock.NewMockClock(now), &ref.Sequence{}, pricing.NewDefaultCalculator())
}

func guest() customer.Customer {
	return customer.Customer{FullName: "Jeanne Martin", Email: "jeanne@example.com"}
}

func weekendRequest(roomType string) pricing.StayRequest {
	return pricing.StayRequest{
		CheckIn:  "2026-07-11",
		CheckOut: "2026-07-13",
		RoomType: roomType,
		Guests:   2,
		Addons:   []string{"breakfast"},
	}
}

func TestFactoryCreate(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b, err := newFactory().Create(guest(), weekendRequest("Suite"), nil)
		require.NoError(t, err)

		assert.Equal(t, "ATL-00000001", b.ID())
		assert.Equal(t, booking.StatusNew, b.Status())
		assert.Equal(t, booking.PaymentNone, b.PaymentStatus())
		assert.Equal(t, room.Suite, b.RoomType())
		assert.Equal(t, "suite", b.Request().RoomType)
		assert.Equal(t, 2, b.Estimate().Nights)
		assert.Equal(t, now, b.CreatedAt())
		assert.Equal(t, b.CreatedAt(), b.UpdatedAt())
	})

	t.Run("request that cannot be priced", func(t *testing.T) {
		req := weekendRequest("suite")
		req.CheckOut = req.CheckIn
		_, err := newFactory().Create(guest(), req, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidBooking)
	})

	t.Run("classic rooms on a weekday stay", func(t *testing.T) {
		req := weekendRequest("classic")
		req.CheckIn, req.CheckOut = "2026-07-13", "2026-07-15"
		_, err := newFactory().Create(guest(), req, nil)
		assert.ErrorIs(t, err, errs.ErrRoomUnavailable)
	})

	t.Run("category fully booked", func(t *testing.T) {
		existing := make([]availability.Stay, 0, room.Suite.Inventory())
		for range room.Suite.Inventory() {
			existing = append(existing, availability.Stay{
				RoomType: room.Suite,
				CheckIn:  caldate.MustParse("2026-07-12"),
				CheckOut: caldate.MustParse("2026-07-14"),
			})
		}
		_, err := newFactory().Create(guest(), weekendRequest("suite"), existing)
		assert.ErrorIs(t, err, errs.ErrRoomUnavailable)

		existing[0].Cancelled = true
		_, err = newFactory().Create(guest(), weekendRequest("suite"), existing)
		assert.NoError(t, err)
	})
}

func TestBookingLifecycle(t *testing.T) {
	later := now.Add(time.Hour)

	t.Run("status change", func(t *testing.T) {
		b, err := newFactory().Create(guest(), weekendRequest("deluxe"), nil)
		require.NoError(t, err)

		require.NoError(t, b.ChangeStatus(booking.StatusCancelled, later))
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.True(t, b.Stay().Cancelled)
		assert.Equal(t, later, b.UpdatedAt())

		assert.ErrorIs(t, b.ChangeStatus("archived", later), errs.ErrInvalidStatus)
	})

	t.Run("payment confirms a new booking", func(t *testing.T) {
		b, err := newFactory().Create(guest(), weekendRequest("deluxe"), nil)
		require.NoError(t, err)

		b.StartCheckout("cs_test_1", now)
		assert.Equal(t, booking.PaymentPending, b.PaymentStatus())
		assert.Equal(t, "cs_test_1", b.CheckoutSessionID())

		b.MarkPaid("", later)
		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
		assert.Equal(t, booking.StatusConfirmed, b.Status())
		assert.Equal(t, "cs_test_1", b.CheckoutSessionID())
	})

	t.Run("payment never revives a cancelled booking", func(t *testing.T) {
		b, err := newFactory().Create(guest(), weekendRequest("deluxe"), nil)
		require.NoError(t, err)
		require.NoError(t, b.ChangeStatus(booking.StatusCancelled, now))

		b.MarkPaid("cs_test_2", later)
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.Equal(t, booking.PaymentPaid, b.PaymentStatus())
	})

	t.Run("expired checkout", func(t *testing.T) {
		b, err := newFactory().Create(guest(), weekendRequest("deluxe"), nil)
		require.NoError(t, err)

		b.MarkPaymentExpired("cs_test_3", later)
		assert.Equal(t, booking.PaymentExpired, b.PaymentStatus())
		assert.Equal(t, booking.StatusNew, b.Status())
	})

	t.Run("amount due and search text", func(t *testing.T) {
		b, err := newFactory().Create(guest(), weekendRequest("deluxe"), nil)
		require.NoError(t, err)

		assert.Equal(t, b.Estimate().Total.RoundedEuros(), b.AmountDue())
		assert.Positive(t, b.AmountDue())
		assert.Contains(t, b.SearchText(), "jeanne martin")
		assert.Contains(t, b.SearchText(), "2026-07-11")
		assert.Contains(t, b.SearchText(), "atl-")
	})
}

func TestParseStatus(t *testing.T) {
	s, ok := booking.ParseStatus(" confirmed ")
	assert.True(t, ok)
	assert.Equal(t, booking.StatusConfirmed, s)

	_, ok = booking.ParseStatus("Confirmed")
	assert.False(t, ok)
}
