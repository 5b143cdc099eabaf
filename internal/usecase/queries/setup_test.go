//go:build unit

package queries_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/domain/customer"
	"atlas-hotel/internal/domain/pricing"
	"atlas-hotel/internal/infra/filestore"
	"atlas-hotel/internal/pkg/clock"
	"atlas-hotel/internal/pkg/ref"
	"atlas-hotel/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	store   *filestore.Store
	clock   *clock.MockClock
	factory *booking.Factory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store, err := filestore.Open(filepath.Join(t.TempDir(), "hotel-db.json"))
	require.NoError(t, err)
	clk := clock.NewMockClock(time.Date(2026, time.June, 1, 9, 0, 0, 0, time.UTC))
	return &fixture{
		store:   store,
		clock:   clk,
		factory: booking.NewFactory(clk, &ref.Sequence{}, pricing.NewDefaultCalculator()),
	}
}

func (f *fixture) book(t *testing.T, name, email, roomType, checkIn, checkOut string) *booking.Booking {
	t.Helper()

	var created *booking.Booking
	err := f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		b, err := f.factory.Create(customer.Customer{FullName: name, Email: email},
			pricing.StayRequest{CheckIn: checkIn, CheckOut: checkOut, RoomType: roomType, Guests: 2}, nil)
		if err != nil {
			return err
		}
		created = b
		return tx.Bookings().Create(ctx, b)
	})
	require.NoError(t, err)
	return created
}
