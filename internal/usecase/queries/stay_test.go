//go:build unit

package queries_test

import (
	"context"
	"testing"

	"atlas-hotel/internal/domain/availability"
	"atlas-hotel/internal/domain/pricing"
	"atlas-hotel/internal/domain/room"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStayQueries_Availability(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.book(t, "A", "a@example.com", "suite", "2026-07-10", "2026-07-12")
	f.book(t, "B", "b@example.com", "suite", "2026-07-11", "2026-07-14")
	f.book(t, "C", "c@example.com", "deluxe", "2026-07-01", "2026-07-11")
	q := queries.NewStayQueries(f.store, pricing.NewDefaultCalculator())

	got, err := q.Availability(ctx, "2026-07-11", "2026-07-13")
	require.NoError(t, err)
	want := availability.Availability{room.Classic: 14, room.Deluxe: 10, room.Suite: 4}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("availability mismatch (-want +got):\n%s", diff)
	}

	for _, tc := range []struct{ in, out string }{
		{"2026-07-13", "2026-07-11"},
		{"2026-07-11", "2026-07-11"},
		{"", "2026-07-11"},
		{"2026-02-30", "2026-03-02"},
	} {
		_, err := q.Availability(ctx, tc.in, tc.out)
		assert.True(t, errs.Is(err, errs.ErrInvalidDates), "%s -> %s", tc.in, tc.out)
	}
}

func TestStayQueries_Estimate(t *testing.T) {
	q := queries.NewStayQueries(newFixture(t).store, pricing.NewDefaultCalculator())

	est, err := q.Estimate(context.Background(), pricing.StayRequest{
		CheckIn: "2026-07-11", CheckOut: "2026-07-13", RoomType: "classic", Guests: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, est.Nights)
	assert.Positive(t, est.Total.Cents())

	_, err = q.Estimate(context.Background(), pricing.StayRequest{RoomType: "classic"})
	assert.True(t, errs.Is(err, errs.ErrInvalidBooking))
}

func TestStayQueries_Rooms(t *testing.T) {
	q := queries.NewStayQueries(newFixture(t).store, pricing.NewDefaultCalculator())

	rooms := q.Rooms(context.Background())
	require.Len(t, rooms, 3)
	inventory := map[room.Type]int{}
	for _, r := range rooms {
		inventory[r.Type] = r.Inventory
		assert.Positive(t, r.BasePrice)
	}
	assert.Equal(t, map[room.Type]int{room.Classic: 14, room.Deluxe: 10, room.Suite: 6}, inventory)
}
