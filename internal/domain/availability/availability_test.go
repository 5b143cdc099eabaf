//go:build unit

package availability_test

import (
	"testing"

	"atlas-hotel/internal/domain/availability"
	"atlas-hotel/internal/domain/room"
	"atlas-hotel/internal/pkg/caldate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stay(t room.Type, in, out string) availability.Stay {
	return availability.Stay{RoomType: t, CheckIn: caldate.MustParse(in), CheckOut: caldate.MustParse(out)}
}

func TestByRoom(t *testing.T) {
	// 2026-07-11 is a Saturday.
	const weekendIn, weekendOut = "2026-07-11", "2026-07-13"

	t.Run("no bookings gives full inventory on a weekend stay", func(t *testing.T) {
		got, ok := availability.ByRoom(nil, weekendIn, weekendOut)
		require.True(t, ok)
		assert.Equal(t, availability.Availability{room.Classic: 14, room.Deluxe: 10, room.Suite: 6}, got)
	})

	t.Run("any weekday night closes classic rooms", func(t *testing.T) {
		got, ok := availability.ByRoom(nil, "2026-07-10", "2026-07-12")
		require.True(t, ok)
		assert.Equal(t, 0, got[room.Classic])
		assert.False(t, got.Has(room.Classic))
		assert.Equal(t, 10, got[room.Deluxe])
	})

	t.Run("each overlapping booking takes exactly one room", func(t *testing.T) {
		stays := []availability.Stay{
			stay(room.Deluxe, "2026-07-12", "2026-07-13"),
			stay(room.Deluxe, "2026-07-01", "2026-07-31"),
			stay(room.Suite, "2026-07-10", "2026-07-12"),
		}
		got, ok := availability.ByRoom(stays, weekendIn, weekendOut)
		require.True(t, ok)
		assert.Equal(t, 8, got[room.Deluxe])
		assert.Equal(t, 5, got[room.Suite])
		assert.Equal(t, 14, got[room.Classic])
	})

	t.Run("touching stays do not overlap", func(t *testing.T) {
		stays := []availability.Stay{
			stay(room.Suite, "2026-07-09", weekendIn),
			stay(room.Suite, weekendOut, "2026-07-15"),
		}
		got, ok := availability.ByRoom(stays, weekendIn, weekendOut)
		require.True(t, ok)
		assert.Equal(t, 6, got[room.Suite])
	})

	t.Run("cancelled bookings are ignored", func(t *testing.T) {
		s := stay(room.Suite, weekendIn, weekendOut)
		s.Cancelled = true
		got, ok := availability.ByRoom([]availability.Stay{s}, weekendIn, weekendOut)
		require.True(t, ok)
		assert.Equal(t, 6, got[room.Suite])
	})

	t.Run("counts never go negative", func(t *testing.T) {
		stays := make([]availability.Stay, 0, 9)
		for range 9 {
			stays = append(stays, stay(room.Suite, weekendIn, weekendOut))
		}
		got, ok := availability.ByRoom(stays, weekendIn, weekendOut)
		require.True(t, ok)
		assert.Equal(t, 0, got[room.Suite])
	})

	t.Run("invalid ranges", func(t *testing.T) {
		for _, r := range [][2]string{
			{"", weekendOut},
			{weekendIn, "not-a-date"},
			{weekendIn, weekendIn},
			{weekendOut, weekendIn},
		} {
			got, ok := availability.ByRoom(nil, r[0], r[1])
			assert.False(t, ok, "%v", r)
			assert.Nil(t, got)
		}
	})
}

func TestHasWeekdayNight(t *testing.T) {
	assert.False(t, availability.HasWeekdayNight(caldate.MustParse("2026-07-11"), caldate.MustParse("2026-07-13")))
	assert.True(t, availability.HasWeekdayNight(caldate.MustParse("2026-07-12"), caldate.MustParse("2026-07-14")))
	assert.True(t, availability.HasWeekdayNight(caldate.MustParse("2026-07-10"), caldate.MustParse("2026-07-11")))
}
