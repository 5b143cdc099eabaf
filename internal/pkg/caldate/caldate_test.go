//go:build unit

package caldate_test

import (
	"encoding/json"
	"testing"
	"time"

	"atlas-hotel/internal/pkg/caldate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("plain ISO date keeps the calendar day", func(t *testing.T) {
		d, err := caldate.Parse("2026-02-11")
		require.NoError(t, err)
		assert.Equal(t, 2026, d.Year())
		assert.Equal(t, time.February, d.Month())
		assert.Equal(t, 11, d.Day())
	})

	t.Run("timestamp keeps its own calendar day", func(t *testing.T) {
		d, err := caldate.Parse("2026-02-11T23:30:00+02:00")
		require.NoError(t, err)
		assert.Equal(t, "2026-02-11", d.String())
	})

	for _, in := range []string{"", "  ", "2026-13-01", "2026-02-30", "tomorrow", "11/02/2026"} {
		t.Run("rejects "+in, func(t *testing.T) {
			_, err := caldate.Parse(in)
			assert.ErrorIs(t, err, caldate.ErrInvalidDate)
		})
	}
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, "2026-03-01", caldate.MustParse("2026-02-28").AddDays(1).String())
	assert.Equal(t, "2028-02-29", caldate.MustParse("2028-02-28").AddDays(1).String())

	in := caldate.MustParse("2026-02-10")
	assert.Equal(t, 2, in.DaysUntil(caldate.MustParse("2026-02-12")))
	assert.Equal(t, 0, in.DaysUntil(in))
	assert.Equal(t, -1, in.DaysUntil(caldate.MustParse("2026-02-09")))

	// spans the March DST switch in Europe without drifting
	assert.Equal(t, 7, caldate.MustParse("2026-03-26").DaysUntil(caldate.MustParse("2026-04-02")))
}

func TestWeekend(t *testing.T) {
	assert.False(t, caldate.MustParse("2026-07-10").IsWeekend()) // Friday
	assert.True(t, caldate.MustParse("2026-07-11").IsWeekend())
	assert.True(t, caldate.MustParse("2026-07-12").IsWeekend())
	assert.False(t, caldate.MustParse("2026-07-13").IsWeekend())
}

func TestJSON(t *testing.T) {
	type payload struct {
		CheckIn  caldate.Date `json:"checkIn"`
		CheckOut caldate.Date `json:"checkOut"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"checkIn":"2026-07-10","checkOut":""}`), &p))
	assert.Equal(t, "2026-07-10", p.CheckIn.String())
	assert.True(t, p.CheckOut.IsZero())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"checkIn":"2026-07-10","checkOut":""}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"checkIn":"nope"}`), &p))
}
