//go:build unit

package pgconv

import (
	"testing"
	"time"

	"atlas-hotel/internal/pkg/caldate"
	"atlas-hotel/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsNoRows(errs.Wrap(pgx.ErrNoRows, "find booking")))
	assert.False(t, IsNoRows(errs.New("boom")))

	assert.True(t, IsUniqueViolation(errs.Wrap(&pgconn.PgError{Code: "23505"}, "insert")))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
}

func TestDateRoundTrip(t *testing.T) {
	d := caldate.MustParse("2026-03-10")

	pd := DateFromCalendar(d)
	assert.True(t, pd.Valid)
	assert.True(t, d.Equal(CalendarFromDate(pd)))

	assert.False(t, DateFromCalendar(caldate.Date{}).Valid)
	assert.True(t, CalendarFromDate(DateFromCalendar(caldate.Date{})).IsZero())
}

func TestTimestamptz(t *testing.T) {
	assert.False(t, TimestamptzFromTime(time.Time{}).Valid)
	assert.Nil(t, TimePtrFromTimestamptz(TimestamptzFromTime(time.Time{})))

	now := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	got := TimePtrFromTimestamptz(TimestamptzFromTime(now))
	if assert.NotNil(t, got) {
		assert.True(t, now.Equal(*got))
	}
}
