// Package caldate models calendar days without a time-of-day or zone, the
// unit in which stays, nights and season windows are expressed.
package caldate

import (
	"strings"
	"time"

	"atlas-hotel/internal/pkg/errs"
)

const Layout = "2006-01-02"

var ErrInvalidDate = errs.New("invalid calendar date")

// Date is a calendar day stored as midnight UTC. The zero value is "no date".
type Date struct {
	t time.Time
}

func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Of drops the time-of-day of t, keeping the calendar day in t's own location.
func Of(t time.Time) Date {
	return New(t.Year(), t.Month(), t.Day())
}

// Parse accepts "YYYY-MM-DD" and, for records written by other clients,
// full RFC 3339 timestamps whose date part is kept as-is.
func Parse(value string) (Date, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Date{}, ErrInvalidDate
	}
	if t, err := time.Parse(Layout, value); err == nil {
		return Of(t), nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return Of(t), nil
	}
	return Date{}, ErrInvalidDate
}

func MustParse(value string) Date {
	d, err := Parse(value)
	if err != nil {
		panic("caldate: " + err.Error() + ": " + value)
	}
	return d
}

func (d Date) IsZero() bool          { return d.t.IsZero() }
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) Time() time.Time       { return d.t }

func (d Date) IsWeekend() bool {
	wd := d.t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// DaysUntil returns the number of nights from d to o; negative when o is earlier.
func (d Date) DaysUntil(o Date) int {
	return int(o.t.Sub(d.t).Hours() / 24)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(Layout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
