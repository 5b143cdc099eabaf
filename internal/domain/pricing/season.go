package pricing

import (
	"time"

	"atlas-hotel/internal/pkg/caldate"
)

type Season string

const (
	SeasonLow  Season = "low"
	SeasonMid  Season = "mid"
	SeasonHigh Season = "high"
)

type SeasonRule struct {
	ID         Season  `json:"id" yaml:"-"`
	Label      string  `json:"label" yaml:"label"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

// DateRange is inclusive on both ends.
type DateRange struct {
	Start caldate.Date `json:"start"`
	End   caldate.Date `json:"end"`
}

func (r DateRange) Contains(d caldate.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// SeasonCalendar holds one year's explicit windows. Days outside every window
// are mid season.
type SeasonCalendar struct {
	Year int         `json:"year"`
	High []DateRange `json:"high"`
	Low  []DateRange `json:"low"`
	Mid  []DateRange `json:"mid"`
}

func span(year int, fromMonth time.Month, fromDay int, toMonth time.Month, toDay int) DateRange {
	return DateRange{
		Start: caldate.New(year, fromMonth, fromDay),
		End:   caldate.New(year, toMonth, toDay),
	}
}

// CalendarFor builds the windows of year. The high season includes the
// Ascension and Pentecost bridges, which move with Easter.
func CalendarFor(year int) SeasonCalendar {
	ascension := Ascension(year)
	pentecostMonday := PentecostMonday(year)

	return SeasonCalendar{
		Year: year,
		High: []DateRange{
			span(year, time.July, 1, time.August, 31),
			{Start: ascension.AddDays(-1), End: ascension.AddDays(3)},
			{Start: pentecostMonday.AddDays(-2), End: pentecostMonday.AddDays(1)},
		},
		Low: []DateRange{
			span(year, time.January, 1, time.April, 5),
			span(year, time.September, 15, time.October, 15),
			span(year, time.November, 3, time.December, 15),
		},
		Mid: []DateRange{
			span(year, time.April, 6, time.June, 30),
			span(year, time.September, 1, time.September, 30),
			span(year, time.October, 18, time.November, 2),
		},
	}
}

// SeasonOf resolves d with high > low > mid precedence; overlapping windows
// (mid September vs the low autumn window) are settled by that order.
func (c SeasonCalendar) SeasonOf(d caldate.Date) Season {
	switch {
	case anyContains(c.High, d):
		return SeasonHigh
	case anyContains(c.Low, d):
		return SeasonLow
	default:
		return SeasonMid
	}
}

func anyContains(ranges []DateRange, d caldate.Date) bool {
	for _, r := range ranges {
		if r.Contains(d) {
			return true
		}
	}
	return false
}

// SeasonOf computes the calendar of d's year and resolves d against it.
func SeasonOf(d caldate.Date) Season {
	return CalendarFor(d.Year()).SeasonOf(d)
}
