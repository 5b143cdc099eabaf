package pricing

import (
	"time"

	"atlas-hotel/internal/pkg/caldate"
)

// EasterSunday uses the anonymous Gregorian algorithm (Meeus/Jones/Butcher).
func EasterSunday(year int) caldate.Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return caldate.New(year, time.Month(month), day)
}

// Ascension Thursday is 39 days after Easter Sunday.
func Ascension(year int) caldate.Date {
	return EasterSunday(year).AddDays(39)
}

// PentecostMonday is 50 days after Easter Sunday.
func PentecostMonday(year int) caldate.Date {
	return EasterSunday(year).AddDays(50)
}
