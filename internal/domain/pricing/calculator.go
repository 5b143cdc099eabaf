package pricing

import (
	"math"
	"sort"
	"strings"

	"atlas-hotel/internal/domain/room"
	"atlas-hotel/internal/pkg/caldate"
)

// StayRequest is the raw funnel input. Fields stay loosely typed so that a
// malformed request yields an invalid estimate instead of an error.
type StayRequest struct {
	CheckIn   string   `json:"checkIn"`
	CheckOut  string   `json:"checkOut"`
	RoomType  string   `json:"roomType"`
	Guests    int      `json:"guests"`
	Addons    []string `json:"addons"`
	PromoCode string   `json:"promoCode"`
}

type Night struct {
	Date        caldate.Date `json:"date"`
	Season      Season       `json:"seasonId"`
	SeasonLabel string       `json:"seasonLabel"`
	Weekend     bool         `json:"weekend"`
	Rate        Money        `json:"rate"`
}

type Estimate struct {
	Nights         int     `json:"nights"`
	Guests         int     `json:"guests"`
	NightBreakdown []Night `json:"nightBreakdown"`
	Addons         []Addon `json:"addons"`
	RoomTotal      Money   `json:"roomTotal"`
	AddonTotal     Money   `json:"addonTotal"`
	Subtotal       Money   `json:"subtotal"`
	PromoCode      string  `json:"promoCode,omitempty"`
	DiscountRate   float64 `json:"discountRate"`
	Discount       Money   `json:"discount"`
	Total          Money   `json:"total"`
}

type Calculator struct {
	tariff Tariff
}

func NewCalculator(t Tariff) *Calculator {
	return &Calculator{tariff: t}
}

func NewDefaultCalculator() *Calculator {
	return NewCalculator(DefaultTariff())
}

func (c *Calculator) Tariff() Tariff {
	return c.tariff
}

// Nights returns the number of nights between two ISO dates, or 0 when either
// date is invalid or check-out is not after check-in.
func Nights(checkIn, checkOut string) int {
	in, err := caldate.Parse(checkIn)
	if err != nil {
		return 0
	}
	out, err := caldate.Parse(checkOut)
	if err != nil {
		return 0
	}
	return max(in.DaysUntil(out), 0)
}

func (c *Calculator) Season(d caldate.Date) SeasonRule {
	id := SeasonOf(d)
	rule := c.tariff.Seasons[id]
	rule.ID = id
	return rule
}

func (c *Calculator) NightlyRate(d caldate.Date, t room.Type) Money {
	base, ok := c.tariff.RoomRates[t]
	if !ok {
		return 0
	}
	weekend := 1.0
	if d.IsWeekend() {
		weekend = 1 + c.tariff.WeekendSurcharge
	}
	return Euros(math.Round(base * c.Season(d).Multiplier * weekend))
}

func (c *Calculator) NightBreakdown(checkIn, checkOut caldate.Date, t room.Type) []Night {
	nights := checkIn.DaysUntil(checkOut)
	if nights <= 0 {
		return nil
	}
	if _, ok := c.tariff.RoomRates[t]; !ok {
		return nil
	}

	entries := make([]Night, 0, nights)
	for i := range nights {
		d := checkIn.AddDays(i)
		season := c.Season(d)
		entries = append(entries, Night{
			Date:        d,
			Season:      season.ID,
			SeasonLabel: season.Label,
			Weekend:     d.IsWeekend(),
			Rate:        c.NightlyRate(d, t),
		})
	}
	return entries
}

// SelectAddons keeps the known add-ons of values, without duplicates, in a
// stable order so that the selection order never changes an estimate.
func (c *Calculator) SelectAddons(values []string) []Addon {
	seen := make(map[Addon]bool, len(values))
	selected := make([]Addon, 0, len(values))
	for _, v := range values {
		a := Addon(strings.ToLower(strings.TrimSpace(v)))
		if a == "" || a == AddonNone || seen[a] {
			continue
		}
		if _, ok := c.tariff.Addons[a]; !ok {
			continue
		}
		seen[a] = true
		selected = append(selected, a)
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i] < selected[j] })
	return selected
}

// Estimate prices a stay. ok is false when the dates are missing or
// unparseable, check-out is not after check-in, or the room type is unknown.
func (c *Calculator) Estimate(req StayRequest) (Estimate, bool) {
	roomType, ok := room.Parse(req.RoomType)
	if !ok {
		return Estimate{}, false
	}
	if _, priced := c.tariff.RoomRates[roomType]; !priced {
		return Estimate{}, false
	}
	checkIn, err := caldate.Parse(req.CheckIn)
	if err != nil {
		return Estimate{}, false
	}
	checkOut, err := caldate.Parse(req.CheckOut)
	if err != nil {
		return Estimate{}, false
	}
	nights := checkIn.DaysUntil(checkOut)
	if nights <= 0 {
		return Estimate{}, false
	}

	guests := max(req.Guests, 1)
	breakdown := c.NightBreakdown(checkIn, checkOut, roomType)

	var roomTotal Money
	for _, n := range breakdown {
		roomTotal += n.Rate
	}

	addons := c.SelectAddons(req.Addons)
	var addonTotal Money
	for _, a := range addons {
		price := c.tariff.Addons[a]
		charge := Euros(price.Price)
		if price.PerGuest {
			charge *= Money(guests)
		}
		addonTotal += charge
	}

	subtotal := roomTotal + addonTotal
	code, rate := c.tariff.DiscountRate(req.PromoCode)
	discount := Money(math.Round(float64(subtotal) * rate))

	return Estimate{
		Nights:         nights,
		Guests:         guests,
		NightBreakdown: breakdown,
		Addons:         addons,
		RoomTotal:      roomTotal,
		AddonTotal:     addonTotal,
		Subtotal:       subtotal,
		PromoCode:      code,
		DiscountRate:   rate,
		Discount:       discount,
		Total:          subtotal - discount,
	}, true
}

var defaultCalculator = NewDefaultCalculator()

// CalculateEstimate prices req against the built-in tariff.
func CalculateEstimate(req StayRequest) (Estimate, bool) {
	return defaultCalculator.Estimate(req)
}
