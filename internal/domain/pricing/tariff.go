package pricing

import (
	"os"
	"strings"

	"atlas-hotel/internal/domain/room"
	"atlas-hotel/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

type Addon string

const (
	AddonNone      Addon = "none"
	AddonBreakfast Addon = "breakfast"
	AddonSpa       Addon = "spa"
	AddonTransfer  Addon = "transfer"
)

type AddonPrice struct {
	Price    float64 `json:"price" yaml:"price"`
	PerGuest bool    `json:"perGuest" yaml:"perGuest"`
}

// Tariff is the rate card: room base prices, season multipliers, add-ons,
// promo codes and the weekend surcharge. Amounts are in euros.
type Tariff struct {
	RoomRates        map[room.Type]float64 `json:"rooms"`
	Seasons          map[Season]SeasonRule `json:"seasons"`
	Addons           map[Addon]AddonPrice  `json:"addons"`
	PromoCodes       map[string]float64    `json:"promoCodes"`
	WeekendSurcharge float64               `json:"weekendSurcharge"`
}

func DefaultTariff() Tariff {
	return Tariff{
		RoomRates: map[room.Type]float64{
			room.Classic: 140,
			room.Deluxe:  190,
			room.Suite:   280,
		},
		Seasons: map[Season]SeasonRule{
			SeasonLow:  {ID: SeasonLow, Label: "Basse saison", Multiplier: 1},
			SeasonMid:  {ID: SeasonMid, Label: "Moyenne saison", Multiplier: 1.2},
			SeasonHigh: {ID: SeasonHigh, Label: "Haute saison", Multiplier: 1.45},
		},
		Addons: map[Addon]AddonPrice{
			AddonBreakfast: {Price: 18, PerGuest: true},
			AddonSpa:       {Price: 35, PerGuest: true},
			AddonTransfer:  {Price: 55, PerGuest: false},
		},
		PromoCodes: map[string]float64{
			"ATLAS24": 0.1,
		},
		WeekendSurcharge: 0.1,
	}
}

// DiscountRate looks the code up trimmed and case-insensitively; unknown codes give 0.
func (t Tariff) DiscountRate(code string) (string, float64) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return "", 0
	}
	rate, ok := t.PromoCodes[normalized]
	if !ok {
		return "", 0
	}
	return normalized, rate
}

func (t Tariff) Validate() error {
	for _, rt := range room.All {
		if t.RoomRates[rt] <= 0 {
			return errs.Newf("tariff: missing or non-positive rate for room %q", rt)
		}
	}
	for rt := range t.RoomRates {
		if !rt.IsValid() {
			return errs.Newf("tariff: unknown room type %q", rt)
		}
	}
	for _, s := range []Season{SeasonLow, SeasonMid, SeasonHigh} {
		if t.Seasons[s].Multiplier <= 0 {
			return errs.Newf("tariff: missing or non-positive multiplier for season %q", s)
		}
	}
	for a, p := range t.Addons {
		if p.Price < 0 {
			return errs.Newf("tariff: negative price for add-on %q", a)
		}
	}
	for code, rate := range t.PromoCodes {
		if rate < 0 || rate > 1 {
			return errs.Newf("tariff: promo code %q rate must be within [0,1]", code)
		}
	}
	if t.WeekendSurcharge < 0 {
		return errs.New("tariff: negative weekend surcharge")
	}
	return nil
}

type tariffFile struct {
	Rooms            map[string]float64    `yaml:"rooms"`
	Seasons          map[string]SeasonRule `yaml:"seasons"`
	Addons           map[string]AddonPrice `yaml:"addons"`
	PromoCodes       map[string]float64    `yaml:"promoCodes"`
	WeekendSurcharge *float64              `yaml:"weekendSurcharge"`
}

// LoadTariff overlays the YAML file at path on DefaultTariff. Keys absent
// from the file keep their default.
func LoadTariff(path string) (Tariff, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Tariff{}, errs.Wrap(err, "read tariff file")
	}
	return ParseTariff(raw)
}

func ParseTariff(raw []byte) (Tariff, error) {
	var file tariffFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Tariff{}, errs.Wrap(err, "parse tariff file")
	}

	t := DefaultTariff()
	for name, rate := range file.Rooms {
		t.RoomRates[room.Type(strings.ToLower(name))] = rate
	}
	for name, rule := range file.Seasons {
		id := Season(strings.ToLower(name))
		current := t.Seasons[id]
		current.ID = id
		if rule.Label != "" {
			current.Label = rule.Label
		}
		if rule.Multiplier != 0 {
			current.Multiplier = rule.Multiplier
		}
		t.Seasons[id] = current
	}
	for name, price := range file.Addons {
		t.Addons[Addon(strings.ToLower(name))] = price
	}
	for code, rate := range file.PromoCodes {
		t.PromoCodes[strings.ToUpper(strings.TrimSpace(code))] = rate
	}
	if file.WeekendSurcharge != nil {
		t.WeekendSurcharge = *file.WeekendSurcharge
	}

	if err := t.Validate(); err != nil {
		return Tariff{}, err
	}
	return t, nil
}
