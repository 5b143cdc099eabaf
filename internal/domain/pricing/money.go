package pricing

import (
	"encoding/json"
	"math"
	"strconv"
)

// Money is an amount in euro cents. It is serialised as a number of euros
// so API clients and stored estimates keep the familiar 405 / 380.7 shape.
type Money int64

func Euros(v float64) Money {
	return Money(math.Round(v * 100))
}

func (m Money) Euros() float64 {
	return float64(m) / 100
}

func (m Money) Cents() int64 {
	return int64(m)
}

// RoundedEuros is the whole-euro amount shown on invoices and charged at checkout.
func (m Money) RoundedEuros() int64 {
	return int64(math.Round(m.Euros()))
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(m.Euros(), 'f', -1, 64)), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*m = Euros(v)
	return nil
}
