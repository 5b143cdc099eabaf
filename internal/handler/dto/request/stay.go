package request

import (
	"encoding/json"
	"strings"

	"atlas-hotel/internal/domain/pricing"
	"atlas-hotel/internal/pkg/errs"
)

// StringList accepts a single string or an array of strings. Blank entries
// are dropped.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var many []*string
	if err := json.Unmarshal(b, &many); err == nil {
		out := make([]string, 0, len(many))
		for _, s := range many {
			if s == nil {
				continue
			}
			if v := strings.TrimSpace(*s); v != "" {
				out = append(out, v)
			}
		}
		*l = out
		return nil
	}

	var one *string
	if err := json.Unmarshal(b, &one); err != nil {
		return errs.Wrap(err, "addons must be a string or a list of strings")
	}
	if one == nil || strings.TrimSpace(*one) == "" {
		*l = nil
		return nil
	}
	*l = StringList{strings.TrimSpace(*one)}
	return nil
}

// StayFields are the funnel inputs shared by the estimate and booking forms.
type StayFields struct {
	CheckIn  string     `json:"checkIn"`
	CheckOut string     `json:"checkOut"`
	RoomType string     `json:"roomType"`
	Guests   int        `json:"guests" binding:"omitempty,min=1,max=4"`
	Addons   StringList `json:"addons"`
	Promo    string     `json:"promo"`
}

func (f StayFields) ToStayRequest() pricing.StayRequest {
	guests := f.Guests
	if guests == 0 {
		guests = 1
	}
	return pricing.StayRequest{
		CheckIn:   strings.TrimSpace(f.CheckIn),
		CheckOut:  strings.TrimSpace(f.CheckOut),
		RoomType:  strings.TrimSpace(f.RoomType),
		Guests:    guests,
		Addons:    []string(f.Addons),
		PromoCode: strings.TrimSpace(f.Promo),
	}
}

type EstimateRequest struct {
	StayFields
}

type CreateBookingRequest struct {
	StayFields
	// honeypot
	Website  string `json:"website"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type AvailabilityQuery struct {
	CheckIn  string `form:"checkIn"`
	CheckOut string `form:"checkOut"`
}
