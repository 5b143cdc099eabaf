package booking

import (
	"atlas-hotel/internal/domain/availability"
	"atlas-hotel/internal/domain/customer"
	"atlas-hotel/internal/domain/pricing"
	"atlas-hotel/internal/domain/room"
	"atlas-hotel/internal/pkg/clock"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/pkg/ref"
)

type Factory struct {
	Clock      clock.Clock
	Refs       ref.Generator
	Calculator *pricing.Calculator
}

func NewFactory(clock clock.Clock, refs ref.Generator, calculator *pricing.Calculator) *Factory {
	return &Factory{
		Clock:      clock,
		Refs:       refs,
		Calculator: calculator,
	}
}

// Create prices req and checks it against the stays already holding
// inventory. It fails with ErrInvalidBooking when the request cannot be
// priced and ErrRoomUnavailable when no room of the category is left.
func (f *Factory) Create(cust customer.Customer, req pricing.StayRequest, existing []availability.Stay) (*Booking, error) {
	est, ok := f.Calculator.Estimate(req)
	if !ok {
		return nil, errs.ErrInvalidBooking
	}

	roomType, _ := room.Parse(req.RoomType)
	left, ok := availability.ByRoom(existing, req.CheckIn, req.CheckOut)
	if !ok || !left.Has(roomType) {
		return nil, errs.ErrRoomUnavailable
	}

	return New(f.Refs.Next(ref.PrefixBooking), cust, req, est, f.Clock.Now())
}
