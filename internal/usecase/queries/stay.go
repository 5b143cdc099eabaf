package queries

//go:generate mockgen -source=stay.go -destination=../../../tests/mock/queries/stay.go -package=queriesmock

import (
	"context"

	"atlas-hotel/internal/domain/availability"
	"atlas-hotel/internal/domain/pricing"
	"atlas-hotel/internal/domain/room"
	"atlas-hotel/internal/pkg/caldate"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/usecase/shared"
)

type RoomView struct {
	Type      room.Type `json:"type"`
	BasePrice float64   `json:"basePrice"`
	Inventory int       `json:"inventory"`
	MaxGuests int       `json:"maxGuests"`
}

type StayQueries interface {
	Availability(ctx context.Context, checkIn, checkOut string) (availability.Availability, error)
	Estimate(ctx context.Context, req pricing.StayRequest) (*pricing.Estimate, error)
	Rooms(ctx context.Context) []RoomView
}

type stayQueriesImpl struct {
	reads      shared.ReadStore
	calculator *pricing.Calculator
}

func NewStayQueries(uow shared.UnitOfWork, calculator *pricing.Calculator) StayQueries {
	return &stayQueriesImpl{
		reads:      uow.Reads(),
		calculator: calculator,
	}
}

func (q *stayQueriesImpl) Availability(ctx context.Context, checkIn, checkOut string) (availability.Availability, error) {
	in, errIn := caldate.Parse(checkIn)
	out, errOut := caldate.Parse(checkOut)
	if errIn != nil || errOut != nil || !in.Before(out) {
		return nil, errs.ErrInvalidDates
	}

	stays, err := q.reads.Stays(ctx, in, out)
	if err != nil {
		return nil, err
	}
	result, ok := availability.ByRoomDates(stays, in, out)
	if !ok {
		return nil, errs.ErrInvalidDates
	}
	return result, nil
}

func (q *stayQueriesImpl) Estimate(_ context.Context, req pricing.StayRequest) (*pricing.Estimate, error) {
	est, ok := q.calculator.Estimate(req)
	if !ok {
		return nil, errs.ErrInvalidBooking
	}
	return &est, nil
}

func (q *stayQueriesImpl) Rooms(_ context.Context) []RoomView {
	tariff := q.calculator.Tariff()
	views := make([]RoomView, 0, len(room.All))
	for _, t := range room.All {
		views = append(views, RoomView{
			Type:      t,
			BasePrice: tariff.RoomRates[t],
			Inventory: t.Inventory(),
			MaxGuests: room.MaxGuests,
		})
	}
	return views
}
