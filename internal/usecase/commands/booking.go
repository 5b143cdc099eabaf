package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"strings"

	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/domain/customer"
	"atlas-hotel/internal/domain/pricing"
	"atlas-hotel/internal/infra"
	"atlas-hotel/internal/pkg/caldate"
	"atlas-hotel/internal/pkg/clock"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/pkg/metrics"
	"atlas-hotel/internal/usecase/notify"
	"atlas-hotel/internal/usecase/shared"
)

type CreateBookingRequest struct {
	// Website is the honeypot field; humans leave it empty
	Website string
	FullName string
	Email    string
	Phone    string
	Stay     pricing.StayRequest
}

type CreateBookingResult struct {
	Booking  *booking.Booking
	Delivery Delivery
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error)
}

type bookingCommandsImpl struct {
	uow        shared.UnitOfWork
	factory    *booking.Factory
	postman    postman
	publisher  shared.EventPublisher
	recipients Recipients
	metrics    *metrics.Metrics
	clock      clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	factory *booking.Factory,
	mailer shared.Mailer,
	publisher shared.EventPublisher,
	recipients Recipients,
	m *metrics.Metrics,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:        uow,
		factory:    factory,
		postman:    postman{mailer: mailer, metrics: m},
		publisher:  publisher,
		recipients: recipients,
		metrics:    m,
		clock:      clk,
	}
}

func (uc *bookingCommandsImpl) Create(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error) {
	if strings.TrimSpace(req.Website) != "" {
		uc.metrics.Bookings.WithLabelValues("spam", "").Inc()
		return nil, errs.ErrSpamDetected
	}

	cust, err := customer.New(req.FullName, req.Email, req.Phone)
	if err != nil {
		uc.metrics.Bookings.WithLabelValues("invalid_customer", "").Inc()
		return nil, err
	}

	checkIn, errIn := caldate.Parse(req.Stay.CheckIn)
	checkOut, errOut := caldate.Parse(req.Stay.CheckOut)
	if errIn != nil || errOut != nil {
		uc.metrics.Bookings.WithLabelValues("invalid_booking", "").Inc()
		return nil, errs.ErrInvalidBooking
	}

	// References are 32 random bits; a clash gets one fresh draw.
	var created *booking.Booking
	for attempt := 0; attempt < 2; attempt++ {
		created, err = uc.store(ctx, cust, req.Stay, checkIn, checkOut)
		if !infra.IsKind(err, infra.KindDuplicateKey) {
			break
		}
	}
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrInvalidBooking):
			uc.metrics.Bookings.WithLabelValues("invalid_booking", "").Inc()
		case errs.Is(err, errs.ErrRoomUnavailable):
			uc.metrics.Bookings.WithLabelValues("unavailable", strings.ToLower(req.Stay.RoomType)).Inc()
		}
		return nil, err
	}

	uc.metrics.Bookings.WithLabelValues("created", created.RoomType().String()).Inc()
	uc.metrics.BookingRevenue.Add(created.Estimate().Total.Euros())

	delivery := uc.postman.pair(ctx, "booking", uc.recipients.Booking, cust.Email,
		func() (notify.Message, error) { return notify.BookingAdmin(created) },
		func() (notify.Message, error) { return notify.BookingClient(created) },
	)

	publish(ctx, uc.publisher, shared.Event{
		Topic:      shared.TopicBookingCreated,
		Reference:  created.ID(),
		OccurredAt: uc.clock.Now(),
		Data: map[string]any{
			"roomType": created.RoomType(),
			"checkIn":  created.Request().CheckIn,
			"checkOut": created.Request().CheckOut,
			"total":    created.Estimate().Total,
		},
	})

	return &CreateBookingResult{Booking: created, Delivery: delivery}, nil
}

// store checks availability and inserts a new booking inside one transaction.
func (uc *bookingCommandsImpl) store(ctx context.Context, cust customer.Customer, stay pricing.StayRequest, checkIn, checkOut caldate.Date) (*booking.Booking, error) {
	var created *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().LockInventory(ctx); err != nil {
			return err
		}
		stays, err := tx.Bookings().Stays(ctx, checkIn, checkOut)
		if err != nil {
			return err
		}
		b, err := uc.factory.Create(cust, stay, stays)
		if err != nil {
			return err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return err
		}
		created = b
		return nil
	})
	return created, err
}
