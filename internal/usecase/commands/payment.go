package commands

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment.go -package=commandsmock

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/infra"
	"atlas-hotel/internal/pkg/clock"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/pkg/metrics"
	"atlas-hotel/internal/usecase/shared"
)

type CheckoutResult struct {
	SessionID string
	URL       string
}

type ConfirmResult struct {
	Paid          bool
	PaymentStatus string
}

type PaymentCommands interface {
	Checkout(ctx context.Context, bookingID string) (*CheckoutResult, error)
	Confirm(ctx context.Context, sessionID, bookingID string) (*ConfirmResult, error)
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

type paymentCommandsImpl struct {
	uow       shared.UnitOfWork
	gateway   shared.PaymentGateway
	publisher shared.EventPublisher
	siteURL   string
	metrics   *metrics.Metrics
	clock     clock.Clock
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	gateway shared.PaymentGateway,
	publisher shared.EventPublisher,
	siteURL string,
	m *metrics.Metrics,
	clk clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{
		uow:       uow,
		gateway:   gateway,
		publisher: publisher,
		siteURL:   strings.TrimRight(siteURL, "/"),
		metrics:   m,
		clock:     clk,
	}
}

func (uc *paymentCommandsImpl) Checkout(ctx context.Context, bookingID string) (*CheckoutResult, error) {
	if !uc.gateway.Enabled() {
		return nil, errs.ErrPaymentNotConfigured
	}
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, errs.ErrMissingBookingID
	}

	b, err := uc.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	amount := b.AmountDue()
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	req := b.Request()
	product := req.RoomType
	if product == "" {
		product = "séjour"
	}
	escaped := url.QueryEscape(bookingID)
	session, err := uc.gateway.CreateCheckoutSession(ctx, shared.CheckoutRequest{
		BookingID:     bookingID,
		CustomerEmail: b.Customer().Email,
		ProductName:   "Réservation Hotel Atlas - " + product,
		Description:   req.CheckIn + " -> " + req.CheckOut,
		AmountCents:   amount * 100,
		SuccessURL:    uc.siteURL + "/paiement/succes?session_id={CHECKOUT_SESSION_ID}&bookingId=" + escaped,
		CancelURL:     uc.siteURL + "/paiement/annule?bookingId=" + escaped,
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.PaymentEvents.WithLabelValues("checkout_created").Inc()

	err = uc.update(ctx, bookingID, func(b *booking.Booking) {
		b.StartCheckout(session.ID, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	return &CheckoutResult{SessionID: session.ID, URL: session.URL}, nil
}

func (uc *paymentCommandsImpl) Confirm(ctx context.Context, sessionID, bookingID string) (*ConfirmResult, error) {
	if !uc.gateway.Enabled() {
		return nil, errs.ErrPaymentNotConfigured
	}
	sessionID, bookingID = strings.TrimSpace(sessionID), strings.TrimSpace(bookingID)
	if sessionID == "" || bookingID == "" {
		return nil, errs.ErrMissingParams
	}
	if _, err := uc.findBooking(ctx, bookingID); err != nil {
		return nil, err
	}

	session, err := uc.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.BookingID != "" && session.BookingID != bookingID {
		return nil, errs.ErrSessionMismatch
	}
	if session.Paid() {
		if err := uc.markPaid(ctx, bookingID, session.ID); err != nil {
			return nil, err
		}
	}
	return &ConfirmResult{Paid: session.Paid(), PaymentStatus: session.PaymentStatus}, nil
}

func (uc *paymentCommandsImpl) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	if !uc.gateway.Enabled() {
		return errs.ErrPaymentNotConfigured
	}
	event, err := uc.gateway.ParseWebhook(payload, signature)
	if err != nil {
		return err
	}

	bookingID := event.Session.BookingID
	switch event.Type {
	case shared.CheckoutCompleted:
		uc.metrics.PaymentEvents.WithLabelValues("checkout_completed").Inc()
		if bookingID == "" {
			return nil
		}
		err = uc.markPaid(ctx, bookingID, event.Session.ID)
	case shared.CheckoutExpired:
		uc.metrics.PaymentEvents.WithLabelValues("checkout_expired").Inc()
		if bookingID == "" {
			return nil
		}
		err = uc.update(ctx, bookingID, func(b *booking.Booking) {
			b.MarkPaymentExpired(event.Session.ID, uc.clock.Now())
		})
	default:
		return nil
	}

	// Stripe retries on non-2xx; a booking purged from the store will never appear.
	if errs.Is(err, errs.ErrBookingNotFound) {
		slog.Warn("payment event for unknown booking", "type", event.Type, "booking_id", bookingID)
		return nil
	}
	return err
}

func (uc *paymentCommandsImpl) markPaid(ctx context.Context, bookingID, sessionID string) error {
	err := uc.update(ctx, bookingID, func(b *booking.Booking) {
		b.MarkPaid(sessionID, uc.clock.Now())
	})
	if err != nil {
		return err
	}
	publish(ctx, uc.publisher, shared.Event{
		Topic:      shared.TopicBookingPaid,
		Reference:  bookingID,
		OccurredAt: uc.clock.Now(),
		Data:       map[string]any{"sessionId": sessionID},
	})
	return nil
}

func (uc *paymentCommandsImpl) findBooking(ctx context.Context, id string) (*booking.Booking, error) {
	b, err := uc.uow.Reads().BookingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (uc *paymentCommandsImpl) update(ctx context.Context, id string, mutate func(b *booking.Booking)) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, derr := tx.Bookings().GetForUpdate(ctx, id)
		if derr != nil {
			return derr
		}
		mutate(b)
		return tx.Bookings().Update(ctx, b)
	})
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrBookingNotFound)
	}
	return err
}
