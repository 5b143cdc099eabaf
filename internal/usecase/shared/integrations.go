package shared

//go:generate mockgen -source=integrations.go -destination=../../../tests/mock/shared/integrations.go -package=sharedmock

import (
	"context"
	"time"
)

type Email struct {
	To      string
	Subject string
	HTML    string
}

// Mailer returns errs.ErrEmailNotConfigured when no provider key, sender or
// recipient is set and errs.ErrEmailProviderFailure when the provider refuses.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

type CheckoutRequest struct {
	BookingID     string
	CustomerEmail string
	ProductName   string
	Description   string
	// AmountCents is charged as one line item
	AmountCents int64
	SuccessURL  string
	CancelURL   string
}

type CheckoutSession struct {
	ID            string
	URL           string
	BookingID     string
	PaymentStatus string
}

func (s CheckoutSession) Paid() bool {
	return s.PaymentStatus == "paid"
}

const (
	CheckoutCompleted = "checkout.session.completed"
	CheckoutExpired   = "checkout.session.expired"
)

type PaymentEvent struct {
	Type    string
	Session CheckoutSession
}

// PaymentGateway returns errs.ErrPaymentNotConfigured while no secret key is set.
type PaymentGateway interface {
	Enabled() bool
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, id string) (*CheckoutSession, error)
	// ParseWebhook verifies the signature header and decodes the event.
	ParseWebhook(payload []byte, signature string) (*PaymentEvent, error)
}

const (
	TopicBookingCreated       = "booking.created"
	TopicBookingStatusChanged = "booking.status_changed"
	TopicBookingPaid          = "booking.paid"
	TopicContactReceived      = "contact.received"
	TopicNewsletterSubscribed = "newsletter.subscribed"
)

type Event struct {
	Topic      string    `json:"topic"`
	Reference  string    `json:"reference"`
	OccurredAt time.Time `json:"occurredAt"`
	Data       any       `json:"data,omitempty"`
}

// EventPublisher is best effort: callers log failures and carry on.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}
