// Package payment hands bookings over to Stripe Checkout.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"atlas-hotel/internal/pkg/config"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/usecase/shared"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

const bookingIDKey = "bookingId"

var _ shared.PaymentGateway = (*Stripe)(nil)

type Stripe struct {
	api           *client.API
	webhookSecret string
	currency      string
}

// NewStripe leaves the gateway disabled while STRIPE_SECRET_KEY is empty.
func NewStripe(cfg config.StripeConfig) *Stripe {
	return NewStripeWithBackends(cfg, nil)
}

// NewStripeWithBackends lets tests route API calls to a fake server.
func NewStripeWithBackends(cfg config.StripeConfig, backends *stripe.Backends) *Stripe {
	s := &Stripe{
		webhookSecret: strings.TrimSpace(cfg.WebhookSecret),
		currency:      strings.ToLower(strings.TrimSpace(cfg.Currency)),
	}
	if s.currency == "" {
		s.currency = string(stripe.CurrencyEUR)
	}
	if key := strings.TrimSpace(cfg.SecretKey); key != "" {
		s.api = client.New(key, backends)
	}
	return s
}

func (s *Stripe) Enabled() bool {
	return s.api != nil
}

func (s *Stripe) CreateCheckoutSession(ctx context.Context, req shared.CheckoutRequest) (*shared.CheckoutSession, error) {
	if !s.Enabled() {
		return nil, errs.ErrPaymentNotConfigured
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:     optional(req.CustomerEmail),
		ClientReferenceID: stripe.String(req.BookingID),
		SuccessURL:        stripe.String(req.SuccessURL),
		CancelURL:         stripe.String(req.CancelURL),
		Metadata:          map[string]string{bookingIDKey: req.BookingID},
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(s.currency),
				UnitAmount: stripe.Int64(req.AmountCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(req.ProductName),
					Description: optional(req.Description),
				},
			},
		}},
	}
	params.Context = ctx

	cs, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, mapStripeErr(err, "create checkout session")
	}
	return toSession(cs), nil
}

func (s *Stripe) GetCheckoutSession(ctx context.Context, id string) (*shared.CheckoutSession, error) {
	if !s.Enabled() {
		return nil, errs.ErrPaymentNotConfigured
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	cs, err := s.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return nil, mapStripeErr(err, "retrieve checkout session")
	}
	return toSession(cs), nil
}

func (s *Stripe) ParseWebhook(payload []byte, signature string) (*shared.PaymentEvent, error) {
	if !s.Enabled() || s.webhookSecret == "" {
		return nil, errs.ErrPaymentNotConfigured
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "verify stripe webhook"), errs.ErrInvalidWebhook)
	}

	out := &shared.PaymentEvent{Type: string(event.Type)}
	if !strings.HasPrefix(out.Type, "checkout.session.") || event.Data == nil {
		return out, nil
	}

	var cs stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode checkout session"), errs.ErrInvalidWebhook)
	}
	out.Session = *toSession(&cs)
	return out, nil
}

func toSession(cs *stripe.CheckoutSession) *shared.CheckoutSession {
	bookingID := cs.Metadata[bookingIDKey]
	if bookingID == "" {
		bookingID = cs.ClientReferenceID
	}
	return &shared.CheckoutSession{
		ID:            cs.ID,
		URL:           cs.URL,
		BookingID:     bookingID,
		PaymentStatus: string(cs.PaymentStatus),
	}
}

// mapStripeErr turns a rejected secret key into errs.ErrPaymentInvalidKey.
func mapStripeErr(err error, op string) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode == http.StatusUnauthorized {
		return errs.Mark(errs.Wrap(err, op), errs.ErrPaymentInvalidKey)
	}
	return errs.Wrap(err, op)
}

func optional(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return stripe.String(v)
}
