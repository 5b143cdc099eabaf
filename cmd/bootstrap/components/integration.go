package components

import (
	"context"

	"atlas-hotel/internal/infra/eventbus"
	"atlas-hotel/internal/infra/mailer"
	"atlas-hotel/internal/infra/payment"
	"atlas-hotel/internal/pkg/config"
	"atlas-hotel/internal/pkg/metrics"
	"atlas-hotel/internal/usecase/shared"

	"go.uber.org/fx"
)

var IntegrationModule = fx.Module("integration",
	fx.Provide(
		metrics.New,
		fx.Annotate(
			NewMailer,
			fx.As(new(shared.Mailer)),
		),
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(shared.PaymentGateway)),
		),
		fx.Annotate(
			NewEventPublisher,
			fx.As(new(shared.EventPublisher)),
		),
	),
)

func NewMailer(cfg config.Config) *mailer.Resend {
	return mailer.NewResend(cfg.Mail)
}

func NewPaymentGateway(cfg config.Config) *payment.Stripe {
	return payment.NewStripe(cfg.Stripe)
}

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (*eventbus.Publisher, error) {
	pub, cleanup, err := eventbus.Connect(cfg.Bus)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return pub, nil
}
