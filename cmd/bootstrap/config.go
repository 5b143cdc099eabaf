package bootstrap

import (
	"log/slog"

	"atlas-hotel/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logSetup),
)

// logSetup records which optional integrations are live, since each of them
// silently degrades when its key is missing.
func logSetup(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		slog.String("store", cfg.Store.Driver),
		slog.Bool("mail", cfg.Mail.ResendAPIKey != "" && cfg.Mail.From != ""),
		slog.Bool("stripe", cfg.Stripe.SecretKey != ""),
		slog.Bool("stripe_webhook", cfg.Stripe.WebhookSecret != ""),
		slog.Bool("nats", cfg.Bus.NATSURL != ""),
		slog.Bool("admin_open", cfg.Admin.Open()),
		slog.String("tariff_file", cfg.Pricing.TariffFile),
	)
}
