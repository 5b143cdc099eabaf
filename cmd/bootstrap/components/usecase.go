package components

import (
	"log/slog"
	"time"

	"atlas-hotel/internal/domain/booking"
	"atlas-hotel/internal/domain/pricing"
	"atlas-hotel/internal/pkg/clock"
	"atlas-hotel/internal/pkg/config"
	"atlas-hotel/internal/pkg/ref"
	"atlas-hotel/internal/usecase/commands"
	"atlas-hotel/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	ref.NewUUIDGenerator,
	NewCalculator,
	booking.NewFactory,
	func(cfg config.Config) commands.Recipients {
		return commands.Recipients{
			Booking:    cfg.Mail.BookingTo(),
			Contact:    cfg.Mail.ContactTo(),
			Newsletter: cfg.Mail.NewsletterTo(),
		}
	},
	func(cfg config.Config) *time.Location {
		return cfg.Server.Location()
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewInquiryCommands,
		fx.Annotate(
			commands.NewPaymentCommands,
			fx.ParamTags(``, ``, ``, `name:"siteURL"`),
		),
		fx.Annotate(
			commands.NewAdminCommands,
			fx.ParamTags(``, ``, `name:"adminPasswordHash"`),
		),
		fx.Annotate(
			func(cfg config.Config) string { return cfg.Server.SiteURL },
			fx.ResultTags(`name:"siteURL"`),
		),
		fx.Annotate(
			func(cfg config.Config) string { return cfg.Admin.PasswordHash },
			fx.ResultTags(`name:"adminPasswordHash"`),
		),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewStayQueries,
		queries.NewAdminQueries,
	),
)

// NewCalculator prices with TARIFF_FILE when set, the built-in tariff otherwise.
func NewCalculator(cfg config.Config) (*pricing.Calculator, error) {
	if cfg.Pricing.TariffFile == "" {
		return pricing.NewDefaultCalculator(), nil
	}
	tariff, err := pricing.LoadTariff(cfg.Pricing.TariffFile)
	if err != nil {
		return nil, err
	}
	slog.Info("tariff loaded", "path", cfg.Pricing.TariffFile)
	return pricing.NewCalculator(tariff), nil
}
