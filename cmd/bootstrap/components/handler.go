package components

import (
	"context"
	"log/slog"
	"time"

	"atlas-hotel/internal/handler"
	"atlas-hotel/internal/handler/api"
	"atlas-hotel/internal/handler/middleware"
	"atlas-hotel/internal/pkg/clock"
	"atlas-hotel/internal/pkg/config"
	"atlas-hotel/internal/pkg/jwt"
	"atlas-hotel/internal/pkg/metrics"
	"atlas-hotel/internal/pkg/ratelimit"
	"atlas-hotel/internal/usecase/commands"

	"go.uber.org/fx"
)

const rateLimitPruneInterval = 5 * time.Minute

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewStayHandler,
		api.NewInquiryHandler,
		api.NewPaymentHandler,
		api.NewAdminHandler,
		func(cfg config.Config, cmds commands.AdminCommands) *api.AuthHandler {
			return api.NewAuthHandler(cmds, cfg.Cookie)
		},
		func(cfg config.Config, jwtService *jwt.Service) *middleware.AuthMiddleware {
			return middleware.NewAuthMiddleware(cfg.Admin, jwtService)
		},
		NewRateLimiter,
		middleware.NewRateLimitMiddleware,
		NewHandlers,
		NewMiddlewares,
	),
	fx.Invoke(handler.NewRouter),
)

type HandlerParams struct {
	fx.In

	Booking *api.BookingHandler
	Stay    *api.StayHandler
	Inquiry *api.InquiryHandler
	Payment *api.PaymentHandler
	Admin   *api.AdminHandler
	Auth    *api.AuthHandler
}

func NewHandlers(p HandlerParams) handler.Handlers {
	return handler.Handlers{
		Booking: p.Booking,
		Stay:    p.Stay,
		Inquiry: p.Inquiry,
		Payment: p.Payment,
		Admin:   p.Admin,
		Auth:    p.Auth,
	}
}

type MiddlewareParams struct {
	fx.In

	Logger    *middleware.Logger
	Auth      *middleware.AuthMiddleware
	RateLimit *middleware.RateLimitMiddleware
	Metrics   *metrics.Metrics
}

func NewMiddlewares(p MiddlewareParams) handler.Middlewares {
	return handler.Middlewares{
		Logger:    p.Logger,
		Auth:      p.Auth,
		RateLimit: p.RateLimit,
		Metrics:   p.Metrics,
	}
}

// NewRateLimiter drops expired buckets in the background while the app runs.
func NewRateLimiter(lc fx.Lifecycle, clk clock.Clock) *ratelimit.Limiter {
	limiter := ratelimit.New(clk)
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ticker := time.NewTicker(rateLimitPruneInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if n := limiter.Prune(); n > 0 {
							slog.Debug("rate limit buckets pruned", "count", n)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
	return limiter
}
