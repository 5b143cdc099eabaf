package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"atlas-hotel/internal/handler/api"
	"atlas-hotel/internal/handler/middleware"
	"atlas-hotel/internal/pkg/config"
	"atlas-hotel/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Booking *api.BookingHandler
	Stay    *api.StayHandler
	Inquiry *api.InquiryHandler
	Payment *api.PaymentHandler
	Admin   *api.AdminHandler
	Auth    *api.AuthHandler
}

type Middlewares struct {
	Logger    *middleware.Logger
	Auth      *middleware.AuthMiddleware
	RateLimit *middleware.RateLimitMiddleware
	Metrics   *metrics.Metrics
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, cfg.Server.SiteURL))
	engine.Use(mw.Logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(mw.Metrics))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(mw.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limit := mw.RateLimit.Limit
	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/booking", Handler: h.Booking.Create, Mw: []gin.HandlerFunc{limit("booking", middleware.BookingLimit)}},
			{Method: http.MethodPost, Path: "/contact", Handler: h.Inquiry.Contact, Mw: []gin.HandlerFunc{limit("contact", middleware.ContactLimit)}},
			{Method: http.MethodPost, Path: "/newsletter", Handler: h.Inquiry.Newsletter, Mw: []gin.HandlerFunc{limit("newsletter", middleware.NewsletterLimit)}},
			{Method: http.MethodPost, Path: "/analytics", Handler: h.Inquiry.Analytics, Mw: []gin.HandlerFunc{limit("analytics", middleware.AnalyticsLimit)}},
			{Method: http.MethodGet, Path: "/availability", Handler: h.Stay.Availability},
			{Method: http.MethodPost, Path: "/estimate", Handler: h.Stay.Estimate},
			{Method: http.MethodGet, Path: "/rooms", Handler: h.Stay.Rooms},
			{Method: http.MethodPost, Path: "/payments/checkout", Handler: h.Payment.Checkout},
			{Method: http.MethodGet, Path: "/payments/confirm", Handler: h.Payment.Confirm},
			{Method: http.MethodPost, Path: "/stripe/webhook", Handler: h.Payment.Webhook},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			adminRequired := admin.Group("")
			adminRequired.Use(mw.Auth.RequireAdmin())
			addRoutes(adminRequired, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: h.Admin.Dashboard},
				{Method: http.MethodGet, Path: "/export", Handler: h.Admin.Export},
				{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Admin.Booking},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Admin.ChangeStatus},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
