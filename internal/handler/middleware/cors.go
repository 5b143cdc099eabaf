package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"atlas-hotel/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware allows the configured origins plus the public site, which
// calls the booking and checkout endpoints from the browser.
func NewCORSMiddleware(cfg config.CORSConfig, siteURL string) gin.HandlerFunc {
	origins := slices.Clone(cfg.AllowOrigins)
	if site := strings.TrimRight(siteURL, "/"); site != "" && !slices.Contains(origins, site) {
		origins = append(origins, site)
	}

	slog.Debug("CORS configured", "origins", origins)
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    append(slices.Clone(cfg.ExposeHeaders), RequestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
