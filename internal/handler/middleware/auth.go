package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"atlas-hotel/internal/handler/httperr"
	"atlas-hotel/internal/pkg/config"
	"atlas-hotel/internal/pkg/cookie"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	AdminTokenHeader = "X-Admin-Token"

	ctxAdminViaKey = "admin_via"
)

// Values stored under ctxAdminViaKey.
const (
	AdminViaOpen    = "open"
	AdminViaToken   = "token"
	AdminViaSession = "session"
)

type AuthMiddleware struct {
	cfg        config.AdminConfig
	jwtService *jwt.Service
}

func NewAuthMiddleware(cfg config.AdminConfig, jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{
		cfg:        cfg,
		jwtService: jwtService,
	}
}

// RequireAdmin accepts the shared dashboard token (header or ?token=) or an
// admin session JWT (cookie or Bearer). With no credential configured the
// dashboard is open.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.cfg.Open() {
			c.Set(ctxAdminViaKey, AdminViaOpen)
			c.Next()
			return
		}

		if m.validDashboardToken(c) {
			c.Set(ctxAdminViaKey, AdminViaToken)
			c.Next()
			return
		}

		token := cookie.GetAdminSession(c)
		if token == "" {
			token = bearerToken(c)
		}
		if token != "" && m.jwtService != nil {
			_, err := m.jwtService.ValidateAdminToken(token)
			if err == nil {
				c.Set(ctxAdminViaKey, AdminViaSession)
				c.Next()
				return
			}
			slog.Warn("admin session rejected", "error", err.Error())
		}

		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "unauthorized", nil)
	}
}

func (m *AuthMiddleware) validDashboardToken(c *gin.Context) bool {
	if m.cfg.DashboardToken == "" {
		return false
	}
	provided := c.GetHeader(AdminTokenHeader)
	if provided == "" {
		provided = c.Query("token")
	}
	if provided == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(m.cfg.DashboardToken)) == 1
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

// AdminVia reports how the current request was admitted to the dashboard, or "".
func AdminVia(c *gin.Context) string {
	via, _ := c.Get(ctxAdminViaKey)
	s, _ := via.(string)
	return s
}
