// Package cookie carries the admin session JWT between the dashboard and the API.
package cookie

import (
	"net/http"
	"strings"
	"time"

	"atlas-hotel/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AdminSessionCookieName = "access_token"

	// Only admin routes read the session, so the browser sends it nowhere else.
	adminSessionPath = "/api/admin"
)

var sameSiteModes = map[string]http.SameSite{
	"strict": http.SameSiteStrictMode,
	"lax":    http.SameSiteLaxMode,
	"none":   http.SameSiteNoneMode,
}

func SetAdminSession(c *gin.Context, cfg config.CookieConfig, token string, ttl time.Duration) {
	http.SetCookie(c.Writer, adminSession(cfg, token, int(ttl.Seconds())))
}

func ClearAdminSession(c *gin.Context, cfg config.CookieConfig) {
	http.SetCookie(c.Writer, adminSession(cfg, "", -1))
}

func GetAdminSession(c *gin.Context) string {
	token, err := c.Cookie(AdminSessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

func adminSession(cfg config.CookieConfig, value string, maxAge int) *http.Cookie {
	mode, ok := sameSiteModes[strings.ToLower(cfg.SameSite)]
	if !ok {
		mode = http.SameSiteLaxMode
	}
	// Browsers drop SameSite=None cookies that are not Secure.
	secure := cfg.Secure || mode == http.SameSiteNoneMode

	return &http.Cookie{
		Name:     AdminSessionCookieName,
		Value:    value,
		Path:     adminSessionPath,
		Domain:   cfg.Domain,
		MaxAge:   maxAge,
		Secure:   secure,
		HttpOnly: true,
		SameSite: mode,
	}
}
