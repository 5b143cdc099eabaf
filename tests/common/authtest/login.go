//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"atlas-hotel/internal/handler/dto/request"
	"atlas-hotel/internal/pkg/cookie"
	"atlas-hotel/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginAdmin returns the session cookie set by POST /api/admin/login.
func LoginAdmin(t *testing.T, router *gin.Engine, password string) *http.Cookie {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.AdminLoginRequest{Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	session := httptest.ExtractCookie(w, cookie.AdminSessionCookieName)
	require.NotNil(t, session, "Admin session not found in cookies")
	require.NotEmpty(t, session.Value, "Admin session cookie is empty")

	return session
}

func LogoutAdmin(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/admin/logout", nil, cookies, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
