//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func performWithCookies(t *testing.T, router *gin.Engine, path string, headers map[string]string, cookies []*http.Cookie) *nethttptest.ResponseRecorder {
	t.Helper()

	req := nethttptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := nethttptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
