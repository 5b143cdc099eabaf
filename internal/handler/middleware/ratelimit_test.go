//go:build unit

package middleware_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"atlas-hotel/internal/handler/middleware"
	"atlas-hotel/internal/pkg/clock"
	"atlas-hotel/internal/pkg/metrics"
	"atlas-hotel/internal/pkg/ratelimit"
	"atlas-hotel/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clk := clock.NewMockClock(time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC))
	m := metrics.New()
	mw := middleware.NewRateLimitMiddleware(ratelimit.New(clk), m)

	router := gin.New()
	router.POST("/api/contact", mw.Limit("contact", ratelimit.Rule{Limit: 2, Window: time.Minute}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	from := func(ip string) map[string]string {
		return map[string]string{"X-Forwarded-For": ip + ", 10.0.0.1"}
	}

	for i := 0; i < 2; i++ {
		rec := httptest.PerformRawRequest(t, router, http.MethodPost, "/api/contact", nil, from("203.0.113.7"))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.PerformRawRequest(t, router, http.MethodPost, "/api/contact", nil, from("203.0.113.7"))
	httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "rate_limited")

	// another client has its own bucket
	rec = httptest.PerformRawRequest(t, router, http.MethodPost, "/api/contact", nil, from("198.51.100.2"))
	assert.Equal(t, http.StatusOK, rec.Code)

	// the window is closed until strictly after its end
	clk.Add(time.Minute)
	rec = httptest.PerformRawRequest(t, router, http.MethodPost, "/api/contact", nil, from("203.0.113.7"))
	httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "rate_limited")

	clk.Add(time.Second)
	rec = httptest.PerformRawRequest(t, router, http.MethodPost, "/api/contact", nil, from("203.0.113.7"))
	assert.Equal(t, http.StatusOK, rec.Code)

	metricsRec := httptest.PerformRawRequest(t, wrapMetrics(m), http.MethodGet, "/metrics", nil, nil)
	assert.True(t, strings.Contains(metricsRec.Body.String(), `atlas_hotel_rate_limited_total{scope="contact"} 2`), metricsRec.Body.String())
}

func TestClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/ip", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.ClientIP(c))
	})

	rec := httptest.PerformRawRequest(t, router, http.MethodGet, "/ip", nil, map[string]string{"X-Forwarded-For": " 203.0.113.9 , 10.0.0.1"})
	assert.Equal(t, "203.0.113.9", rec.Body.String())

	rec = httptest.PerformRawRequest(t, router, http.MethodGet, "/ip", nil, nil)
	assert.Equal(t, "192.0.2.1", rec.Body.String())
}

func wrapMetrics(m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.GET("/metrics", gin.WrapH(m.Handler()))
	return r
}
