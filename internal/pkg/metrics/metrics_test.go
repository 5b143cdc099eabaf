//go:build unit

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atlas-hotel/internal/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := metrics.New()
	m.Bookings.WithLabelValues("created", "suite").Inc()
	m.Bookings.WithLabelValues("created", "suite").Inc()
	m.RateLimited.WithLabelValues("booking").Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `atlas_hotel_bookings_total{outcome="created",room_type="suite"} 2`), body)
	assert.Contains(t, body, `atlas_hotel_rate_limited_total{scope="booking"} 1`)
}
