package middleware

import (
	"net/http"
	"strings"
	"time"

	"atlas-hotel/internal/handler/httperr"
	"atlas-hotel/internal/pkg/errs"
	"atlas-hotel/internal/pkg/metrics"
	"atlas-hotel/internal/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

var errRateLimited = errs.New("rate limited")

// Per-IP limits of the public forms.
var (
	BookingLimit    = ratelimit.Rule{Limit: 10, Window: time.Minute}
	ContactLimit    = ratelimit.Rule{Limit: 10, Window: time.Minute}
	NewsletterLimit = ratelimit.Rule{Limit: 20, Window: time.Minute}
	AnalyticsLimit  = ratelimit.Rule{Limit: 120, Window: time.Minute}
)

type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
	metrics *metrics.Metrics
}

func NewRateLimitMiddleware(limiter *ratelimit.Limiter, m *metrics.Metrics) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		metrics: m,
	}
}

func (m *RateLimitMiddleware) Limit(scope string, rule ratelimit.Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter.Exceeded(scope+":"+ClientIP(c), rule) {
			m.metrics.RateLimited.WithLabelValues(scope).Inc()
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, httperr.CodeRateLimited, nil)
			return
		}
		c.Next()
	}
}

// ClientIP is the first X-Forwarded-For entry, else gin's view of the peer.
func ClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return "unknown"
}
