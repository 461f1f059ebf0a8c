package middleware

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"hardware-ai-orchestrator/pkg/response"
)

var errRateLimited = errors.New("too many requests")

// RateLimit enforces a token-bucket limit per client IP. Limiters are
// created lazily; an idle map entry costs a few words, acceptable for
// the expected client counts.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if !m.config.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limit := rate.Limit(float64(m.config.RequestsPerMinute) / 60)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		lim, ok := limiters[ip]
		if !ok {
			lim = rate.NewLimiter(limit, m.config.Burst)
			limiters[ip] = lim
		}
		mu.Unlock()

		if !lim.Allow() {
			m.l.Warnf(c.Request.Context(), "RateLimit: rejecting %s", ip)
			response.ErrorWithStatus(c, http.StatusTooManyRequests, errRateLimited)
			c.Abort()
			return
		}
		c.Next()
	}
}
