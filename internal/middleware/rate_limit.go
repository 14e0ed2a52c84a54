package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"fleet-dispatch/pkg/response"
)

// RateLimit throttles requests per client IP. Each source gets its own token
// bucket; buckets for idle sources expire out of the LRU automatically.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		limiter, ok := m.limiters.Get(key)
		if !ok {
			limiter = rate.NewLimiter(m.rate, m.burst)
			m.limiters.Add(key, limiter)
		}

		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
