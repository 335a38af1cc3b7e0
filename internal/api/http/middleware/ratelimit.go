package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit admits at most requests per window on the route it is attached
// to, with bursts up to the full capacity. Each call owns its own bucket,
// so every route gets an independent gate.
func RateLimit(requests int, window time.Duration) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(float64(requests)/window.Seconds()), requests)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests",
			})
			return
		}

		c.Next()
	}
}
