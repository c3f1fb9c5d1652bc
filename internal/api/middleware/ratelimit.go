package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/cfdns/internal/ratelimit"
)

// RateLimit rejects callers that exceed l with 429. A nil l allows everything.
func RateLimit(l *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests, please slow down.",
			})
			return
		}
		c.Next()
	}
}
