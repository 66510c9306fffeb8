package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/luthfiarifin/elda-backend/pkg/response"
)

// RateLimit rejects requests above the configured per-minute budget with a
// 429 and a user-safe message.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter != nil && !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "internal.middleware.RateLimit: request rejected")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				Message: "I'm receiving too many requests right now. Please try again in a moment.",
			})
			return
		}
		c.Next()
	}
}
