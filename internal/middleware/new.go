package middleware

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/luthfiarifin/elda-backend/pkg/log"
)

// Middleware bundles the cross-cutting gin middlewares.
type Middleware struct {
	l       log.Logger
	limiter *rate.Limiter
}

// New creates the middleware set. rateLimitPerMin caps how many speech
// requests the process accepts per minute; zero or negative disables the cap.
func New(l log.Logger, rateLimitPerMin int) Middleware {
	var limiter *rate.Limiter
	if rateLimitPerMin > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(rateLimitPerMin)), rateLimitPerMin)
	}
	return Middleware{
		l:       l,
		limiter: limiter,
	}
}
