package middleware

import (
	"item-service/pkg/log"
	"item-service/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
}

// New builds the middleware set. A nil jwtManager disables Auth; a
// non-positive requestsPerMin disables RateLimit.
func New(l log.Logger, jwtManager scope.Manager, requestsPerMin int) Middleware {
	mw := Middleware{
		l:          l,
		jwtManager: jwtManager,
	}
	if requestsPerMin > 0 {
		mw.limiter = newRateLimiter(requestsPerMin)
	}
	return mw
}
