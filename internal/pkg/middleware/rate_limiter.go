package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/propline/adminauth/internal/utils"
)

// Limiter decides whether a request identified by key may perform an action.
// When the limit is exhausted it reports how long the caller must wait.
type Limiter interface {
	Allow(ctx context.Context, action, key string) (bool, time.Duration, error)
}

// RateLimiterMiddleware creates middleware that throttles requests per client
// IP for the given action
func RateLimiterMiddleware(limiter Limiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, retryAfter, err := limiter.Allow(c.Request().Context(), action, c.RealIP())
			if err != nil {
				// limiter errors fail open
				return next(c)
			}
			if !allowed {
				return utils.RateLimitedResponse(c, "rate_limited", retryAfter)
			}
			return next(c)
		}
	}
}
