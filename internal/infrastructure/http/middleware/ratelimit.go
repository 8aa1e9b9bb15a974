package middleware

import (
	"context"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/minutes-generator/errors"
)

// Limiter decides whether a request identified by key fits the quota.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit limits requests per client IP. A limiter outage fails open so
// generation stays available. The middleware writes the 429 response itself
// rather than returning the error, so the status code does not depend on the
// Echo instance carrying a custom error handler.
func RateLimit(limiter Limiter, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				if logger != nil {
					logger.Warn("rate limiter unavailable, allowing request",
						zap.String("ip", c.RealIP()),
						zap.Error(err))
				}
				return next(c)
			}

			if !allowed {
				if logger != nil {
					logger.Warn("rate limit exceeded",
						zap.String("ip", c.RealIP()),
						zap.String("path", c.Path()))
				}
				appErr := errors.ErrRateLimited()
				return c.JSON(appErr.HTTPCode, map[string]interface{}{
					"code":    appErr.Code,
					"message": appErr.Message,
				})
			}

			return next(c)
		}
	}
}
