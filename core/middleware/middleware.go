package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go-appointment-api/core/cache"
	"go-appointment-api/core/constants"
	"go-appointment-api/core/errors"
	"go-appointment-api/core/logger"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

type Middleware struct {
	cache  *cache.Cache
	limit  int
	window time.Duration
}

func New(c *cache.Cache, limit, windowSeconds int) *Middleware {
	return &Middleware{
		cache:  c,
		limit:  limit,
		window: time.Duration(windowSeconds) * time.Second,
	}
}

// RequestLogger logs each request with latency and status.
func (m *Middleware) RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Info("HTTP:Request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"latency_ms", time.Since(start).Milliseconds(),
				"ip", c.RealIP(),
			)
			return err
		}
	}
}

// INCR + first-hit PEXPIRE, atomic so the window cannot leak without a TTL.
var rateLimitScript = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return current
`)

// RateLimiter enforces a fixed-window per-IP limit. Fails open when Redis is
// unreachable: slot lookups should not depend on the limiter backend.
func (m *Middleware) RateLimiter() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()

			windowID := time.Now().Unix() / int64(m.window.Seconds())
			key := fmt.Sprintf("%s:%s:%d", constants.RedisKeyRateLimit, c.RealIP(), windowID)

			count, err := rateLimitScript.Run(ctx, m.cache.Client(), []string{key}, m.window.Milliseconds()).Int64()
			if err != nil {
				logger.Warn("Middleware:RateLimiter:RedisUnavailable", "error", err)
				return next(c)
			}
			if count > int64(m.limit) {
				return echo.NewHTTPError(http.StatusTooManyRequests, map[string]any{
					"status":  "error",
					"code":    errors.ErrRateLimited,
					"message": "rate limit exceeded",
				})
			}
			return next(c)
		}
	}
}
