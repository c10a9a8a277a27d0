package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/campusnav/campus-nav-server/internal/config"
)

// RateLimit returns middleware enforcing a fixed-window request limit
// per client IP and route, counted in Redis with INCR + EXPIRE. Over
// the limit the request is rejected with 429 and a Retry-After header.
// A nil client or a disabled config turns the middleware into a
// pass-through, and Redis errors fail open so an unhealthy Redis never
// takes the API down with it.
func RateLimit(rdb *redis.Client, cfg config.RateLimitConfig) echo.MiddlewareFunc {
	// Windows are keyed by whole seconds; a sub-second window would make
	// the divisor zero.
	if cfg.Window < time.Second {
		cfg.Window = time.Second
	}
	windowSecs := int64(cfg.Window / time.Second)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if rdb == nil || !cfg.Enabled {
				return next(c)
			}

			ctx := c.Request().Context()
			window := time.Now().Unix() / windowSecs
			key := cfg.Prefix + ":" + c.RealIP() + ":" + c.Path() + ":" + strconv.FormatInt(window, 10)

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if count == 1 {
				// First hit in this window owns setting the expiry.
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}
			if count > int64(cfg.Limit) {
				retry := cfg.Window - time.Duration(time.Now().Unix()%windowSecs)*time.Second
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retry/time.Second)))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
