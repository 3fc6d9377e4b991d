package middleware

import (
	"fmt"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rubencm33/Practica-PokedexApi/internal/ratelimit"
	apperrors "github.com/rubencm33/Practica-PokedexApi/pkg/errors"
)

// RateLimitByIP throttles a route per client address, for unauthenticated
// endpoints like register and login.
func RateLimitByIP(limiter *ratelimit.Limiter) echo.MiddlewareFunc {
	return rateLimit(limiter, func(c echo.Context) string {
		return c.RealIP()
	})
}

// RateLimitByUser throttles a route per authenticated username. It must run
// after JWTAuth; an unauthenticated request falls back to the client address.
func RateLimitByUser(limiter *ratelimit.Limiter) echo.MiddlewareFunc {
	return rateLimit(limiter, func(c echo.Context) string {
		if user := CurrentUser(c); user != nil {
			return user.Username
		}
		return c.RealIP()
	})
}

func rateLimit(limiter *ratelimit.Limiter, keyFor func(echo.Context) string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if limiter.Limited(keyFor(c)) {
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(limiter.Window().Seconds())))
				return apperrors.NewAppError(apperrors.ErrRateLimited,
					fmt.Sprintf("rate limit exceeded: at most %d requests per %s", limiter.Max(), limiter.Window()), nil)
			}
			return next(c)
		}
	}
}
