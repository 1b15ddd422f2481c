package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/nabilsaied15/bibliotheque-api/internal/api/metrics"
)

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type rateLimitedResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RateLimit throttles requests per client IP within the given scope. A
// limiter failure fails open: availability wins over strictness when Redis
// is unreachable.
func RateLimit(limiter Limiter, scope string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := scope + ":" + c.RealIP()

			ok, err := limiter.Allow(c.Request().Context(), key)
			if err != nil {
				log.Warn().Err(err).Str("scope", scope).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !ok {
				metrics.RateLimitedTotal.WithLabelValues(scope).Inc()
				return c.JSON(http.StatusTooManyRequests, rateLimitedResponse{
					Status:  "error",
					Message: "too many requests, please retry later",
				})
			}

			return next(c)
		}
	}
}
