package middleware

import (
	"math"
	"net/http"

	"github.com/deppfellow/service-generator/internal/errs"
	"github.com/deppfellow/service-generator/internal/server"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware limits requests per client IP using server.rate_limit.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limiter returns the rate limiting middleware, or a pass-through when the
// configured rate is zero.
func (r *RateLimitMiddleware) Limiter() echo.MiddlewareFunc {
	limit := r.server.Config.Server.RateLimit
	if limit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return echoMiddleware.RateLimiterWithConfig(echoMiddleware.RateLimiterConfig{
		Store: echoMiddleware.NewRateLimiterMemoryStoreWithConfig(echoMiddleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(limit),
			Burst: int(math.Max(1, math.Ceil(limit))),
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())

			r.server.Logger.Warn().
				Str("request_id", GetRequestID(c)).
				Str("identifier", identifier).
				Str("path", c.Path()).
				Msg("rate limit exceeded")

			return errs.NewTooManyRequestsError(http.StatusText(http.StatusTooManyRequests))
		},
	})
}

// RecordRateLimitHit records a New Relic custom event for a denied request.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}
