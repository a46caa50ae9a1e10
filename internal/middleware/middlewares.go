package middleware

import (
	"github.com/deppfellow/service-generator/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server,
// built once from the application container and reused during router setup.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers, and the global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer stores a request-scoped logger on every request.
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware and custom transaction attributes.
	Tracing *TracingMiddleware

	// RateLimit enforces the per-IP request rate and records denials.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components.
//
// When New Relic is not configured the tracing middleware degrades into a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
