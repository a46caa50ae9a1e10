// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/deppfellow/service-generator/internal/handler"
	"github.com/deppfellow/service-generator/internal/middleware"
	"github.com/deppfellow/service-generator/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with the global middleware chain and
// every route registered.
//
// Order matters: the request id is assigned first so even rate limited
// responses carry it, and the request logger runs inside the context
// enhancer so it sees the request-scoped logger.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.RateLimit.Limiter(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, s, h)
	registerDaemonRoutes(router, h)

	return router
}
