package handler

import (
	"fmt"
	"time"

	"github.com/deppfellow/service-generator/internal/middleware"
	"github.com/deppfellow/service-generator/internal/server"
	"github.com/deppfellow/service-generator/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application dependencies.
//
// It is embedded by concrete handlers so they can reach config, logger
// and metrics through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// HandlerFunc represents a typed endpoint function that:
//
//   - receives a bound and validated request payload (Req)
//   - returns a response (Res) or an error
//
// Req is a POINTER type, e.g. *RegisterRequest, so binding can populate it.
type HandlerFunc[Req validation.Validatable, Res any] func(c echo.Context, req Req) (Res, error)

// ResponseHandler defines how a successful handler result is written to the
// HTTP response and which operation name is logged for it.
type ResponseHandler interface {
	Handle(c echo.Context, result interface{}) error
	GetOperation() string
	AddAttributes(txn AttributeRecorder, result interface{})
}

// AttributeRecorder is the part of *newrelic.Transaction response handlers write to.
type AttributeRecorder interface {
	AddAttribute(key string, value interface{})
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// AddAttributes records the response shape. http.status_code is already
// set by the tracing middleware.
func (h JSONResponseHandler) AddAttributes(txn AttributeRecorder, result interface{}) {
	txn.AddAttribute("http.response_type", "json")
	if result != nil {
		txn.AddAttribute("response.result_type", fmt.Sprintf("%T", result))
	}
}

// handleRequest is the shared execution pipeline for all typed handlers.
//
// It centralizes:
//   - request binding + validation
//   - structured logging (with request context)
//   - New Relic attributes and error reporting
//   - timing (validation duration, handler duration, total duration)
//   - response writing
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	route := c.Path()

	// Set by the New Relic Echo middleware (nrecho); nil when disabled.
	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(txn, nil)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()

	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Error().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		// The global error handler formats the response.
		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		// Expected outcomes (4xx) are logged by the request logger; only note them here.
		logger.Debug().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler returned error")

		if txn != nil {
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())

		responseHandler.AddAttributes(txn, result)
	}

	logger.Debug().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed handler with binding, validation, logging and tracing
// and returns an echo.HandlerFunc that can be registered directly on routes.
//
// newReq is called once per request so concurrent requests never share a payload.
//
//	router.POST("/daemon", handler.Handle(h, h.Register, http.StatusAccepted, NewRegisterRequest))
func Handle[Req validation.Validatable, Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
	newReq func() Req,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, newReq(), func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}
