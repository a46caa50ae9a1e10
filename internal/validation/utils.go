package validation

import (
	"github.com/deppfellow/service-generator/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validatable is implemented by request payload types that know how to validate themselves.
type Validatable interface {
	Validate() error
}

// Binder is implemented by request types that read their own fields from
// the request instead of going through echo's default binder. It is used
// when a request needs to know whether a parameter was sent at all.
type Binder interface {
	Bind(c echo.Context) error
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. payload.Bind(c) when payload is a Binder, c.Bind(payload) otherwise.
//  2. payload.Validate() applies validation rules.
//
// Either failure is returned as a 400 *errs.HTTPError.
// payload must be a pointer for binding to have any effect.
func BindAndValidate(c echo.Context, payload Validatable) error {
	var err error
	if binder, ok := payload.(Binder); ok {
		err = binder.Bind(c)
	} else {
		err = c.Bind(payload)
	}
	if err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil, nil)
	}

	if err := payload.Validate(); err != nil {
		return errs.NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil, nil)
	}

	return nil
}

// bindErrorMessage extracts the client-facing part of a bind error.
func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok {
			return msg
		}
	}
	return err.Error()
}
