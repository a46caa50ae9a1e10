package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterParam is the query parameter carrying the service file content.
const RegisterParam = "register"

// RegisterRequest carries the service file submitted to POST /daemon.
//
// ServiceFileContent is nil when the register parameter was not sent at all,
// and points at the (possibly empty) value otherwise.
type RegisterRequest struct {
	ServiceFileContent *string
}

// NewRegisterRequest allocates an empty RegisterRequest.
func NewRegisterRequest() *RegisterRequest {
	return &RegisterRequest{}
}

// Bind reads the register query parameter, keeping "absent" distinct from "empty".
func (r *RegisterRequest) Bind(c echo.Context) error {
	if values, ok := c.QueryParams()[RegisterParam]; ok && len(values) > 0 {
		content := values[0]
		r.ServiceFileContent = &content
	}
	return nil
}

// Validate accepts any content: service files are stored unvalidated.
func (r *RegisterRequest) Validate() error {
	return nil
}

// InfoRequest is the (empty) request of GET /daemon/info.
type InfoRequest struct{}

// NewInfoRequest allocates an InfoRequest.
func NewInfoRequest() *InfoRequest {
	return &InfoRequest{}
}

func (r *InfoRequest) Validate() error {
	return nil
}
