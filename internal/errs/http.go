package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "register", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// Action describes an optional "what the client should do next" instruction.
type Action struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Value   string `json:"value"`
}

// HTTPError is the main custom error type for API responses.
//
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: lets the client show Message verbatim.
//   - Errors: list of per-field errors (validation).
//   - Action: client instruction (optional).
//   - NoBody: the response carries only the status, no JSON body.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors"`
	Action   *Action      `json:"action"`
	NoBody   bool         `json:"-"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError.
// It does NOT compare Code/Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
		NoBody:   e.NoBody,
	}
}

// WithoutBody returns a copy of this HTTPError that is rendered as a bare status.
func (e *HTTPError) WithoutBody() *HTTPError {
	cp := e.WithMessage(e.Message)
	cp.NoBody = true
	return cp
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
