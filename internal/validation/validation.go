// Package validation contains the logic for binding and validating
// request data.
//
// Binding goes through echo's binder unless the request type reads its
// own fields. Failures become 400 errors in the errs.HTTPError shape.
package validation
