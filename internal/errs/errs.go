// Package errs defines the error types returned to API clients.
//
// Every error that reaches the global error handler is rendered
// from an HTTPError so clients always receive the same shape.
package errs
