// Package handler is the first layer after the router.
//
// It binds and validates requests using the validation package,
// calls the service layer and shapes the HTTP response.
package handler
