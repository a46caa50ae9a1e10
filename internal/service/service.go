// Package service contains the business logic.
//
// It sits behind the handler layer: it receives bound requests,
// performs the registration and returns response models.
package service
