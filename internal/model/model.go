// Package model holds the response shapes returned by the API.
package model

// Registration pairs an issued identifier with the submitted service file.
//
// The JSON field names are part of the external contract.
type Registration struct {
	ID                 int64  `json:"id"`
	ServiceFileContent string `json:"serviceFileContent"`
}

// ServiceInfo describes the running registration service.
type ServiceInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
