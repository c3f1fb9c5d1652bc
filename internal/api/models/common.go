// Package models defines request and response types for the DNS proxy REST API.
// All types are JSON-serializable.
package models

// ErrorResponse is the body of every non-2xx proxy response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	// Data carries the provider's raw failure body for upstream errors.
	Data any `json:"data,omitempty"`
	// Details carries the internal error text for proxy-side failures.
	Details string `json:"details,omitempty"`
}

// StatusResponse represents a simple status response.
type StatusResponse struct {
	Status string `json:"status"`
}
