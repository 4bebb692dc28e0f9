package models

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	// Error is a human-readable description of the failure.
	Error string `json:"error"`

	// Reason is a stable machine-readable code (e.g. "contact_not_found").
	Reason string `json:"reason"`

	// Detail carries the wrapped internal error. It is filled only when the
	// server runs with error details exposed (non-production).
	Detail string `json:"detail,omitempty"`
}

// MessageResponse is a plain acknowledgement, e.g. after a delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}
