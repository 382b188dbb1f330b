package types

import "time"

// Message represents a persisted feedback message. Records are immutable once
// created; there are no update or delete operations.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessageCreate represents the request body for submitting a feedback message.
type MessageCreate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ErrorResponse is the body returned for validation and server failures.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports service health for the probe endpoints.
type HealthResponse struct {
	Status string `json:"status"`
}

const (
	HealthStatusUp   = "up"
	HealthStatusDown = "down"
)
