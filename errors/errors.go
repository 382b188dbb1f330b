package errors

import (
	"fmt"
	"net/http"

	"github.com/mailguard-live/mailguard-backend/logger"
)

type ErrorType string

const (
	ValidationError ErrorType = "VALIDATION_ERROR"
	DatabaseError   ErrorType = "DATABASE_ERROR"
	EmailError      ErrorType = "EMAIL_ERROR"
	NetworkError    ErrorType = "NETWORK_ERROR"
	ServerError     ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the underlying error for errors.Is/As chains.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the HTTP status code associated with the error.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

// ValidationFailed creates a validation error whose message is safe to show
// to the end user (the first violated rule, per the API contract).
func ValidationFailed(message string, detail string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     detail,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewDatabaseError logs the original error and returns a sanitized AppError.
func NewDatabaseError(err error) *AppError {
	logger.GetLogger().Errorw("Database error", "error", err)
	return &AppError{
		Type:       DatabaseError,
		Message:    "Database operation failed",
		Detail:     "Please try again later",
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

// NewEmailError wraps a mail-transport failure. It is never surfaced to the
// end user; the call site logs and suppresses it.
func NewEmailError(err error) *AppError {
	return &AppError{
		Type:       EmailError,
		Message:    "Email delivery failed",
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

// NewNetworkError represents a failed or unreachable HTTP call from the client SDK.
func NewNetworkError(err error) *AppError {
	return &AppError{
		Type:       NetworkError,
		Message:    "Failed to send message",
		HTTPStatus: http.StatusServiceUnavailable,
		Raw:        err,
	}
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case NetworkError:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
