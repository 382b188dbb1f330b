// Package contract is the single source of truth for the feedback-message
// validation rules and the route descriptor, shared by the server handler and
// the client SDK so the two cannot silently drift apart.
package contract

import (
	"net/http"
	"regexp"
	"strings"

	apperrors "github.com/mailguard-live/mailguard-backend/errors"
	"github.com/mailguard-live/mailguard-backend/types"
)

// Route describes an HTTP endpoint shared between client and server.
type Route struct {
	Method string
	Path   string
}

// CreateMessage is the single write endpoint of the API.
var CreateMessage = Route{
	Method: http.MethodPost,
	Path:   "/api/messages",
}

// emailPattern accepts the basic user@host.tld shape. Deliverability is not
// checked; the relay surfaces bounces out of band.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks a candidate payload against the shared rule set, trimming
// surrounding whitespace in place. It returns the first violated rule as a
// user-facing validation error, or nil when the payload is acceptable.
func Validate(in *types.MessageCreate) *apperrors.AppError {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)

	if in.Name == "" {
		return apperrors.ValidationFailed("Name is required", "name")
	}
	if !emailPattern.MatchString(in.Email) {
		return apperrors.ValidationFailed("Invalid email address", "email")
	}
	if in.Message == "" {
		return apperrors.ValidationFailed("Message is required", "message")
	}
	return nil
}
