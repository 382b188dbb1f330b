// Package store defines the persistence interfaces for feedback messages.
package store

import (
	"context"

	"github.com/mailguard-live/mailguard-backend/types"
)

// MessageStore handles feedback-message persistence. Creation is the only
// operation the rest of the system needs; records are never read back,
// updated, or deleted through the API.
type MessageStore interface {
	// CreateMessage assigns an id and creation timestamp, stores the record,
	// and returns it. Concurrent creates must be safe.
	CreateMessage(ctx context.Context, in *types.MessageCreate) (*types.Message, error)

	// Ping reports whether the backing store is reachable. Used by the
	// readiness probe.
	Ping(ctx context.Context) error
}
