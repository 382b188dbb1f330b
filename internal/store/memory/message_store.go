// Package memory provides an in-memory MessageStore for deployments without a
// database and for tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mailguard-live/mailguard-backend/internal/store"
	"github.com/mailguard-live/mailguard-backend/types"
)

// Ensure MessageStore implements store.MessageStore
var _ store.MessageStore = (*MessageStore)(nil)

// MessageStore keeps created messages in process memory, keyed by id.
type MessageStore struct {
	mu       sync.Mutex
	messages map[string]types.Message
}

// NewMessageStore creates an empty in-memory message store.
func NewMessageStore() *MessageStore {
	return &MessageStore{messages: make(map[string]types.Message)}
}

// CreateMessage assigns a UUID and creation timestamp and stores the record.
func (s *MessageStore) CreateMessage(_ context.Context, in *types.MessageCreate) (*types.Message, error) {
	msg := types.Message{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.messages[msg.ID] = msg
	s.mu.Unlock()

	return &msg, nil
}

// Ping always succeeds; process memory is always reachable.
func (s *MessageStore) Ping(context.Context) error {
	return nil
}

// Len returns the number of stored messages.
func (s *MessageStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}
