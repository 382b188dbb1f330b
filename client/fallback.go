package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/mailguard-live/mailguard-backend/types"
)

// FallbackFileName is the fixed name of the client-local message list,
// matching the key the landing page uses in browser storage.
const FallbackFileName = "mailguard_messages.json"

// FallbackStore persists messages in a local JSON file when the backend is
// unreachable. The list is append-only and never reconciled with the server
// store; entries exist for manual follow-up only.
type FallbackStore struct {
	mu   sync.Mutex
	path string
}

// NewFallbackStore creates a fallback store rooted at dir. The file itself is
// created on first append.
func NewFallbackStore(dir string) *FallbackStore {
	return &FallbackStore{path: filepath.Join(dir, FallbackFileName)}
}

// Path returns the location of the fallback file.
func (s *FallbackStore) Path() string {
	return s.path
}

// Append synthesizes a record from the validated input — timestamp-derived id,
// current-time createdAt — and appends it to the local list using a
// read-modify-write of the whole file.
func (s *FallbackStore) Append(in *types.MessageCreate) (*types.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages, err := s.readLocked()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	// Timestamp-derived id; bump on the rare same-millisecond collision to
	// keep ids unique within this store.
	id := now.UnixMilli()
	for containsID(messages, strconv.FormatInt(id, 10)) {
		id++
	}
	msg := types.Message{
		ID:        strconv.FormatInt(id, 10),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: now,
	}
	messages = append(messages, msg)

	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode fallback messages: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write fallback file: %w", err)
	}

	return &msg, nil
}

// Messages returns all locally stored messages.
func (s *FallbackStore) Messages() ([]types.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

func containsID(messages []types.Message, id string) bool {
	for _, m := range messages {
		if m.ID == id {
			return true
		}
	}
	return false
}

func (s *FallbackStore) readLocked() ([]types.Message, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read fallback file: %w", err)
	}

	var messages []types.Message
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode fallback file: %w", err)
	}
	return messages, nil
}
