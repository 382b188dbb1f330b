// Package postgres implements the MessageStore against a pgx connection pool.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mailguard-live/mailguard-backend/internal/store"
	"github.com/mailguard-live/mailguard-backend/types"
)

// PgxIface is the subset of pgxpool.Pool the store depends on. Satisfied by
// *pgxpool.Pool and by pgxmock in tests.
type PgxIface interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// Ensure MessageStore implements store.MessageStore
var _ store.MessageStore = (*MessageStore)(nil)

// MessageStore persists feedback messages in the messages table. The id and
// created_at columns are assigned by the database.
type MessageStore struct {
	db PgxIface
}

// NewMessageStore creates a message store backed by the given pool.
func NewMessageStore(db PgxIface) *MessageStore {
	return &MessageStore{db: db}
}

// CreateMessage inserts a new message and returns the stored record with its
// database-assigned id and timestamp.
func (s *MessageStore) CreateMessage(ctx context.Context, in *types.MessageCreate) (*types.Message, error) {
	msg := &types.Message{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
	}
	err := s.db.QueryRow(ctx,
		`INSERT INTO messages (name, email, message) VALUES ($1, $2, $3) RETURNING id, created_at`,
		in.Name, in.Email, in.Message,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return msg, nil
}

// Ping checks database connectivity.
func (s *MessageStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
