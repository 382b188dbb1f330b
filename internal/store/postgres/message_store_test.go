package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailguard-live/mailguard-backend/types"
)

func newMockStore(t *testing.T) (*MessageStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewMessageStore(mock), mock
}

func TestCreateMessage(t *testing.T) {
	store, mock := newMockStore(t)

	id := "2f1aa07b-31d2-4f8a-92f3-9ad6f2f7b6cd"
	createdAt := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO messages \(name, email, message\) VALUES \(\$1, \$2, \$3\) RETURNING id, created_at`).
		WithArgs("Ana", "ana@x.com", "Hi").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(id, createdAt))

	msg, err := store.CreateMessage(context.Background(), &types.MessageCreate{
		Name:    "Ana",
		Email:   "ana@x.com",
		Message: "Hi",
	})
	require.NoError(t, err)

	assert.Equal(t, id, msg.ID)
	assert.Equal(t, "Ana", msg.Name)
	assert.Equal(t, "ana@x.com", msg.Email)
	assert.Equal(t, "Hi", msg.Message)
	assert.Equal(t, createdAt, msg.CreatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMessageInsertError(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`INSERT INTO messages`).
		WithArgs("Ana", "ana@x.com", "Hi").
		WillReturnError(errors.New("connection reset"))

	msg, err := store.CreateMessage(context.Background(), &types.MessageCreate{
		Name:    "Ana",
		Email:   "ana@x.com",
		Message: "Hi",
	})
	assert.Nil(t, msg)
	assert.ErrorContains(t, err, "failed to create message")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPing(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectPing()
	assert.NoError(t, store.Ping(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}
