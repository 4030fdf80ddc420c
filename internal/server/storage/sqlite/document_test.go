package sqlite

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gymkeeper/internal/server/storage"
)

func TestDocumentStorage_PutGet(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	user := createTestUser(t, s, "alice")

	_, err := s.GetDocument(ctx, user.ID, "sessions")
	require.ErrorIs(t, err, storage.ErrDocumentNotFound)

	first, err := s.PutDocument(ctx, user.ID, "sessions", []byte(`[{"id":"s1"}]`))
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.Version)

	second, err := s.PutDocument(ctx, user.ID, "sessions", []byte(`[]`))
	require.NoError(t, err)
	assert.EqualValues(t, 2, second.Version)

	got, err := s.GetDocument(ctx, user.ID, "sessions")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got.Value))
	assert.EqualValues(t, 2, got.Version)
	assert.Equal(t, "sessions", got.Key)
	assert.Equal(t, user.ID, got.UserID)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestDocumentStorage_PartitionedByUser(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	_, err := s.PutDocument(ctx, alice.ID, "trainings", []byte(`["alice"]`))
	require.NoError(t, err)

	_, err = s.GetDocument(ctx, bob.ID, "trainings")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	_, err = s.PutDocument(ctx, bob.ID, "trainings", []byte(`["bob"]`))
	require.NoError(t, err)

	got, err := s.GetDocument(ctx, alice.ID, "trainings")
	require.NoError(t, err)
	assert.JSONEq(t, `["alice"]`, string(got.Value))
}

func TestDocumentStorage_Delete(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	user := createTestUser(t, s, "alice")

	_, err := s.PutDocument(ctx, user.ID, "sessions", []byte(`[]`))
	require.NoError(t, err)

	require.NoError(t, s.DeleteDocument(ctx, user.ID, "sessions"))
	_, err = s.GetDocument(ctx, user.ID, "sessions")
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	assert.ErrorIs(t, s.DeleteDocument(ctx, user.ID, "sessions"), storage.ErrDocumentNotFound)
}

func TestDocumentStorage_UnknownUser(t *testing.T) {
	s := setupTestStorage(t)

	// Внешний ключ на users
	_, err := s.PutDocument(context.Background(), uuid.New().String(), "sessions", []byte(`[]`))
	assert.Error(t, err)
}
