package memdoc

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gymkeeper/internal/client/storage/remote"
)

func TestStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	s := New()
	path := remote.DocumentPath("u1", "sessions")

	_, err := s.GetDocument(ctx, path)
	assert.ErrorIs(t, err, remote.ErrDocumentNotFound)

	require.NoError(t, s.PutDocument(ctx, path, json.RawMessage(`[1,2]`)))
	got, err := s.GetDocument(ctx, path)
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2]`, string(got))

	require.NoError(t, s.DeleteDocument(ctx, path))
	require.NoError(t, s.DeleteDocument(ctx, path))
	_, err = s.GetDocument(ctx, path)
	assert.ErrorIs(t, err, remote.ErrDocumentNotFound)
}

func TestStore_Watch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New()
	path := remote.DocumentPath("u1", "trainings")

	var seen []string
	stop, err := s.WatchDocument(ctx, path, func(v json.RawMessage) {
		seen = append(seen, string(v))
	})
	require.NoError(t, err)

	require.NoError(t, s.PutDocument(ctx, path, json.RawMessage(`"a"`)))
	require.NoError(t, s.PutDocument(ctx, remote.DocumentPath("u2", "trainings"), json.RawMessage(`"x"`)))
	require.NoError(t, s.DeleteDocument(ctx, path))

	stop()
	require.NoError(t, s.PutDocument(ctx, path, json.RawMessage(`"b"`)))

	assert.Equal(t, []string{`"a"`, ""}, seen)
}

func TestStore_Failure(t *testing.T) {
	ctx := context.Background()
	s := New()
	boom := errors.New("network down")

	s.SetFailure(boom)
	assert.ErrorIs(t, s.PutDocument(ctx, "p", json.RawMessage(`1`)), boom)
	_, err := s.GetDocument(ctx, "p")
	assert.ErrorIs(t, err, boom)

	s.SetFailure(nil)
	require.NoError(t, s.PutDocument(ctx, "p", json.RawMessage(`1`)))
	assert.Len(t, s.Documents(), 1)
}
