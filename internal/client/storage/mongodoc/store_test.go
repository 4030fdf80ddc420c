package mongodoc

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gymkeeper/internal/client/storage/remote"
)

func TestEventValue(t *testing.T) {
	tests := []struct {
		name   string
		ev     changeEvent
		want   json.RawMessage
		wantOK bool
	}{
		{
			name:   "replace",
			ev:     changeEvent{OperationType: "replace", FullDocument: &document{Value: `[1]`}},
			want:   json.RawMessage(`[1]`),
			wantOK: true,
		},
		{
			name:   "delete",
			ev:     changeEvent{OperationType: "delete"},
			want:   nil,
			wantOK: true,
		},
		{
			name:   "update without full document",
			ev:     changeEvent{OperationType: "update"},
			wantOK: false,
		},
		{
			name:   "drop",
			ev:     changeEvent{OperationType: "drop"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := eventValue(tt.ev)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Интеграционный тест: нужен запущенный MongoDB
func TestStore_Integration(t *testing.T) {
	uri := os.Getenv("GYMKEEPER_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("GYMKEEPER_TEST_MONGO_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := Connect(ctx, uri)
	require.NoError(t, err)
	defer client.Disconnect(context.Background())

	db := client.Database("gymkeeper_test_" + uuid.NewString()[:8])
	defer db.Drop(context.Background())

	s := New(db, "", nil)
	path := remote.DocumentPath("u1", "sessions")

	_, err = s.GetDocument(ctx, path)
	assert.ErrorIs(t, err, remote.ErrDocumentNotFound)

	require.NoError(t, s.PutDocument(ctx, path, json.RawMessage(`[{"id":"s1"}]`)))
	got, err := s.GetDocument(ctx, path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"s1"}]`, string(got))

	require.NoError(t, s.DeleteDocument(ctx, path))
	_, err = s.GetDocument(ctx, path)
	assert.ErrorIs(t, err, remote.ErrDocumentNotFound)
}
