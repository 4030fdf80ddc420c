package boltdb

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/gymkeeper/internal/client/storage"
	"github.com/iudanet/gymkeeper/internal/models"
)

func newTestAdapter(t *testing.T, opts Options) *Adapter {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	a, err := New(context.Background(), dbPath, opts)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, a.Close())
	})
	return a
}

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath, Options{})
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакеты существуют
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketAuth, bucketKV} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, storage.KindLocal, store.Kind())
}

func TestNew_InvalidPath(t *testing.T) {
	ctx := context.Background()
	// Путь с нулевым символом дает ошибку открытия
	invalidPath := string([]byte{0})
	store, err := New(ctx, invalidPath, Options{})
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath, Options{})
	require.NoError(t, err)

	assert.NoError(t, store.Close())
	assert.Nil(t, store.db)

	// Второй вызов Close ничего не делает
	assert.NoError(t, store.Close())

	// Операции после закрытия возвращают ErrStorageClosed
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	err = store.Set(ctx, "k", 1)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestAdapter_RoundTrip(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t, Options{})

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	trainings := []*models.Training{{
		ID:        "t1",
		Name:      "Leg Day",
		CreatedAt: created,
		UpdatedAt: created,
		Exercises: []models.ExerciseRef{
			{ExerciseID: "squat", Name: "Squat", TargetReps: 8, TargetWeight: 100},
		},
	}}

	require.NoError(t, a.Set(ctx, storage.KeyTrainings, trainings))

	raw, err := a.Get(ctx, storage.KeyTrainings)
	require.NoError(t, err)
	require.NotNil(t, raw)

	var got []*models.Training
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, trainings, got)
}

func TestAdapter_GetMissing(t *testing.T) {
	a := newTestAdapter(t, Options{})

	raw, err := a.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestAdapter_GetCorruptValue(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t, Options{})

	// Записываем мусор в обход Set
	err := a.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketKV).Put([]byte(storage.KeySessions), []byte("{not json"))
	})
	require.NoError(t, err)

	raw, err := a.Get(ctx, storage.KeySessions)
	require.NoError(t, err)
	assert.Nil(t, raw)

	// Exists согласован с Get
	ok, err := a.Exists(ctx, storage.KeySessions)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdapter_SetErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("serialization", func(t *testing.T) {
		a := newTestAdapter(t, Options{})
		err := a.Set(ctx, "bad", map[string]any{"ch": make(chan int)})
		assert.ErrorIs(t, err, storage.ErrSerialization)

		ok, err := a.Exists(ctx, "bad")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("quota", func(t *testing.T) {
		a := newTestAdapter(t, Options{MaxValueBytes: 16})
		err := a.Set(ctx, "big", strings.Repeat("x", 64))
		assert.ErrorIs(t, err, storage.ErrQuotaExceeded)

		require.NoError(t, a.Set(ctx, "small", "x"))
	})

	t.Run("unlimited", func(t *testing.T) {
		a := newTestAdapter(t, Options{MaxValueBytes: -1})
		require.NoError(t, a.Set(ctx, "big", strings.Repeat("x", DefaultMaxValueBytes+1)))
	})
}

func TestAdapter_RemoveExistsClear(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t, Options{})

	require.NoError(t, a.Set(ctx, "a", 1))
	require.NoError(t, a.Set(ctx, "b", 2))
	require.NoError(t, a.SaveAuth(ctx, &storage.AuthData{Username: "alice", UserID: "u1"}))

	ok, err := a.Exists(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, a.Remove(ctx, "a"))
	ok, err = a.Exists(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	// Удаление отсутствующего ключа не ошибка
	require.NoError(t, a.Remove(ctx, "a"))

	require.NoError(t, a.Clear(ctx))
	ok, err = a.Exists(ctx, "b")
	require.NoError(t, err)
	assert.False(t, ok)

	// Clear не трогает данные аутентификации
	auth, err := a.GetAuth(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", auth.UserID)
}

func TestAdapter_Keys(t *testing.T) {
	ctx := context.Background()
	a := newTestAdapter(t, Options{})

	for _, k := range []string{
		storage.SessionRecoveryKey("s2"),
		storage.KeySessions,
		storage.SessionRecoveryKey("s1"),
		storage.RemoteCacheKey(storage.KeySessions),
	} {
		require.NoError(t, a.Set(ctx, k, true))
	}

	keys, err := a.Keys(ctx, storage.SessionRecoveryPrefix())
	require.NoError(t, err)
	assert.Equal(t, []string{"session_recovery_s1", "session_recovery_s2"}, keys)

	keys, err = a.Keys(ctx, "nope_")
	require.NoError(t, err)
	assert.Empty(t, keys)
}
