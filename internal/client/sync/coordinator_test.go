package sync

import (
	"context"
	"encoding/json"
	"errors"
	stdsync "sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gymkeeper/internal/client/persistence"
	"github.com/iudanet/gymkeeper/internal/client/storage"
	"github.com/iudanet/gymkeeper/internal/client/store"
	"github.com/iudanet/gymkeeper/internal/models"
	"github.com/iudanet/gymkeeper/internal/validation"
)

var (
	t0 = time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	t1 = t0.Add(time.Hour)
)

// memoryAdapter мок адаптера поверх map
func memoryAdapter(kind storage.Kind, data map[string]json.RawMessage) *storage.AdapterMock {
	var mu stdsync.Mutex
	if data == nil {
		data = make(map[string]json.RawMessage)
	}
	return &storage.AdapterMock{
		KindFunc: func() storage.Kind { return kind },
		GetFunc: func(ctx context.Context, key string) (json.RawMessage, error) {
			mu.Lock()
			defer mu.Unlock()
			return data[key], nil
		},
		SetFunc: func(ctx context.Context, key string, value any) error {
			raw, err := json.Marshal(value)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			data[key] = raw
			return nil
		},
		RemoveFunc: func(ctx context.Context, key string) error {
			mu.Lock()
			defer mu.Unlock()
			delete(data, key)
			return nil
		},
	}
}

// refreshingAdapter remote adapter with a cache-bypassing read
type refreshingAdapter struct {
	*storage.AdapterMock
	refreshes int
}

func (r *refreshingAdapter) Refresh(ctx context.Context, key string) (json.RawMessage, error) {
	r.refreshes++
	return r.Get(ctx, key)
}

func newTrainingStore(t *testing.T, local storage.Adapter) *store.Store[*models.Training] {
	t.Helper()
	svc, err := persistence.New(storage.KindLocal, persistence.Adapters{Local: local}, nil, nil)
	require.NoError(t, err)
	return store.New(svc, store.Config[*models.Training]{
		Name:         storage.KeyTrainings,
		StampCreated: true,
		StampUpdated: true,
		Less:         models.TrainingsByNewest,
	}, nil)
}

func trainingSync() Config[*models.Training] {
	return Config[*models.Training]{
		StorageName: storage.KeyTrainings,
		PushOn:      []store.Action{store.ActionCreateItem, store.ActionUpdateItem, store.ActionDeleteItem},
		PullOn:      []store.Action{store.ActionListItems},
		Timestamp:   (*models.Training).LastModified,
		Less:        models.TrainingsByNewest,
		Debounce:    30 * time.Millisecond,
		Timeout:     time.Second,
	}
}

func trainingsJSON(t *testing.T, items ...*models.Training) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(items)
	require.NoError(t, err)
	return raw
}

func decodeTrainings(t *testing.T, value any) []*models.Training {
	t.Helper()
	raw, err := json.Marshal(value)
	require.NoError(t, err)
	var items []*models.Training
	require.NoError(t, json.Unmarshal(raw, &items))
	return items
}

func TestNew_RequiresTimestamp(t *testing.T) {
	s := newTrainingStore(t, memoryAdapter(storage.KindLocal, nil))
	_, err := New[*models.Training](s, memoryAdapter(storage.KindRemote, nil), Config[*models.Training]{}, nil)
	assert.Error(t, err)
}

func TestCoordinator_DebounceCollapsesPushes(t *testing.T) {
	ctx := context.Background()
	s := newTrainingStore(t, memoryAdapter(storage.KindLocal, nil))
	remote := memoryAdapter(storage.KindRemote, nil)

	cfg := trainingSync()
	cfg.Debounce = 150 * time.Millisecond
	c, err := New(s, remote, cfg, nil)
	require.NoError(t, err)
	c.Start()
	defer func() { _ = c.Stop(ctx) }()

	var last *models.Training
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		last, err = s.Create(ctx, &models.Training{Name: name})
		require.NoError(t, err)
	}
	last.Name = "E edited"
	_, err = s.Update(ctx, last)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return len(remote.SetCalls()) == 1 }, 2*time.Second, 5*time.Millisecond)
	time.Sleep(300 * time.Millisecond)

	calls := remote.SetCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, storage.KeyTrainings, calls[0].Key)

	pushed := decodeTrainings(t, calls[0].Value)
	require.Len(t, pushed, 5)
	assert.Equal(t, "A", pushed[0].Name)
	assert.Equal(t, "E edited", pushed[4].Name)
}

func TestCoordinator_PushFailureIsNotRetried(t *testing.T) {
	ctx := context.Background()
	s := newTrainingStore(t, memoryAdapter(storage.KindLocal, nil))
	remote := memoryAdapter(storage.KindRemote, nil)
	remote.SetFunc = func(ctx context.Context, key string, value any) error {
		return errors.New("network down")
	}

	c, err := New(s, remote, trainingSync(), nil)
	require.NoError(t, err)
	c.Start()

	_, err = s.Create(ctx, &models.Training{Name: "Leg Day"})
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return len(remote.SetCalls()) == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, remote.SetCalls(), 1)

	// Локальная коллекция не затронута
	assert.Len(t, s.Items(), 1)
	require.NoError(t, c.Stop(ctx))
}

func TestCoordinator_StopFlushesPendingPush(t *testing.T) {
	ctx := context.Background()
	s := newTrainingStore(t, memoryAdapter(storage.KindLocal, nil))
	remote := memoryAdapter(storage.KindRemote, nil)

	cfg := trainingSync()
	cfg.Debounce = time.Hour
	c, err := New(s, remote, cfg, nil)
	require.NoError(t, err)
	c.Start()

	_, err = s.Create(ctx, &models.Training{Name: "Leg Day"})
	require.NoError(t, err)
	assert.Empty(t, remote.SetCalls())

	require.NoError(t, c.Stop(ctx))
	require.Len(t, remote.SetCalls(), 1)
	assert.Len(t, decodeTrainings(t, remote.SetCalls()[0].Value), 1)

	// После остановки события игнорируются
	_, err = s.Create(ctx, &models.Training{Name: "Push"})
	require.NoError(t, err)
	assert.ErrorIs(t, c.PushNow(ctx), ErrStopped)
	assert.Len(t, remote.SetCalls(), 1)
}

func TestCoordinator_PushNowCancelsPendingTimer(t *testing.T) {
	ctx := context.Background()
	s := newTrainingStore(t, memoryAdapter(storage.KindLocal, nil))
	remote := memoryAdapter(storage.KindRemote, nil)

	cfg := trainingSync()
	cfg.Debounce = 50 * time.Millisecond
	c, err := New(s, remote, cfg, nil)
	require.NoError(t, err)
	c.Start()

	_, err = s.Create(ctx, &models.Training{Name: "Leg Day"})
	require.NoError(t, err)
	require.NoError(t, c.PushNow(ctx))

	time.Sleep(150 * time.Millisecond)
	assert.Len(t, remote.SetCalls(), 1)
	require.NoError(t, c.Stop(ctx))
}

func TestCoordinator_EmptyCollectionPushesList(t *testing.T) {
	ctx := context.Background()
	s := newTrainingStore(t, memoryAdapter(storage.KindLocal, nil))
	remote := memoryAdapter(storage.KindRemote, nil)

	c, err := New(s, remote, trainingSync(), nil)
	require.NoError(t, err)
	require.NoError(t, c.PushNow(ctx))

	raw, err := remote.Get(ctx, storage.KeyTrainings)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestSyncFromCloud_LastWriterWins(t *testing.T) {
	tests := []struct {
		name       string
		remoteTime time.Time
		wantName   string
		wantTime   time.Time
		wantResult SyncResult
	}{
		{
			name:       "remote newer wins",
			remoteTime: t1,
			wantName:   "remote",
			wantTime:   t1,
			wantResult: SyncResult{Pulled: 1, Updated: 1},
		},
		{
			name:       "local newer wins",
			remoteTime: t0.Add(-time.Hour),
			wantName:   "local",
			wantTime:   t0,
			wantResult: SyncResult{Pulled: 1, Kept: 1},
		},
		{
			name:       "tie keeps local",
			remoteTime: t0,
			wantName:   "local",
			wantTime:   t0,
			wantResult: SyncResult{Pulled: 1, Kept: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			local := memoryAdapter(storage.KindLocal, map[string]json.RawMessage{
				storage.KeyTrainings: trainingsJSON(t, &models.Training{ID: "t1", Name: "local", CreatedAt: t0, UpdatedAt: t0}),
			})
			remote := memoryAdapter(storage.KindRemote, map[string]json.RawMessage{
				storage.KeyTrainings: trainingsJSON(t, &models.Training{ID: "t1", Name: "remote", CreatedAt: t0, UpdatedAt: tt.remoteTime}),
			})
			s := newTrainingStore(t, local)

			c, err := New(s, remote, trainingSync(), nil)
			require.NoError(t, err)

			res, err := c.SyncFromCloud(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantResult, *res)

			got, err := s.GetByID(ctx, "t1")
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name)
			assert.True(t, tt.wantTime.Equal(got.UpdatedAt))
			assert.False(t, s.State().LastSync.IsZero())

			// Слияние сохраняется локально только при изменениях
			stored := decodeTrainings(t, mustGet(t, local, storage.KeyTrainings))
			require.Len(t, stored, 1)
			assert.Equal(t, tt.wantName, stored[0].Name)
		})
	}
}

func mustGet(t *testing.T, a storage.Adapter, key string) json.RawMessage {
	t.Helper()
	raw, err := a.Get(context.Background(), key)
	require.NoError(t, err)
	return raw
}

func TestSyncFromCloud_AppendsAndSorts(t *testing.T) {
	ctx := context.Background()
	local := memoryAdapter(storage.KindLocal, map[string]json.RawMessage{
		storage.KeyTrainings: trainingsJSON(t, &models.Training{ID: "old", Name: "Old", CreatedAt: t0}),
	})
	remote := &refreshingAdapter{AdapterMock: memoryAdapter(storage.KindRemote, map[string]json.RawMessage{
		storage.KeyTrainings: trainingsJSON(t, &models.Training{ID: "new", Name: "New", CreatedAt: t1}),
	})}
	s := newTrainingStore(t, local)

	c, err := New(s, remote, trainingSync(), nil)
	require.NoError(t, err)

	res, err := c.SyncFromCloud(ctx)
	require.NoError(t, err)
	assert.Equal(t, SyncResult{Pulled: 1, Added: 1}, *res)
	assert.Equal(t, 1, remote.refreshes)

	stored := decodeTrainings(t, mustGet(t, local, storage.KeyTrainings))
	require.Len(t, stored, 2)
	assert.Equal(t, "new", stored[0].ID)
	assert.Equal(t, "old", stored[1].ID)
}

func TestSyncFromCloud_NoChangeSkipsPersist(t *testing.T) {
	ctx := context.Background()
	item := &models.Training{ID: "t1", Name: "Same", CreatedAt: t0, UpdatedAt: t0}
	local := memoryAdapter(storage.KindLocal, map[string]json.RawMessage{
		storage.KeyTrainings: trainingsJSON(t, item),
	})
	remote := memoryAdapter(storage.KindRemote, map[string]json.RawMessage{
		storage.KeyTrainings: trainingsJSON(t, item),
	})
	s := newTrainingStore(t, local)

	c, err := New(s, remote, trainingSync(), nil)
	require.NoError(t, err)

	res, err := c.SyncFromCloud(ctx)
	require.NoError(t, err)
	assert.False(t, res.Changed())
	assert.Empty(t, local.SetCalls())
}

func TestSyncFromCloud_FailuresLeaveLocalUntouched(t *testing.T) {
	tests := []struct {
		get     func(ctx context.Context, key string) (json.RawMessage, error)
		wantErr error
		name    string
	}{
		{
			name: "remote error",
			get: func(ctx context.Context, key string) (json.RawMessage, error) {
				return nil, storage.ErrNotAuthenticated
			},
			wantErr: storage.ErrNotAuthenticated,
		},
		{
			name: "invalid element",
			get: func(ctx context.Context, key string) (json.RawMessage, error) {
				return json.RawMessage(`[{"id":"t9","name":"ok"},{"id":"","name":"bad"}]`), nil
			},
			wantErr: validation.ErrInvalid,
		},
		{
			name: "not a list",
			get: func(ctx context.Context, key string) (json.RawMessage, error) {
				return json.RawMessage(`{"id":"t9"}`), nil
			},
			wantErr: validation.ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			local := memoryAdapter(storage.KindLocal, map[string]json.RawMessage{
				storage.KeyTrainings: trainingsJSON(t, &models.Training{ID: "t1", Name: "local", CreatedAt: t0}),
			})
			remote := memoryAdapter(storage.KindRemote, nil)
			remote.GetFunc = tt.get
			s := newTrainingStore(t, local)

			c, err := New(s, remote, trainingSync(), nil)
			require.NoError(t, err)

			res, err := c.SyncFromCloud(ctx)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)

			items, err := s.List(ctx)
			require.NoError(t, err)
			require.Len(t, items, 1)
			assert.Equal(t, "t1", items[0].ID)
			assert.Empty(t, local.SetCalls())
		})
	}
}

func TestCoordinator_PullOnList(t *testing.T) {
	ctx := context.Background()
	local := memoryAdapter(storage.KindLocal, nil)
	remote := memoryAdapter(storage.KindRemote, map[string]json.RawMessage{
		storage.KeyTrainings: trainingsJSON(t, &models.Training{ID: "cloud", Name: "From cloud", CreatedAt: t0}),
	})
	s := newTrainingStore(t, local)

	c, err := New(s, remote, trainingSync(), nil)
	require.NoError(t, err)
	c.Start()

	items, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.Eventually(t, func() bool { return len(s.Items()) == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, c.Stop(ctx))

	got, err := s.GetByID(ctx, "cloud")
	require.NoError(t, err)
	assert.Equal(t, "From cloud", got.Name)
	// Слияние не считается локальной правкой и не отправляется обратно
	assert.Empty(t, remote.SetCalls())
}

func TestMerge(t *testing.T) {
	local := []*models.Training{
		{ID: "a", Name: "a-local", UpdatedAt: t1},
		{ID: "b", Name: "b-local", UpdatedAt: t0},
	}
	remote := []*models.Training{
		{ID: "a", Name: "a-remote", UpdatedAt: t0},
		{ID: "b", Name: "b-remote", UpdatedAt: t1},
		{ID: "c", Name: "c-remote", UpdatedAt: t0},
	}

	merged, res := Merge(local, remote, (*models.Training).LastModified)
	assert.Equal(t, SyncResult{Pulled: 3, Added: 1, Updated: 1, Kept: 1}, res)
	require.Len(t, merged, 3)
	assert.Equal(t, "a-local", merged[0].Name)
	assert.Equal(t, "b-remote", merged[1].Name)
	assert.Equal(t, "c-remote", merged[2].Name)
}
