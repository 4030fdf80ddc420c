// Package sync bridges an entity store to the remote storage: it pushes the
// collection after local mutations (debounced) and merges the remote
// collection back with last-writer-wins.
package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	stdsync "sync"
	"sync/atomic"
	"time"

	"github.com/iudanet/gymkeeper/internal/client/storage"
	"github.com/iudanet/gymkeeper/internal/client/store"
	"github.com/iudanet/gymkeeper/internal/validation"
)

const (
	// DefaultDebounce тихий период перед отправкой коллекции
	DefaultDebounce = 2 * time.Second
	// DefaultTimeout таймаут одной сетевой операции
	DefaultTimeout = 15 * time.Second
)

// ErrStopped is returned by operations on a stopped coordinator.
var ErrStopped = errors.New("sync coordinator stopped")

// Source is the part of the entity store the coordinator uses.
type Source[T any] interface {
	Name() string
	Items() []T
	Subscribe(fn func(ev store.Event)) (cancel func())
	Reconcile(ctx context.Context, fn func(items []T) ([]T, bool)) (bool, error)
}

// Refresher is implemented by remote adapters that can bypass their read cache.
type Refresher interface {
	Refresh(ctx context.Context, key string) (json.RawMessage, error)
}

// Config describes the sync policy of one collection.
type Config[T any] struct {
	Timestamp   func(item T) time.Time // Timestamp время для разрешения конфликтов
	Less        func(a, b T) bool      // Less порядок коллекции после слияния
	Validate    func(item T) error     // Validate схема удаленных записей, по умолчанию validation.Struct
	StorageName string                 // StorageName ключ коллекции в удаленном хранилище
	PushOn      []store.Action         // PushOn действия, после которых коллекция отправляется
	PullOn      []store.Action         // PullOn действия, запускающие фоновое слияние
	Debounce    time.Duration
	Timeout     time.Duration
}

// Coordinator syncs one store with the remote adapter.
type Coordinator[T store.Entity[T]] struct {
	source  Source[T]
	remote  storage.Adapter
	logger  *slog.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	unsub   func()
	timer   *time.Timer
	pending []T
	cfg     Config[T]
	pulls   stdsync.WaitGroup
	gen     uint64
	mu      stdsync.Mutex
	pushMu  stdsync.Mutex
	pulling atomic.Bool
	started bool
	stopped bool
}

// New creates a coordinator. It does nothing until Start.
func New[T store.Entity[T]](source Source[T], remote storage.Adapter, cfg Config[T], logger *slog.Logger) (*Coordinator[T], error) {
	if cfg.Timestamp == nil {
		return nil, errors.New("timestamp func is required")
	}
	if cfg.StorageName == "" {
		cfg.StorageName = source.Name()
	}
	if cfg.Validate == nil {
		cfg.Validate = func(item T) error { return validation.Struct(item) }
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator[T]{
		source: source,
		remote: remote,
		cfg:    cfg,
		logger: logger.With("sync", cfg.StorageName),
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Start subscribes to store events. Calling it again is a no-op.
func (c *Coordinator[T]) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started || c.stopped {
		return
	}
	c.started = true
	c.unsub = c.source.Subscribe(c.handle)
}

func (c *Coordinator[T]) handle(ev store.Event) {
	if slices.Contains(c.cfg.PushOn, ev.Action) {
		c.schedulePush()
	}
	if slices.Contains(c.cfg.PullOn, ev.Action) {
		c.pullAsync()
	}
}

// schedulePush captures the collection and (re)arms the debounce timer.
func (c *Coordinator[T]) schedulePush() {
	snapshot := c.source.Items()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}

	c.gen++
	gen := c.gen
	c.pending = snapshot
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.cfg.Debounce, func() { c.firePush(gen) })
}

func (c *Coordinator[T]) firePush(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.pending == nil {
		// Таймер уже перезапущен или отправка выполнена
		c.mu.Unlock()
		return
	}
	items := c.pending
	c.pending = nil
	c.timer = nil
	c.mu.Unlock()

	_ = c.push(c.ctx, items)
}

// takePending cancels the armed timer and returns the captured snapshot.
func (c *Coordinator[T]) takePending() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	items := c.pending
	c.pending = nil
	return items
}

// push writes the whole collection. A failure is logged and returned; it
// is not retried.
func (c *Coordinator[T]) push(ctx context.Context, items []T) error {
	c.pushMu.Lock()
	defer c.pushMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	if items == nil {
		items = []T{}
	}
	if err := c.remote.Set(ctx, c.cfg.StorageName, items); err != nil {
		c.logger.WarnContext(ctx, "push failed", "count", len(items), "error", err)
		return fmt.Errorf("failed to push %s: %w", c.cfg.StorageName, err)
	}

	c.logger.DebugContext(ctx, "collection pushed", "count", len(items))
	return nil
}

// PushNow cancels a pending debounced push and writes the current
// collection immediately.
func (c *Coordinator[T]) PushNow(ctx context.Context) error {
	if c.isStopped() {
		return ErrStopped
	}
	c.takePending()
	return c.push(ctx, c.source.Items())
}

// pullAsync runs SyncFromCloud in the background. A pull already in
// flight absorbs the request.
func (c *Coordinator[T]) pullAsync() {
	c.mu.Lock()
	if c.stopped || !c.pulling.CompareAndSwap(false, true) {
		c.mu.Unlock()
		return
	}
	c.pulls.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.pulls.Done()
		defer c.pulling.Store(false)
		_, _ = c.SyncFromCloud(c.ctx)
	}()
}

// SyncFromCloud fetches the remote collection and merges it into the store.
// On any failure the local collection is left untouched.
func (c *Coordinator[T]) SyncFromCloud(ctx context.Context) (*SyncResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	raw, err := c.fetch(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "pull failed", "error", err)
		return nil, fmt.Errorf("failed to pull %s: %w", c.cfg.StorageName, err)
	}

	remote, err := c.decode(raw)
	if err != nil {
		c.logger.WarnContext(ctx, "ignoring invalid remote collection", "error", err)
		return nil, err
	}

	var res SyncResult
	_, err = c.source.Reconcile(ctx, func(local []T) ([]T, bool) {
		var merged []T
		merged, res = Merge(local, remote, c.cfg.Timestamp)
		if !res.Changed() {
			return local, false
		}
		sortItems(merged, c.cfg.Less)
		return merged, true
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to persist merged collection", "error", err)
		return &res, err
	}

	c.logger.InfoContext(ctx, "pull completed",
		"pulled", res.Pulled,
		"added", res.Added,
		"updated", res.Updated,
		"kept", res.Kept)
	return &res, nil
}

func (c *Coordinator[T]) fetch(ctx context.Context) (json.RawMessage, error) {
	if r, ok := c.remote.(Refresher); ok {
		return r.Refresh(ctx, c.cfg.StorageName)
	}
	return c.remote.Get(ctx, c.cfg.StorageName)
}

// decode parses and validates the remote value; one invalid element
// rejects it.
func (c *Coordinator[T]) decode(raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: remote %s is not a list: %w", validation.ErrInvalid, c.cfg.StorageName, err)
	}
	for i, item := range items {
		if err := c.cfg.Validate(item); err != nil {
			return nil, fmt.Errorf("remote %s[%d]: %w", c.cfg.StorageName, i, err)
		}
	}
	return items, nil
}

func (c *Coordinator[T]) isStopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}

// Stop unsubscribes from the store, flushes a pending push and waits for
// background pulls. ctx bounds the wait.
func (c *Coordinator[T]) Stop(ctx context.Context) error {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return nil
	}
	c.stopped = true
	unsub := c.unsub
	c.unsub = nil
	c.mu.Unlock()

	if unsub != nil {
		unsub()
	}

	var err error
	if items := c.takePending(); items != nil {
		err = c.push(ctx, items)
	}

	done := make(chan struct{})
	go func() {
		c.pulls.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		err = errors.Join(err, ctx.Err())
	}

	c.cancel()
	return err
}
