// Package store holds the generic entity store: the authoritative
// in-memory collection of one entity kind, persisted through the storage
// façade after every mutation.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/gymkeeper/internal/client/storage"
	"github.com/iudanet/gymkeeper/internal/validation"
)

// ErrItemNotFound is returned for operations addressing an absent id.
var ErrItemNotFound = errors.New("item not found")

// Entity is a persisted record with a unique string id.
type Entity[T any] interface {
	GetID() string
	SetID(id string)
	Clone() T
}

// CreatedStamper is implemented by entities with a creation time.
type CreatedStamper interface {
	SetCreatedAt(ts time.Time)
}

// UpdatedStamper is implemented by entities with a modification time.
type UpdatedStamper interface {
	SetUpdatedAt(ts time.Time)
}

// Backend is the part of the storage façade the store uses.
type Backend interface {
	Load(ctx context.Context, key string) (json.RawMessage, error)
	Save(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	SwitchAdapter(ctx context.Context, kind storage.Kind) error
	EnableRealtimeSync(ctx context.Context, key string, fn func(value json.RawMessage)) (storage.Unsubscribe, error)
}

// Config describes one entity collection.
type Config[T any] struct {
	Validate     func(item T) error // Validate схема сущности, по умолчанию validation.Struct
	Less         func(a, b T) bool  // Less порядок выдачи List
	NewID        func() string      // NewID генератор идентификаторов, по умолчанию UUID
	Now          func() time.Time   // Now источник времени для меток
	Name         string             // Name ключ коллекции в хранилище
	StampCreated bool               // StampCreated проставлять createdAt при создании
	StampUpdated bool               // StampUpdated проставлять updatedAt при создании и обновлении
}

// State is a snapshot of the store status.
type State struct {
	LastSync time.Time // время последнего применения удаленных данных
	Error    string    // последняя ошибка, пусто если ее нет
	Items    int
	Loaded   bool
	Loading  bool
}

// Store owns the collection of one entity kind. All mutations go through
// it; the sync coordinator merges remote data through Reconcile.
type Store[T Entity[T]] struct {
	backend     Backend
	logger      *slog.Logger
	loadDone    chan struct{}
	unsubscribe storage.Unsubscribe
	listeners   map[int]func(Event)
	lastSync    time.Time
	cfg         Config[T]
	lastErr     string
	items       []T
	nextID      int
	mu          sync.Mutex
	persistMu   sync.Mutex
	loaded      bool
	loading     bool
}

// New creates an empty, unloaded store.
func New[T Entity[T]](backend Backend, cfg Config[T], logger *slog.Logger) *Store[T] {
	if cfg.Validate == nil {
		cfg.Validate = func(item T) error { return validation.Struct(item) }
	}
	if cfg.NewID == nil {
		cfg.NewID = uuid.NewString
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store[T]{
		backend:   backend,
		cfg:       cfg,
		logger:    logger.With("store", cfg.Name),
		listeners: make(map[int]func(Event)),
	}
}

// Name returns the storage key of the collection.
func (s *Store[T]) Name() string {
	return s.cfg.Name
}

// State returns the current status.
func (s *Store[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Items:    len(s.items),
		Loaded:   s.loaded,
		Loading:  s.loading,
		Error:    s.lastErr,
		LastSync: s.lastSync,
	}
}

// Items returns a deep copy of the collection in storage order.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store[T]) snapshotLocked() []T {
	out := make([]T, len(s.items))
	for i, item := range s.items {
		out[i] = item.Clone()
	}
	return out
}

func (s *Store[T]) indexLocked(id string) int {
	return slices.IndexFunc(s.items, func(item T) bool { return item.GetID() == id })
}

// beginLoadLocked marks a load as started and clears the collection.
func (s *Store[T]) beginLoadLocked() chan struct{} {
	s.loading = true
	s.items = nil
	s.loadDone = make(chan struct{})
	return s.loadDone
}

// LoadItems reloads the collection from storage. It is a no-op while
// another load is running. The store is marked loaded even when the load
// fails; the failure is recorded in State().Error.
func (s *Store[T]) LoadItems(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		return nil
	}
	done := s.beginLoadLocked()
	s.mu.Unlock()

	return s.load(ctx, done)
}

func (s *Store[T]) load(ctx context.Context, done chan struct{}) error {
	raw, err := s.backend.Load(ctx, s.cfg.Name)
	var items []T
	if err == nil {
		items, err = s.decode(raw)
	}

	s.mu.Lock()
	s.loading = false
	s.loaded = true
	if err != nil {
		s.items = nil
		s.lastErr = err.Error()
	} else {
		s.items = items
		s.lastErr = ""
	}
	s.mu.Unlock()
	close(done)

	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load items", "error", err)
		return fmt.Errorf("failed to load %s: %w", s.cfg.Name, err)
	}

	s.logger.DebugContext(ctx, "items loaded", "count", len(items))
	s.enableRealtime(ctx)
	s.emit(Event{Action: ActionLoadItems})
	return nil
}

// decode parses a stored collection. Any invalid element rejects the
// whole value.
func (s *Store[T]) decode(raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %s is not a list: %w", validation.ErrInvalid, s.cfg.Name, err)
	}
	for i, item := range items {
		if err := s.cfg.Validate(item); err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", s.cfg.Name, i, err)
		}
	}
	return items, nil
}

// EnsureLoaded loads the collection once. Concurrent callers wait for the
// load in flight. A failed load is not returned here; it is recorded in
// State().Error and the collection stays empty.
func (s *Store[T]) EnsureLoaded(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		done := s.loadDone
		s.mu.Unlock()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if s.loaded {
		s.mu.Unlock()
		return nil
	}
	done := s.beginLoadLocked()
	s.mu.Unlock()

	_ = s.load(ctx, done)
	return nil
}

func (s *Store[T]) enableRealtime(ctx context.Context) {
	unsubscribe, err := s.backend.EnableRealtimeSync(ctx, s.cfg.Name, s.applyRealtime)
	if err != nil {
		s.logger.WarnContext(ctx, "realtime sync unavailable", "error", err)
		return
	}
	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.mu.Unlock()
}

// applyRealtime replaces the collection with a pushed remote value.
func (s *Store[T]) applyRealtime(raw json.RawMessage) {
	items, err := s.decode(raw)
	if err != nil {
		s.logger.Warn("ignoring invalid realtime update", "error", err)
		return
	}

	s.mu.Lock()
	s.items = items
	s.lastSync = s.cfg.Now()
	s.mu.Unlock()

	s.emit(Event{Action: ActionRealtimeUpdate})
}

// Create assigns an id if absent, stamps the configured timestamps,
// validates and saves item. The stored copy is returned.
func (s *Store[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	if err := s.EnsureLoaded(ctx); err != nil {
		return zero, err
	}

	item = item.Clone()
	if item.GetID() == "" {
		item.SetID(s.cfg.NewID())
	}
	now := s.cfg.Now()
	if c, ok := any(item).(CreatedStamper); ok && s.cfg.StampCreated {
		c.SetCreatedAt(now)
	}
	if u, ok := any(item).(UpdatedStamper); ok && s.cfg.StampUpdated {
		u.SetUpdatedAt(now)
	}

	if err := s.cfg.Validate(item); err != nil {
		return zero, err
	}
	if err := s.saveItem(ctx, item); err != nil {
		return zero, err
	}

	s.emit(Event{Action: ActionCreateItem, ItemID: item.GetID()})
	return item.Clone(), nil
}

// Update refreshes updatedAt, re-validates and saves item. An unknown id
// is appended.
func (s *Store[T]) Update(ctx context.Context, item T) (T, error) {
	var zero T
	if err := s.EnsureLoaded(ctx); err != nil {
		return zero, err
	}

	item = item.Clone()
	if u, ok := any(item).(UpdatedStamper); ok && s.cfg.StampUpdated {
		u.SetUpdatedAt(s.cfg.Now())
	}

	if err := s.cfg.Validate(item); err != nil {
		return zero, err
	}
	if err := s.saveItem(ctx, item); err != nil {
		return zero, err
	}

	s.emit(Event{Action: ActionUpdateItem, ItemID: item.GetID()})
	return item.Clone(), nil
}

// saveItem replaces or appends item and persists the collection. The
// in-memory change stays even if persisting fails.
func (s *Store[T]) saveItem(ctx context.Context, item T) error {
	s.mu.Lock()
	if idx := s.indexLocked(item.GetID()); idx >= 0 {
		s.items[idx] = item
	} else {
		s.items = append(s.items, item)
	}
	s.mu.Unlock()

	return s.persistItems(ctx)
}

// persistItems writes the latest snapshot. Writes are serialized so the
// last one always carries the newest state.
func (s *Store[T]) persistItems(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	err := s.backend.Save(ctx, s.cfg.Name, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err.Error()
		s.logger.ErrorContext(ctx, "failed to persist items", "error", err)
		return fmt.Errorf("failed to persist %s: %w", s.cfg.Name, err)
	}
	s.lastErr = ""
	return nil
}

// Delete removes the item with id.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if err := s.EnsureLoaded(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s %q", ErrItemNotFound, s.cfg.Name, id)
	}
	s.items = slices.Delete(s.items, idx, idx+1)
	s.mu.Unlock()

	if err := s.persistItems(ctx); err != nil {
		return err
	}

	s.emit(Event{Action: ActionDeleteItem, ItemID: id})
	return nil
}

// ClearAll empties the collection and deletes it from storage.
func (s *Store[T]) ClearAll(ctx context.Context) error {
	if err := s.EnsureLoaded(ctx); err != nil {
		return err
	}

	s.persistMu.Lock()
	s.mu.Lock()
	s.items = nil
	s.mu.Unlock()
	err := s.backend.Delete(ctx, s.cfg.Name)
	s.persistMu.Unlock()

	if err != nil {
		s.mu.Lock()
		s.lastErr = err.Error()
		s.mu.Unlock()
		return fmt.Errorf("failed to clear %s: %w", s.cfg.Name, err)
	}

	s.emit(Event{Action: ActionClearAll})
	return nil
}

// SwitchStorageMode activates the adapter of kind and reloads.
func (s *Store[T]) SwitchStorageMode(ctx context.Context, kind storage.Kind) error {
	if err := s.backend.SwitchAdapter(ctx, kind); err != nil {
		return fmt.Errorf("failed to switch %s to %s: %w", s.cfg.Name, kind, err)
	}

	s.mu.Lock()
	if s.loading {
		done := s.loadDone
		s.mu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
		s.mu.Lock()
	}
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.loaded = false
	s.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}

	if err := s.LoadItems(ctx); err != nil {
		return err
	}

	s.emit(Event{Action: ActionSwitchStorageMode})
	return nil
}

// GetByID returns a copy of the item with id.
func (s *Store[T]) GetByID(ctx context.Context, id string) (T, error) {
	var zero T
	if err := s.EnsureLoaded(ctx); err != nil {
		return zero, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return zero, fmt.Errorf("%w: %s %q", ErrItemNotFound, s.cfg.Name, id)
	}
	return s.items[idx].Clone(), nil
}

// List returns the collection sorted with Config.Less.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	if err := s.EnsureLoaded(ctx); err != nil {
		return nil, err
	}

	items := s.Items()
	if s.cfg.Less != nil {
		slices.SortStableFunc(items, compareFunc(s.cfg.Less))
	}

	s.emit(Event{Action: ActionListItems})
	return items, nil
}

// Reconcile lets the sync coordinator merge remote data. fn receives a
// copy of the collection and returns the new one and whether anything
// changed; only a changed result is stored and persisted. fn runs under
// the store lock and must not call back into the store.
func (s *Store[T]) Reconcile(ctx context.Context, fn func(items []T) ([]T, bool)) (bool, error) {
	if err := s.EnsureLoaded(ctx); err != nil {
		return false, err
	}

	s.mu.Lock()
	merged, changed := fn(s.snapshotLocked())
	s.lastSync = s.cfg.Now()
	if !changed {
		s.mu.Unlock()
		return false, nil
	}
	s.items = merged
	s.mu.Unlock()

	if err := s.persistItems(ctx); err != nil {
		return true, err
	}

	s.emit(Event{Action: ActionMerge})
	return true, nil
}

// Close cancels the realtime subscription of the store.
func (s *Store[T]) Close() {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()
	if unsubscribe != nil {
		unsubscribe()
	}
}

// compareFunc adapts a less function to slices.SortFunc.
func compareFunc[T any](less func(a, b T) bool) func(a, b T) int {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}
