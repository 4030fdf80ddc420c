// Package persistence is the storage façade used by entity stores: it
// owns one adapter at a time, can swap it at runtime and manages
// realtime subscriptions uniformly for every adapter kind.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/gymkeeper/internal/client/events"
	"github.com/iudanet/gymkeeper/internal/client/storage"
)

// Adapters holds the concrete adapters the factory can hand out.
type Adapters struct {
	Local  storage.Adapter
	Remote storage.RealtimeAdapter
}

// subscriptionCloser is implemented by adapters holding subscriptions
// that were not created through the Service.
type subscriptionCloser interface {
	CloseSubscriptions()
}

// NewAdapter returns the adapter for kind.
func NewAdapter(kind storage.Kind, adapters Adapters) (storage.Adapter, error) {
	switch kind {
	case storage.KindLocal:
		if adapters.Local == nil {
			return nil, errors.New("local adapter is not configured")
		}
		return adapters.Local, nil
	case storage.KindRemote:
		if adapters.Remote == nil {
			return nil, errors.New("remote adapter is not configured")
		}
		return adapters.Remote, nil
	default:
		return nil, fmt.Errorf("%w: %s", storage.ErrUnknownKind, kind)
	}
}

// Service is the storage façade.
type Service struct {
	adapter  storage.Adapter
	bus      *events.Bus
	logger   *slog.Logger
	realtime map[string]storage.Unsubscribe
	adapters Adapters
	mu       sync.RWMutex
}

// New creates a service with the adapter of kind active.
func New(kind storage.Kind, adapters Adapters, bus *events.Bus, logger *slog.Logger) (*Service, error) {
	adapter, err := NewAdapter(kind, adapters)
	if err != nil {
		return nil, err
	}
	if bus == nil {
		bus = events.New()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		adapter:  adapter,
		adapters: adapters,
		bus:      bus,
		logger:   logger,
		realtime: make(map[string]storage.Unsubscribe),
	}, nil
}

func (s *Service) current() storage.Adapter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.adapter
}

// Kind reports the active adapter kind.
func (s *Service) Kind() storage.Kind {
	return s.current().Kind()
}

// IsRemoteAdapter reports whether the active adapter is the remote one.
func (s *Service) IsRemoteAdapter() bool {
	return s.Kind() == storage.KindRemote
}

// Load returns the document stored under key or nil.
func (s *Service) Load(ctx context.Context, key string) (json.RawMessage, error) {
	value, err := s.current().Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %q: %w", key, err)
	}
	return value, nil
}

// Save stores value under key and publishes storage:{key}:updated.
func (s *Service) Save(ctx context.Context, key string, value any) error {
	if err := s.current().Set(ctx, key, value); err != nil {
		return fmt.Errorf("failed to save %q: %w", key, err)
	}

	if s.bus.Subscribers(events.UpdatedTopic(key)) > 0 {
		// Значение уже сериализовалось адаптером, ошибки здесь не ожидаются
		raw, _ := json.Marshal(value)
		s.bus.Publish(events.Event{Topic: events.UpdatedTopic(key), Key: key, Value: raw})
	}
	return nil
}

// Delete removes key and publishes storage:{key}:deleted.
func (s *Service) Delete(ctx context.Context, key string) error {
	if err := s.current().Remove(ctx, key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	s.bus.Publish(events.Event{Topic: events.DeletedTopic(key), Key: key, Deleted: true})
	return nil
}

// Exists reports whether key holds a document.
func (s *Service) Exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.current().Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check %q: %w", key, err)
	}
	return ok, nil
}

// Clear removes every key of the active adapter.
func (s *Service) Clear(ctx context.Context) error {
	if err := s.current().Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return nil
}

// SwitchAdapter makes the adapter of kind active. Realtime subscriptions
// of the previous adapter are cancelled; switching to the active kind
// keeps them.
func (s *Service) SwitchAdapter(ctx context.Context, kind storage.Kind) error {
	adapter, err := NewAdapter(kind, s.adapters)
	if err != nil {
		return err
	}
	if s.Kind() == kind {
		return nil
	}

	s.DisableRealtimeSync()

	s.mu.Lock()
	prev := s.adapter.Kind()
	s.adapter = adapter
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "storage adapter switched", "from", prev, "to", kind)
	return nil
}

// EnableRealtimeSync subscribes fn to remote changes of key. It returns
// nil, nil when the active adapter has no realtime support. Each change
// is also published on the bus.
func (s *Service) EnableRealtimeSync(ctx context.Context, key string, fn func(value json.RawMessage)) (storage.Unsubscribe, error) {
	rt, ok := s.current().(storage.RealtimeAdapter)
	if !ok {
		return nil, nil
	}

	s.mu.Lock()
	if prev, exists := s.realtime[key]; exists {
		prev()
		delete(s.realtime, key)
	}
	s.mu.Unlock()

	unsubscribe, err := rt.SetupRealtimeSync(ctx, key, func(value json.RawMessage) {
		if value == nil {
			s.bus.Publish(events.Event{Topic: events.DeletedTopic(key), Key: key, Deleted: true})
		} else {
			s.bus.Publish(events.Event{Topic: events.UpdatedTopic(key), Key: key, Value: value})
		}
		fn(value)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enable realtime sync for %q: %w", key, err)
	}

	// Отписка может прийти и от вызывающего, и от DisableRealtimeSync
	var once sync.Once
	release := func() { once.Do(unsubscribe) }

	s.mu.Lock()
	s.realtime[key] = release
	s.mu.Unlock()

	return release, nil
}

// DisableRealtimeSync cancels every subscription made through the service.
func (s *Service) DisableRealtimeSync() {
	s.mu.Lock()
	subs := s.realtime
	s.realtime = make(map[string]storage.Unsubscribe)
	s.mu.Unlock()

	for _, unsubscribe := range subs {
		unsubscribe()
	}
}

// Cleanup releases all subscriptions, including ones the remote adapter
// holds for other callers.
func (s *Service) Cleanup(ctx context.Context) error {
	s.DisableRealtimeSync()
	if closer, ok := s.adapters.Remote.(subscriptionCloser); ok {
		closer.CloseSubscriptions()
	}
	s.logger.DebugContext(ctx, "storage service cleaned up")
	return nil
}

// OnUpdate subscribes fn to storage:{key}:updated.
func (s *Service) OnUpdate(key string, fn func(value json.RawMessage)) (cancel func()) {
	return s.bus.Subscribe(events.UpdatedTopic(key), func(ev events.Event) {
		fn(ev.Value)
	})
}

// OnDelete subscribes fn to storage:{key}:deleted.
func (s *Service) OnDelete(key string, fn func()) (cancel func()) {
	return s.bus.Subscribe(events.DeletedTopic(key), func(events.Event) {
		fn()
	})
}
