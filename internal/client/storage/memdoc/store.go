// Package memdoc is an in-memory remote.DocumentStore with change
// notification. It backs tests and the "memory" remote backend.
package memdoc

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/iudanet/gymkeeper/internal/client/storage/remote"
)

// Store keeps documents in a map keyed by path.
type Store struct {
	docs     map[string]json.RawMessage
	watchers map[string]map[int]func(json.RawMessage)
	failure  error
	nextID   int
	mu       sync.Mutex
}

var (
	_ remote.DocumentStore = (*Store)(nil)
	_ remote.Watcher       = (*Store)(nil)
)

// New creates an empty store.
func New() *Store {
	return &Store{
		docs:     make(map[string]json.RawMessage),
		watchers: make(map[string]map[int]func(json.RawMessage)),
	}
}

// SetFailure makes every subsequent call return err until reset with nil.
func (s *Store) SetFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

// GetDocument implements remote.DocumentStore.
func (s *Store) GetDocument(ctx context.Context, path string) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return nil, s.failure
	}
	doc, ok := s.docs[path]
	if !ok {
		return nil, remote.ErrDocumentNotFound
	}
	return bytes.Clone(doc), nil
}

// PutDocument implements remote.DocumentStore.
func (s *Store) PutDocument(ctx context.Context, path string, value json.RawMessage) error {
	s.mu.Lock()
	if s.failure != nil {
		s.mu.Unlock()
		return s.failure
	}
	s.docs[path] = bytes.Clone(value)
	fns := s.watchersLocked(path)
	s.mu.Unlock()

	for _, fn := range fns {
		fn(bytes.Clone(value))
	}
	return nil
}

// DeleteDocument implements remote.DocumentStore.
func (s *Store) DeleteDocument(ctx context.Context, path string) error {
	s.mu.Lock()
	if s.failure != nil {
		s.mu.Unlock()
		return s.failure
	}
	_, existed := s.docs[path]
	delete(s.docs, path)
	fns := s.watchersLocked(path)
	s.mu.Unlock()

	if existed {
		for _, fn := range fns {
			fn(nil)
		}
	}
	return nil
}

// WatchDocument implements remote.Watcher. Callbacks run synchronously
// in the writer's goroutine.
func (s *Store) WatchDocument(ctx context.Context, path string, fn func(json.RawMessage)) (func(), error) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	if s.watchers[path] == nil {
		s.watchers[path] = make(map[int]func(json.RawMessage))
	}
	s.watchers[path][id] = fn
	s.mu.Unlock()

	var once sync.Once
	stop := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.watchers[path], id)
			if len(s.watchers[path]) == 0 {
				delete(s.watchers, path)
			}
			s.mu.Unlock()
		})
	}
	context.AfterFunc(ctx, stop)

	return stop, nil
}

// Documents returns a copy of all stored documents.
func (s *Store) Documents() map[string]json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]json.RawMessage, len(s.docs))
	for k, v := range s.docs {
		out[k] = bytes.Clone(v)
	}
	return out
}

func (s *Store) watchersLocked(path string) []func(json.RawMessage) {
	fns := make([]func(json.RawMessage), 0, len(s.watchers[path]))
	for _, fn := range s.watchers[path] {
		fns = append(fns, fn)
	}
	return fns
}
