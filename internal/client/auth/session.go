package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/gymkeeper/internal/client/storage"
	"github.com/iudanet/gymkeeper/internal/client/storage/remote"
)

// Session is the signed-in identity of this device. It restores the
// identity from the auth storage and notifies listeners on changes; the
// remote adapter uses it as its identity provider.
type Session struct {
	storage   storage.AuthStorage
	logger    *slog.Logger
	data      *storage.AuthData
	resolved  chan struct{}
	listeners map[int]func(userID string)
	now       func() time.Time
	nextID    int
	once      sync.Once
	mu        sync.RWMutex
}

var _ remote.IdentityProvider = (*Session)(nil)

// NewSession creates an unresolved session. Call Restore or SignIn to
// resolve it.
func NewSession(authStorage storage.AuthStorage, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Session{
		storage:   authStorage,
		logger:    logger,
		resolved:  make(chan struct{}),
		listeners: make(map[int]func(string)),
		now:       time.Now,
	}
}

// Restore loads the stored identity. Missing or expired auth data
// resolves the session as signed out.
func (s *Session) Restore(ctx context.Context) error {
	data, err := s.storage.GetAuth(ctx)
	switch {
	case errors.Is(err, storage.ErrAuthNotFound):
		data = nil
	case err != nil:
		s.resolve()
		return fmt.Errorf("failed to restore session: %w", err)
	case data.Expired(s.now()):
		s.logger.InfoContext(ctx, "stored access token expired", "username", data.Username)
		data = nil
	}

	s.set(data)
	s.resolve()
	return nil
}

// SignIn stores data and makes its user the current identity.
func (s *Session) SignIn(ctx context.Context, data *storage.AuthData) error {
	if data == nil || data.UserID == "" {
		return errors.New("auth data without user id")
	}
	if err := s.storage.SaveAuth(ctx, data); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}

	s.set(data)
	s.resolve()
	s.logger.InfoContext(ctx, "signed in", "username", data.Username, "user_id", data.UserID)
	return nil
}

// SignOut removes the stored auth data and clears the identity.
func (s *Session) SignOut(ctx context.Context) error {
	if err := s.storage.DeleteAuth(ctx); err != nil {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}

	s.set(nil)
	s.resolve()
	s.logger.InfoContext(ctx, "signed out")
	return nil
}

func (s *Session) resolve() {
	s.once.Do(func() { close(s.resolved) })
}

// set заменяет данные и уведомляет слушателей, если сменился пользователь
func (s *Session) set(data *storage.AuthData) {
	if data != nil {
		copied := *data
		data = &copied
	}

	s.mu.Lock()
	prev := userID(s.data)
	s.data = data
	next := userID(data)
	fns := make([]func(string), 0, len(s.listeners))
	if prev != next {
		for _, fn := range s.listeners {
			fns = append(fns, fn)
		}
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
}

func userID(data *storage.AuthData) string {
	if data == nil {
		return ""
	}
	return data.UserID
}

// WaitIdentity implements remote.IdentityProvider.
func (s *Session) WaitIdentity(ctx context.Context) (string, error) {
	select {
	case <-s.resolved:
		return s.UserID(), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// UserID implements remote.IdentityProvider.
func (s *Session) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return userID(s.data)
}

// OnChange implements remote.IdentityProvider.
func (s *Session) OnChange(fn func(userID string)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Current returns a copy of the signed-in auth data or nil.
func (s *Session) Current() *storage.AuthData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil
	}
	copied := *s.data
	return &copied
}
