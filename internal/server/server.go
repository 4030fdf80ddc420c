// Package server assembles the document server: routes, middleware and
// graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/gymkeeper/internal/config"
	"github.com/iudanet/gymkeeper/internal/server/handlers"
	"github.com/iudanet/gymkeeper/internal/server/jwt"
	"github.com/iudanet/gymkeeper/internal/server/middleware"
	"github.com/iudanet/gymkeeper/internal/server/storage"
)

// Store is the persistence the server needs.
type Store interface {
	storage.UserStorage
	storage.DocumentStorage
	handlers.Pinger
}

// Server is the HTTP document server.
type Server struct {
	http     *http.Server
	logger   *slog.Logger
	limiters []*middleware.RateLimiter
	timeout  time.Duration
}

// New builds the server for cfg over store.
func New(cfg *config.Server, store Store, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{logger: logger, timeout: cfg.ShutdownTimeout}
	if s.timeout <= 0 {
		s.timeout = 10 * time.Second
	}
	s.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           s.routes(cfg, store, version),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the root handler, mostly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) routes(cfg *config.Server, store Store, version string) http.Handler {
	tokens := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Expiration)

	authHandler := handlers.NewAuthHandler(s.logger, store, tokens)
	docHandler := handlers.NewDocumentHandler(s.logger, store, cfg.MaxDocumentBytes)
	healthHandler := handlers.NewHealthHandler(s.logger, store, version)

	generalLimiter := middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimit.Requests, cfg.AuthRateLimit.Window)
	s.limiters = append(s.limiters, generalLimiter, authLimiter)

	// Подбор пароля ограничивается строже остальных запросов
	authLimit := middleware.RateLimit(authLimiter, s.logger)
	requireAuth := middleware.Auth(s.logger, tokens)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("POST /api/v1/auth/register", authLimit(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/v1/auth/login", authLimit(http.HandlerFunc(authHandler.Login)))
	mux.HandleFunc("GET /api/v1/auth/salt/{username}", authHandler.GetSalt)
	mux.Handle("GET /api/v1/users/{userID}/storage/{key}", requireAuth(http.HandlerFunc(docHandler.Get)))
	mux.Handle("PUT /api/v1/users/{userID}/storage/{key}", requireAuth(http.HandlerFunc(docHandler.Put)))
	mux.Handle("DELETE /api/v1/users/{userID}/storage/{key}", requireAuth(http.HandlerFunc(docHandler.Delete)))

	return middleware.Chain(mux,
		middleware.Recovery(s.logger),
		middleware.Logging(s.logger, "/health"),
		middleware.RateLimit(generalLimiter, s.logger),
	)
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "address", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.stopLimiters()
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	defer s.stopLimiters()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return <-errCh
}

// Close releases background resources without serving.
func (s *Server) Close() {
	s.stopLimiters()
}

func (s *Server) stopLimiters() {
	for _, l := range s.limiters {
		l.Stop()
	}
}
