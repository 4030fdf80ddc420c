// Package cli implements the gymkeeper commands on top of the wired
// client application.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/iudanet/gymkeeper/internal/catalog"
	"github.com/iudanet/gymkeeper/internal/client/app"
	"github.com/iudanet/gymkeeper/internal/client/auth"
	"github.com/iudanet/gymkeeper/internal/client/iocli"
	"github.com/iudanet/gymkeeper/internal/client/storage"
	"github.com/iudanet/gymkeeper/internal/client/store"
	"github.com/iudanet/gymkeeper/internal/client/workout"
)

//go:generate moq -out deps_mock.go . Authenticator Identity Syncer CatalogLoader

// PasswordEnv переменная окружения с мастер-паролем
const PasswordEnv = "GYMKEEPER_PASSWORD"

// ErrNotAuthenticated is returned by commands that need a signed-in user.
var ErrNotAuthenticated = errors.New("not authenticated. Please run 'gymkeeper login' first")

// Authenticator talks to the server auth endpoints.
type Authenticator interface {
	Register(ctx context.Context, username, masterPassword string) (*auth.RegisterResult, error)
	Login(ctx context.Context, username, masterPassword string) (*storage.AuthData, error)
	Logout(ctx context.Context) error
}

// Identity exposes the signed-in user.
type Identity interface {
	Current() *storage.AuthData
}

// Syncer controls storage mode and cloud sync.
type Syncer interface {
	CloudSyncEnabled() bool
	StartSync() bool
	SyncNow(ctx context.Context) (*app.SyncReport, error)
	SwitchStorage(ctx context.Context, kind storage.Kind) error
	StorageKind() storage.Kind
	PendingWrites() int
	Subscribe(fn func(ev store.Event)) (cancel func())
}

// CatalogLoader returns the exercise catalogue.
type CatalogLoader interface {
	Initialize(ctx context.Context) (*catalog.Catalog, error)
}

// Passwords are the non-interactive password sources.
type Passwords struct {
	FromFile string
	FromArgs string
}

// Cli runs commands against the application services.
type Cli struct {
	io        iocli.IO
	auth      Authenticator
	identity  Identity
	workout   workout.Service
	catalog   CatalogLoader
	syncer    Syncer
	now       func() time.Time
	passwords Passwords
}

// New creates a Cli over a wired application.
func New(io iocli.IO, a *app.App, passwords Passwords) *Cli {
	return &Cli{
		io:        io,
		auth:      a.Auth,
		identity:  a.Session,
		workout:   a.Workout,
		catalog:   a.Catalog,
		syncer:    a,
		now:       time.Now,
		passwords: passwords,
	}
}

// requireAuth returns the current auth data or ErrNotAuthenticated.
func (c *Cli) requireAuth() (*storage.AuthData, error) {
	data := c.identity.Current()
	if data == nil {
		return nil, ErrNotAuthenticated
	}
	return data, nil
}

// getMasterPassword retrieves the master password with priority:
// 1. Environment variable GYMKEEPER_PASSWORD
// 2. File from --password-file
// 3. --password parameter
// 4. Interactive prompt (fallback)
func (c *Cli) getMasterPassword(prompt string) (string, error) {
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	if c.passwords.FromFile != "" {
		content, err := os.ReadFile(c.passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", errors.New("password file is empty")
		}
		return password, nil
	}

	if c.passwords.FromArgs != "" {
		return c.passwords.FromArgs, nil
	}

	password, err := c.io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", errors.New("password cannot be empty")
	}
	return password, nil
}

// interactivePassword reports whether the password comes from a prompt.
func (c *Cli) interactivePassword() bool {
	return os.Getenv(PasswordEnv) == "" && c.passwords.FromFile == "" && c.passwords.FromArgs == ""
}
