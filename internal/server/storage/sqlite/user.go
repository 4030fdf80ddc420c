package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/iudanet/gymkeeper/internal/models"
	"github.com/iudanet/gymkeeper/internal/server/storage"
)

const (
	insertUser = `INSERT INTO users (id, username, auth_key_hash, public_salt, created_at, last_login)
VALUES (?, ?, ?, ?, ?, ?)`
	selectUserByName = `SELECT id, username, auth_key_hash, public_salt, created_at, last_login
FROM users WHERE username = ?`
	touchUser = `UPDATE users SET last_login = ? WHERE id = ?`
)

// CreateUser inserts a new account.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	var lastLogin any
	if user.LastLogin != nil {
		lastLogin = user.LastLogin.UTC()
	}

	_, err := s.db.ExecContext(ctx, insertUser,
		user.ID, user.Username, user.AuthKeyHash, user.PublicSalt, user.CreatedAt.UTC(), lastLogin)
	switch {
	case err == nil:
		return nil
	case constraintViolated(err):
		return storage.ErrUserAlreadyExists
	default:
		return fmt.Errorf("failed to insert user %q: %w", user.Username, err)
	}
}

// GetUserByUsername loads the account registered under username.
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var (
		user      models.User
		lastLogin sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, selectUserByName, username).Scan(
		&user.ID, &user.Username, &user.AuthKeyHash, &user.PublicSalt, &user.CreatedAt, &lastLogin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user %q: %w", username, err)
	}

	if lastLogin.Valid {
		ts := lastLogin.Time
		user.LastLogin = &ts
	}
	return &user, nil
}

// UpdateLastLogin records a successful sign-in.
func (s *Storage) UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error {
	res, err := s.db.ExecContext(ctx, touchUser, lastLogin.UTC(), userID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	} else if n == 0 {
		return storage.ErrUserNotFound
	}
	return nil
}

// constraintViolated сообщает о нарушении UNIQUE или PRIMARY KEY
func constraintViolated(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}
