// Package storage defines the persistence contracts of the document server.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/iudanet/gymkeeper/internal/models"
)

//go:generate moq -out storage_mock.go . UserStorage DocumentStorage

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrDocumentNotFound  = errors.New("document not found")
)

// UserStorage хранит учетные записи. Имя пользователя уникально.
type UserStorage interface {
	// CreateUser returns ErrUserAlreadyExists when the username or id is taken.
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByUsername returns ErrUserNotFound for an unknown name.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error
}

// DocumentStorage хранит JSON документы пользователей по ключу.
// Документ целиком заменяется при записи, версия растет на единицу.
type DocumentStorage interface {
	// GetDocument returns ErrDocumentNotFound if the key was never written or was deleted
	GetDocument(ctx context.Context, userID, key string) (*models.Document, error)

	// PutDocument creates or replaces the document and returns the stored version
	PutDocument(ctx context.Context, userID, key string, value []byte) (*models.Document, error)

	// DeleteDocument returns ErrDocumentNotFound if there is nothing to delete
	DeleteDocument(ctx context.Context, userID, key string) error
}
