package remote

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

//go:generate moq -out document_mock.go . DocumentStore IdentityProvider

var (
	// ErrDocumentNotFound is returned by a DocumentStore for an absent path
	ErrDocumentNotFound = errors.New("document not found")

	// ErrOffline is returned by Refresh while the adapter is offline
	ErrOffline = errors.New("remote storage is offline")
)

// DocumentStore is the remote medium: JSON documents addressed by path.
type DocumentStore interface {
	// GetDocument returns ErrDocumentNotFound if nothing is stored at path
	GetDocument(ctx context.Context, path string) (json.RawMessage, error)
	PutDocument(ctx context.Context, path string, value json.RawMessage) error
	// DeleteDocument of an absent path is not an error
	DeleteDocument(ctx context.Context, path string) error
}

// Watcher is implemented by media with native change notification.
// fn receives nil when the document is deleted. The watch ends when
// ctx is cancelled or stop is called.
type Watcher interface {
	WatchDocument(ctx context.Context, path string, fn func(value json.RawMessage)) (stop func(), err error)
}

// IdentityProvider supplies the user id partitioning remote documents.
type IdentityProvider interface {
	// WaitIdentity blocks until the identity was resolved at least once.
	// An empty id means nobody is signed in.
	WaitIdentity(ctx context.Context) (string, error)

	// UserID returns the latest resolved identity without blocking
	UserID() string

	// OnChange registers fn for identity changes and returns a cancel func
	OnChange(fn func(userID string)) (cancel func())
}

const (
	usersSegment   = "users"
	storageSegment = "storage"
)

// DocumentPath returns the path of key in the partition of userID.
func DocumentPath(userID, key string) string {
	return usersSegment + "/" + userID + "/" + storageSegment + "/" + key
}

// ParseDocumentPath splits a path built by DocumentPath.
func ParseDocumentPath(path string) (userID, key string, ok bool) {
	parts := strings.SplitN(path, "/", 4)
	if len(parts) != 4 || parts[0] != usersSegment || parts[2] != storageSegment {
		return "", "", false
	}
	if parts[1] == "" || parts[3] == "" {
		return "", "", false
	}
	return parts[1], parts[3], true
}
