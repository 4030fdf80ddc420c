package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate moq -out adapter_mock.go . Adapter RealtimeAdapter

// Kind identifies a concrete storage medium.
type Kind int

const (
	// KindLocal is the embedded on-device store.
	KindLocal Kind = iota
	// KindRemote is the user's partition in the remote document store.
	KindRemote
)

// String implements fmt.Stringer. The names double as config values.
func (k Kind) String() string {
	switch k {
	case KindLocal:
		return "local"
	case KindRemote:
		return "remote"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts a config value into a Kind.
// "localStorage" is accepted as an alias of "local".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "local", "localStorage":
		return KindLocal, nil
	case "remote":
		return KindRemote, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Adapter is a key-value view over one storage medium.
// Values are JSON documents: Set encodes, Get returns the raw document.
type Adapter interface {
	// Kind reports which medium backs the adapter
	Kind() Kind

	// Get returns the stored document or nil if the key is absent.
	// Corrupt values are logged and reported as absent.
	Get(ctx context.Context, key string) (json.RawMessage, error)

	// Set encodes value as JSON and stores it.
	// Encoding failures wrap ErrSerialization, oversized values wrap ErrQuotaExceeded.
	Set(ctx context.Context, key string, value any) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Exists reports whether a document is stored under key
	Exists(ctx context.Context, key string) (bool, error)

	// Clear removes every key managed by the adapter
	Clear(ctx context.Context) error
}

// Unsubscribe cancels a realtime subscription. It is safe to call more than once.
type Unsubscribe func()

// RealtimeAdapter is an Adapter that can push remote changes to the caller.
type RealtimeAdapter interface {
	Adapter

	// SetupRealtimeSync registers fn for changes of key. A previous
	// subscription for the same key is cancelled first.
	SetupRealtimeSync(ctx context.Context, key string, fn func(value json.RawMessage)) (Unsubscribe, error)
}

// Lister is implemented by adapters that can enumerate their keys.
type Lister interface {
	Keys(ctx context.Context, prefix string) ([]string, error)
}
