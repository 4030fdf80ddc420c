package boltdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gymkeeper/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketAuth = []byte("auth")
	bucketKV   = []byte("kv")
)

// DefaultMaxValueBytes ограничение размера одного значения (эмуляция квоты)
const DefaultMaxValueBytes = 5 << 20

// Options настраивает локальное хранилище
type Options struct {
	Logger        *slog.Logger
	MaxValueBytes int // 0 - DefaultMaxValueBytes, <0 - без ограничения
}

// Adapter is the local storage medium: a single bbolt file holding JSON
// documents in the kv bucket and authentication data in the auth bucket.
type Adapter struct {
	db       *bbolt.DB
	logger   *slog.Logger
	maxValue int
	mu       sync.RWMutex
}

var (
	_ storage.Adapter     = (*Adapter)(nil)
	_ storage.Lister      = (*Adapter)(nil)
	_ storage.AuthStorage = (*Adapter)(nil)
)

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string, opts Options) (*Adapter, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	maxValue := opts.MaxValueBytes
	if maxValue == 0 {
		maxValue = DefaultMaxValueBytes
	}

	a := &Adapter{db: db, logger: logger, maxValue: maxValue}

	// Инициализируем buckets
	if err := a.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return a, nil
}

// Close closes the database connection
func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (a *Adapter) initBuckets() error {
	return a.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketAuth, bucketKV} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// view и update выполняют транзакцию, если база еще открыта
func (a *Adapter) view(fn func(tx *bbolt.Tx) error) error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.db == nil {
		return storage.ErrStorageClosed
	}
	return a.db.View(fn)
}

func (a *Adapter) update(fn func(tx *bbolt.Tx) error) error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.db == nil {
		return storage.ErrStorageClosed
	}
	return a.db.Update(fn)
}

// Kind implements storage.Adapter.
func (a *Adapter) Kind() storage.Kind {
	return storage.KindLocal
}

// Get returns the raw document stored under key.
func (a *Adapter) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var value json.RawMessage

	err := a.view(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketKV).Get([]byte(key))
		if data == nil {
			return nil
		}
		// Данные валидны только внутри транзакции
		value = bytes.Clone(data)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}

	if value != nil && !json.Valid(value) {
		a.logger.ErrorContext(ctx, "corrupt value in local storage", "key", key, "size", len(value))
		return nil, nil
	}

	return value, nil
}

// Set encodes value and stores it under key.
func (a *Adapter) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: key %q: %w", storage.ErrSerialization, key, err)
	}
	if a.maxValue > 0 && len(data) > a.maxValue {
		return fmt.Errorf("%w: key %q is %d bytes, limit %d", storage.ErrQuotaExceeded, key, len(data), a.maxValue)
	}

	err = a.update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketKV).Put([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// Remove deletes key. Absent keys are ignored.
func (a *Adapter) Remove(ctx context.Context, key string) error {
	err := a.update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketKV).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("failed to remove %q: %w", key, err)
	}
	return nil
}

// Exists reports whether key holds a document. A corrupt value counts as
// absent, the same as in Get.
func (a *Adapter) Exists(ctx context.Context, key string) (bool, error) {
	var found bool
	err := a.view(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketKV).Get([]byte(key))
		found = data != nil && json.Valid(data)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to check %q: %w", key, err)
	}
	return found, nil
}

// Clear drops every document. Authentication data is kept.
func (a *Adapter) Clear(ctx context.Context) error {
	err := a.update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketKV); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return err
		}
		_, err := tx.CreateBucket(bucketKV)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to clear local storage: %w", err)
	}
	return nil
}

// Keys returns all keys starting with prefix in byte order.
func (a *Adapter) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := a.view(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketKV).Cursor()
		p := []byte(prefix)
		for k, _ := c.Seek(p); k != nil && bytes.HasPrefix(k, p); k, _ = c.Next() {
			keys = append(keys, string(k))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	return keys, nil
}
