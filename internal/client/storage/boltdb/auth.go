package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/gymkeeper/internal/client/storage"
)

// currentUser единственная запись auth bucket: клиент хранит одну сессию
var currentUser = []byte("current")

func authBucket(tx *bbolt.Tx) (*bbolt.Bucket, error) {
	b := tx.Bucket(bucketAuth)
	if b == nil {
		return nil, errors.New("auth bucket not found")
	}
	return b, nil
}

// SaveAuth implements storage.AuthStorage.
func (a *Adapter) SaveAuth(_ context.Context, auth *storage.AuthData) error {
	if auth == nil {
		return errors.New("nil auth data")
	}
	data, err := json.Marshal(auth)
	if err != nil {
		return fmt.Errorf("%w: auth data: %w", storage.ErrSerialization, err)
	}

	return a.update(func(tx *bbolt.Tx) error {
		b, err := authBucket(tx)
		if err != nil {
			return err
		}
		return b.Put(currentUser, data)
	})
}

// GetAuth implements storage.AuthStorage.
func (a *Adapter) GetAuth(_ context.Context) (*storage.AuthData, error) {
	var raw []byte
	err := a.view(func(tx *bbolt.Tx) error {
		b, err := authBucket(tx)
		if err != nil {
			return err
		}
		// Копируем: значение валидно только внутри транзакции
		raw = append(raw, b.Get(currentUser)...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, storage.ErrAuthNotFound
	}

	var auth storage.AuthData
	if err := json.Unmarshal(raw, &auth); err != nil {
		return nil, fmt.Errorf("corrupted auth data: %w", err)
	}
	return &auth, nil
}

// DeleteAuth implements storage.AuthStorage.
func (a *Adapter) DeleteAuth(_ context.Context) error {
	return a.update(func(tx *bbolt.Tx) error {
		b, err := authBucket(tx)
		if err != nil {
			return err
		}
		return b.Delete(currentUser)
	})
}
