package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gymkeeper/internal/models"
	"github.com/iudanet/gymkeeper/internal/server/storage"
)

// GetDocument retrieves the document stored under key
func (s *Storage) GetDocument(ctx context.Context, userID, key string) (*models.Document, error) {
	query := `
		SELECT user_id, key, value, version, updated_at
		FROM documents
		WHERE user_id = ? AND key = ?
	`

	doc := &models.Document{}
	err := s.db.QueryRowContext(ctx, query, userID, key).Scan(
		&doc.UserID,
		&doc.Key,
		&doc.Value,
		&doc.Version,
		&doc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return doc, nil
}

// PutDocument creates or replaces the document under key
func (s *Storage) PutDocument(ctx context.Context, userID, key string, value []byte) (*models.Document, error) {
	query := `
		INSERT INTO documents (user_id, key, value, version, updated_at)
		VALUES (?, ?, ?, 1, ?)
		ON CONFLICT (user_id, key) DO UPDATE SET
			value = excluded.value,
			version = documents.version + 1,
			updated_at = excluded.updated_at
		RETURNING version
	`

	doc := &models.Document{
		UserID:    userID,
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.db.QueryRowContext(ctx, query, userID, key, value, doc.UpdatedAt).Scan(&doc.Version); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	return doc, nil
}

// DeleteDocument removes the document under key
func (s *Storage) DeleteDocument(ctx context.Context, userID, key string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE user_id = ? AND key = ?`, userID, key)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return storage.ErrDocumentNotFound
	}

	return nil
}
