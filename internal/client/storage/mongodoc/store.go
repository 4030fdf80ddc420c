// Package mongodoc stores remote documents in a MongoDB collection, one
// Mongo document per path, and watches them with change streams.
package mongodoc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/iudanet/gymkeeper/internal/client/storage/remote"
)

const (
	// DefaultCollection коллекция документов по умолчанию
	DefaultCollection = "documents"

	connectTimeout = 10 * time.Second
	pingTimeout    = 5 * time.Second
)

// document is the stored shape. Value keeps the JSON text as is.
type document struct {
	UpdatedAt time.Time `bson:"updatedAt"`
	Path      string    `bson:"_id"`
	Value     string    `bson:"value"`
}

type changeEvent struct {
	FullDocument  *document `bson:"fullDocument"`
	OperationType string    `bson:"operationType"`
}

// Store is a remote.DocumentStore and remote.Watcher over one collection.
type Store struct {
	collection *mongo.Collection
	logger     *slog.Logger
}

var (
	_ remote.DocumentStore = (*Store)(nil)
	_ remote.Watcher       = (*Store)(nil)
)

// Connect opens a client for uri and verifies it with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, pingTimeout)
	defer pingCancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return client, nil
}

// New creates a store over db.Collection(name).
func New(db *mongo.Database, name string, logger *slog.Logger) *Store {
	if name == "" {
		name = DefaultCollection
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{collection: db.Collection(name), logger: logger}
}

// GetDocument implements remote.DocumentStore.
func (s *Store) GetDocument(ctx context.Context, path string) (json.RawMessage, error) {
	var doc document
	err := s.collection.FindOne(ctx, bson.M{"_id": path}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, remote.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to find %s: %w", path, err)
	}
	return json.RawMessage(doc.Value), nil
}

// PutDocument implements remote.DocumentStore with an upsert.
func (s *Store) PutDocument(ctx context.Context, path string, value json.RawMessage) error {
	doc := document{Path: path, Value: string(value), UpdatedAt: time.Now().UTC()}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": path}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert %s: %w", path, err)
	}
	return nil
}

// DeleteDocument implements remote.DocumentStore.
func (s *Store) DeleteDocument(ctx context.Context, path string) error {
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": path}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

// WatchDocument opens a change stream filtered to path. Change streams
// need a replica set; on a standalone server the error is returned and
// the caller falls back to polling.
func (s *Store) WatchDocument(ctx context.Context, path string, fn func(json.RawMessage)) (func(), error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "documentKey._id", Value: path}}}},
	}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	watchCtx, cancel := context.WithCancel(ctx)
	stream, err := s.collection.Watch(watchCtx, pipeline, opts)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to open change stream for %s: %w", path, err)
	}

	go func() {
		defer stream.Close(context.Background())
		for stream.Next(watchCtx) {
			var ev changeEvent
			if err := stream.Decode(&ev); err != nil {
				s.logger.Warn("failed to decode change event", "path", path, "error", err)
				continue
			}
			if value, ok := eventValue(ev); ok {
				fn(value)
			}
		}
		if err := stream.Err(); err != nil && watchCtx.Err() == nil {
			s.logger.Warn("change stream closed", "path", path, "error", err)
		}
	}()

	return cancel, nil
}

// eventValue maps a change event to the value passed to watchers.
func eventValue(ev changeEvent) (json.RawMessage, bool) {
	switch ev.OperationType {
	case "delete":
		return nil, true
	case "insert", "replace", "update":
		if ev.FullDocument == nil {
			return nil, false
		}
		return json.RawMessage(ev.FullDocument.Value), true
	default:
		return nil, false
	}
}
