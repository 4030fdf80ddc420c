// Package app wires the client: local and remote storage, identity,
// entity stores, sync coordinators and the workout service.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iudanet/gymkeeper/internal/catalog"
	"github.com/iudanet/gymkeeper/internal/client/api"
	"github.com/iudanet/gymkeeper/internal/client/auth"
	"github.com/iudanet/gymkeeper/internal/client/events"
	"github.com/iudanet/gymkeeper/internal/client/persistence"
	"github.com/iudanet/gymkeeper/internal/client/storage"
	"github.com/iudanet/gymkeeper/internal/client/storage/boltdb"
	"github.com/iudanet/gymkeeper/internal/client/storage/memdoc"
	"github.com/iudanet/gymkeeper/internal/client/storage/mongodoc"
	"github.com/iudanet/gymkeeper/internal/client/storage/remote"
	"github.com/iudanet/gymkeeper/internal/client/storage/s3doc"
	"github.com/iudanet/gymkeeper/internal/client/store"
	"github.com/iudanet/gymkeeper/internal/client/sync"
	"github.com/iudanet/gymkeeper/internal/client/workout"
	"github.com/iudanet/gymkeeper/internal/config"
	"github.com/iudanet/gymkeeper/internal/models"
)

var (
	// PushOn действия стора, после которых коллекция отправляется в облако
	PushOn = []store.Action{
		store.ActionCreateItem,
		store.ActionUpdateItem,
		store.ActionDeleteItem,
		store.ActionClearAll,
	}

	// PullOn действия стора, запускающие фоновое слияние
	PullOn = []store.Action{store.ActionLoadItems, store.ActionListItems}
)

// ErrSyncUnavailable is returned by SyncNow while the remote adapter is
// active: there is no second copy to reconcile with.
var ErrSyncUnavailable = errors.New("cloud sync requires local storage")

// App holds the wired client components.
type App struct {
	Config    *config.Client
	Logger    *slog.Logger
	Local     *boltdb.Adapter
	API       *api.Client
	Session   *auth.Session
	Auth      *auth.Service
	Remote    *remote.Adapter
	Storage   *persistence.Service
	Bus       *events.Bus
	Trainings *store.Store[*models.Training]
	Sessions  *store.Store[*models.Session]
	Workout   workout.Service
	Catalog   *catalog.Repository

	docs         remote.DocumentStore
	trainingSync *sync.Coordinator[*models.Training]
	sessionSync  *sync.Coordinator[*models.Session]
	closers      []func(context.Context) error
}

// New opens the local database, restores the identity and builds every
// component. Nothing talks to the network until it is used.
func New(ctx context.Context, cfg *config.Client, logger *slog.Logger) (_ *App, err error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &App{Config: cfg, Logger: logger}
	defer func() {
		if err != nil {
			_ = a.Close(context.Background())
		}
	}()

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	a.Local, err = boltdb.New(ctx, cfg.DBPath, boltdb.Options{
		Logger:        logger,
		MaxValueBytes: cfg.MaxValueBytes,
	})
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func(context.Context) error { return a.Local.Close() })

	a.API = api.NewClient(cfg.Server.URL, a.Local, cfg.Server.Timeout)
	a.Session = auth.NewSession(a.Local, logger)
	if err := a.Session.Restore(ctx); err != nil {
		return nil, err
	}
	a.Auth = auth.NewService(a.API, a.Session, logger)

	docs, err := a.documentStore(ctx)
	if err != nil {
		return nil, err
	}
	a.docs = docs
	a.Remote, err = remote.New(ctx, remote.Options{
		Store:            docs,
		Local:            a.Local,
		Identity:         a.Session,
		Logger:           logger,
		PollInterval:     cfg.Remote.PollInterval,
		FlushConcurrency: cfg.Remote.Concurrency,
		StartOffline:     cfg.Remote.StartOffline,
	})
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func(context.Context) error { return a.Remote.Close() })

	kind, err := storage.ParseKind(cfg.Storage)
	if err != nil {
		return nil, err
	}
	a.Bus = events.New()
	a.Storage, err = persistence.New(kind, persistence.Adapters{Local: a.Local, Remote: a.Remote}, a.Bus, logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, a.Storage.Cleanup)

	a.Trainings = store.New(a.Storage, store.Config[*models.Training]{
		Name:         storage.KeyTrainings,
		Less:         models.TrainingsByNewest,
		StampCreated: true,
		StampUpdated: true,
	}, logger)
	a.Sessions = store.New(a.Storage, store.Config[*models.Session]{
		Name:         storage.KeySessions,
		Less:         models.SessionsByNewest,
		StampUpdated: true,
	}, logger)

	a.Workout = workout.NewService(a.Trainings, a.Sessions, a.Local, logger)
	a.Catalog = catalog.NewRepository(cfg.Catalog, logger)

	if err := a.newCoordinators(); err != nil {
		return nil, err
	}
	return a, nil
}

// documentStore выбирает удаленный носитель по конфигурации
func (a *App) documentStore(ctx context.Context) (remote.DocumentStore, error) {
	cfg := a.Config.Remote
	switch cfg.Medium {
	case config.MediumHTTP:
		return a.API, nil
	case config.MediumMemory:
		return memdoc.New(), nil
	case config.MediumMongo:
		client, err := mongodoc.Connect(ctx, cfg.Mongo.URI)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Disconnect)
		return mongodoc.New(client.Database(cfg.Mongo.Database), cfg.Mongo.Collection, a.Logger), nil
	case config.MediumS3:
		client, err := s3doc.NewClient(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return s3doc.New(client, cfg.S3.Bucket, cfg.S3.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown remote medium %q", cfg.Medium)
	}
}

func (a *App) newCoordinators() error {
	syncCfg := a.Config.Sync

	var err error
	a.trainingSync, err = sync.New(a.Trainings, a.Remote, sync.Config[*models.Training]{
		Timestamp: (*models.Training).LastModified,
		Less:      models.TrainingsByNewest,
		PushOn:    PushOn,
		PullOn:    PullOn,
		Debounce:  syncCfg.Debounce,
		Timeout:   syncCfg.Timeout,
	}, a.Logger)
	if err != nil {
		return err
	}

	a.sessionSync, err = sync.New(a.Sessions, a.Remote, sync.Config[*models.Session]{
		Timestamp: (*models.Session).LastModified,
		Less:      models.SessionsByNewest,
		PushOn:    PushOn,
		PullOn:    PullOn,
		Debounce:  syncCfg.Debounce,
		Timeout:   syncCfg.Timeout,
	}, a.Logger)
	return err
}

// CloudSyncEnabled reports whether local changes are mirrored to the
// remote store: the local adapter is active and a user is signed in.
func (a *App) CloudSyncEnabled() bool {
	return a.Storage.Kind() == storage.KindLocal && a.Session.UserID() != ""
}

// StartSync starts background push/pull when cloud sync is enabled.
func (a *App) StartSync() bool {
	if !a.CloudSyncEnabled() {
		return false
	}
	a.trainingSync.Start()
	a.sessionSync.Start()
	return true
}

// SyncReport is the outcome of SyncNow per collection.
type SyncReport struct {
	Trainings sync.SyncResult
	Sessions  sync.SyncResult
}

// SyncNow pulls and merges both collections, then pushes the merged
// result so both sides converge.
func (a *App) SyncNow(ctx context.Context) (*SyncReport, error) {
	if a.Storage.Kind() != storage.KindLocal {
		return nil, ErrSyncUnavailable
	}
	if a.Session.UserID() == "" {
		return nil, storage.ErrNotAuthenticated
	}
	if err := a.Trainings.EnsureLoaded(ctx); err != nil {
		return nil, err
	}
	if err := a.Sessions.EnsureLoaded(ctx); err != nil {
		return nil, err
	}

	var report SyncReport
	trainings, err := a.trainingSync.SyncFromCloud(ctx)
	if err != nil {
		return nil, err
	}
	report.Trainings = *trainings
	sessions, err := a.sessionSync.SyncFromCloud(ctx)
	if err != nil {
		return nil, err
	}
	report.Sessions = *sessions

	if err := errors.Join(a.trainingSync.PushNow(ctx), a.sessionSync.PushNow(ctx)); err != nil {
		return &report, err
	}
	return &report, nil
}

// StorageKind returns the active adapter kind.
func (a *App) StorageKind() storage.Kind {
	return a.Storage.Kind()
}

// PendingWrites returns the number of remote writes waiting for the
// adapter to go online.
func (a *App) PendingWrites() int {
	return len(a.Remote.PendingWrites())
}

// Subscribe registers fn for the events of both collections.
func (a *App) Subscribe(fn func(ev store.Event)) (cancel func()) {
	cancelTrainings := a.Trainings.Subscribe(fn)
	cancelSessions := a.Sessions.Subscribe(fn)
	return func() {
		cancelTrainings()
		cancelSessions()
	}
}

// SwitchStorage activates the adapter of kind for both collections.
func (a *App) SwitchStorage(ctx context.Context, kind storage.Kind) error {
	if err := a.Trainings.SwitchStorageMode(ctx, kind); err != nil {
		return err
	}
	return a.Sessions.SwitchStorageMode(ctx, kind)
}

// Close stops the coordinators (flushing pending pushes) and releases
// storage in reverse order of creation.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.trainingSync != nil {
		errs = append(errs, a.trainingSync.Stop(ctx))
	}
	if a.sessionSync != nil {
		errs = append(errs, a.sessionSync.Stop(ctx))
	}
	if a.Trainings != nil {
		a.Trainings.Close()
	}
	if a.Sessions != nil {
		a.Sessions.Close()
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i](ctx))
	}
	a.closers = nil
	return errors.Join(errs...)
}
