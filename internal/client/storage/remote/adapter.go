// Package remote implements the remote storage adapter: a user-partitioned
// view over a DocumentStore with a local fallback copy of every value, an
// in-memory read cache, a persisted offline write queue and realtime
// subscriptions.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	"github.com/iudanet/gymkeeper/internal/client/storage"
)

const (
	DefaultPollInterval     = 5 * time.Second
	DefaultFlushConcurrency = 4
)

// Options настраивает удаленный адаптер
type Options struct {
	Store            DocumentStore    // Store удаленный носитель
	Local            storage.Adapter  // Local хранит резервные копии и очередь записей
	Identity         IdentityProvider // Identity источник идентификатора пользователя
	Logger           *slog.Logger
	PollInterval     time.Duration // PollInterval период опроса, если носитель не умеет watch
	FlushConcurrency int           // FlushConcurrency число параллельных записей при сбросе очереди
	StartOffline     bool          // StartOffline адаптер создается в режиме offline
}

// PendingWrite is a queued remote write. Deleted marks a queued removal.
type PendingWrite struct {
	Value   json.RawMessage `json:"value,omitempty"`
	Deleted bool            `json:"deleted,omitempty"`
}

type subscription struct {
	cancel context.CancelFunc
	stop   func()
	once   sync.Once
}

func (s *subscription) close() {
	s.once.Do(func() {
		s.cancel()
		if s.stop != nil {
			s.stop()
		}
	})
}

// Adapter is the remote storage.RealtimeAdapter.
type Adapter struct {
	store    DocumentStore
	local    storage.Adapter
	identity IdentityProvider
	logger   *slog.Logger

	cache   map[string]json.RawMessage
	pending map[string]PendingWrite
	subs    map[string]*subscription

	// seq номер последней записи по ключу, pendingSeq номер записи в очереди.
	// Записи из восстановленной очереди имеют номер 0.
	seq        map[string]uint64
	pendingSeq map[string]uint64
	sendLocks  map[string]*sync.Mutex

	stopIdentity func()
	userID       string

	pollInterval time.Duration
	flushLimit   int

	mu     sync.Mutex
	online bool
	closed bool
}

var _ storage.RealtimeAdapter = (*Adapter)(nil)

// New creates the adapter and restores the persisted pending-write queue.
func New(ctx context.Context, opts Options) (*Adapter, error) {
	if opts.Store == nil || opts.Local == nil || opts.Identity == nil {
		return nil, errors.New("remote adapter requires store, local adapter and identity")
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	a := &Adapter{
		store:        opts.Store,
		local:        opts.Local,
		identity:     opts.Identity,
		logger:       logger.With("adapter", storage.KindRemote.String()),
		cache:        make(map[string]json.RawMessage),
		pending:      make(map[string]PendingWrite),
		subs:         make(map[string]*subscription),
		seq:          make(map[string]uint64),
		pendingSeq:   make(map[string]uint64),
		sendLocks:    make(map[string]*sync.Mutex),
		pollInterval: opts.PollInterval,
		flushLimit:   opts.FlushConcurrency,
		online:       !opts.StartOffline,
	}
	if a.pollInterval <= 0 {
		a.pollInterval = DefaultPollInterval
	}
	if a.flushLimit <= 0 {
		a.flushLimit = DefaultFlushConcurrency
	}

	raw, err := a.local.Get(ctx, storage.KeyPendingWrites)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending writes: %w", err)
	}
	if raw != nil {
		if err := json.Unmarshal(raw, &a.pending); err != nil {
			// Очередь повреждена, начинаем с пустой
			a.logger.ErrorContext(ctx, "discarding corrupt pending write queue", "error", err)
			a.pending = make(map[string]PendingWrite)
		}
	}

	a.stopIdentity = a.identity.OnChange(a.handleIdentityChange)
	a.mu.Lock()
	if a.userID == "" {
		a.userID = a.identity.UserID()
	}
	a.mu.Unlock()

	return a, nil
}

// Kind implements storage.Adapter.
func (a *Adapter) Kind() storage.Kind {
	return storage.KindRemote
}

// resolveUser waits for the first identity resolution.
func (a *Adapter) resolveUser(ctx context.Context) (string, error) {
	a.mu.Lock()
	closed := a.closed
	a.mu.Unlock()
	if closed {
		return "", storage.ErrStorageClosed
	}

	uid, err := a.identity.WaitIdentity(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve identity: %w", err)
	}

	a.mu.Lock()
	if a.userID == "" && uid != "" {
		// Первое разрешение могло случиться до подписки на OnChange
		a.userID = uid
	}
	a.mu.Unlock()
	return uid, nil
}

// Get reads key: cache, then local fallback copy, then the remote medium.
// Remote failures are logged and reported as an absent value.
func (a *Adapter) Get(ctx context.Context, key string) (json.RawMessage, error) {
	uid, err := a.resolveUser(ctx)
	if err != nil {
		return nil, err
	}
	if uid == "" {
		return a.readFallback(ctx, key), nil
	}

	a.mu.Lock()
	cached, ok := a.cache[key]
	online := a.online
	a.mu.Unlock()
	if ok {
		return cached, nil
	}

	if fallback := a.readFallback(ctx, key); fallback != nil {
		a.mu.Lock()
		a.cache[key] = fallback
		a.mu.Unlock()
		return fallback, nil
	}

	if !online {
		return nil, nil
	}

	value, err := a.fetch(ctx, uid, key)
	if err != nil {
		a.logger.WarnContext(ctx, "remote read failed, no fallback copy", "key", key, "error", err)
		return nil, nil
	}
	return value, nil
}

// Refresh reads key from the remote medium bypassing the cache and
// updates the cache and fallback copy with the result.
func (a *Adapter) Refresh(ctx context.Context, key string) (json.RawMessage, error) {
	uid, err := a.resolveUser(ctx)
	if err != nil {
		return nil, err
	}
	if uid == "" {
		return nil, storage.ErrNotAuthenticated
	}
	if !a.Online() {
		return nil, ErrOffline
	}
	return a.fetch(ctx, uid, key)
}

func (a *Adapter) fetch(ctx context.Context, uid, key string) (json.RawMessage, error) {
	value, err := a.store.GetDocument(ctx, DocumentPath(uid, key))
	if errors.Is(err, ErrDocumentNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}

	a.mu.Lock()
	if a.userID != uid {
		// Пользователь сменился, пока шел запрос
		a.mu.Unlock()
		return nil, storage.ErrNotAuthenticated
	}
	a.cache[key] = value
	a.mu.Unlock()
	a.writeFallback(ctx, key, value)

	return value, nil
}

// Set writes the local fallback copy, then the remote document. Offline or
// failed remote writes are queued and retried when the adapter goes online.
func (a *Adapter) Set(ctx context.Context, key string, value any) error {
	uid, err := a.resolveUser(ctx)
	if err != nil {
		return err
	}
	if uid == "" {
		return fmt.Errorf("set %q: %w", key, storage.ErrNotAuthenticated)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: key %q: %w", storage.ErrSerialization, key, err)
	}

	if err := a.local.Set(ctx, storage.RemoteCacheKey(key), json.RawMessage(data)); err != nil {
		return fmt.Errorf("failed to write fallback copy of %q: %w", key, err)
	}

	a.mu.Lock()
	a.cache[key] = data
	online := a.online
	seq := a.nextSeqLocked(key)
	a.mu.Unlock()

	return a.write(ctx, uid, key, PendingWrite{Value: data}, seq, online)
}

// Remove deletes key locally and remotely; offline removals are queued.
func (a *Adapter) Remove(ctx context.Context, key string) error {
	uid, err := a.resolveUser(ctx)
	if err != nil {
		return err
	}
	if uid == "" {
		return fmt.Errorf("remove %q: %w", key, storage.ErrNotAuthenticated)
	}

	if err := a.local.Remove(ctx, storage.RemoteCacheKey(key)); err != nil {
		return fmt.Errorf("failed to remove fallback copy of %q: %w", key, err)
	}

	a.mu.Lock()
	delete(a.cache, key)
	online := a.online
	seq := a.nextSeqLocked(key)
	a.mu.Unlock()

	return a.write(ctx, uid, key, PendingWrite{Deleted: true}, seq, online)
}

func (a *Adapter) nextSeqLocked(key string) uint64 {
	a.seq[key]++
	return a.seq[key]
}

// write sends w to the medium or queues it. seq orders writes of one key:
// an older write never replaces or drops a newer queued one.
func (a *Adapter) write(ctx context.Context, uid, key string, w PendingWrite, seq uint64, online bool) error {
	if online {
		err := a.sendOrdered(ctx, uid, key, w, seq)
		if err == nil {
			a.mu.Lock()
			defer a.mu.Unlock()
			if _, queued := a.pending[key]; queued && a.pendingSeq[key] <= seq {
				// В очереди эта же или более старая запись, она больше не нужна
				a.dequeueLocked(key)
				return a.persistPendingLocked(ctx)
			}
			return nil
		}
		a.logger.WarnContext(ctx, "remote write failed, queued for retry", "key", key, "error", err)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.userID != uid {
		return storage.ErrNotAuthenticated
	}
	if a.seq[key] > seq {
		// Есть запись новее: она сама дойдет или встанет в очередь
		return nil
	}
	a.pending[key] = w
	a.pendingSeq[key] = seq
	return a.persistPendingLocked(ctx)
}

// sendOrdered отправляет записи одного ключа по очереди и пропускает
// устаревшие, чтобы старое значение не легло поверх нового.
func (a *Adapter) sendOrdered(ctx context.Context, uid, key string, w PendingWrite, seq uint64) error {
	a.mu.Lock()
	lock, ok := a.sendLocks[key]
	if !ok {
		lock = &sync.Mutex{}
		a.sendLocks[key] = lock
	}
	a.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()

	a.mu.Lock()
	superseded := a.seq[key] > seq
	a.mu.Unlock()
	if superseded {
		return nil
	}
	return a.send(ctx, uid, key, w)
}

func (a *Adapter) dequeueLocked(key string) {
	delete(a.pending, key)
	delete(a.pendingSeq, key)
}

func (a *Adapter) send(ctx context.Context, uid, key string, w PendingWrite) error {
	path := DocumentPath(uid, key)
	if w.Deleted {
		if err := a.store.DeleteDocument(ctx, path); err != nil && !errors.Is(err, ErrDocumentNotFound) {
			return err
		}
		return nil
	}
	return a.store.PutDocument(ctx, path, w.Value)
}

// persistPendingLocked stores the queue in the local adapter. Caller holds a.mu.
func (a *Adapter) persistPendingLocked(ctx context.Context) error {
	if len(a.pending) == 0 {
		if err := a.local.Remove(ctx, storage.KeyPendingWrites); err != nil {
			return fmt.Errorf("failed to clear pending writes: %w", err)
		}
		return nil
	}
	if err := a.local.Set(ctx, storage.KeyPendingWrites, a.pending); err != nil {
		return fmt.Errorf("failed to persist pending writes: %w", err)
	}
	return nil
}

// Exists reports whether Get would return a value.
func (a *Adapter) Exists(ctx context.Context, key string) (bool, error) {
	value, err := a.Get(ctx, key)
	if err != nil {
		return false, err
	}
	return value != nil, nil
}

// Clear removes every key the adapter knows about: cached keys and keys
// with a local fallback copy.
func (a *Adapter) Clear(ctx context.Context) error {
	a.mu.Lock()
	keys := slices.Collect(maps.Keys(a.cache))
	a.mu.Unlock()

	if lister, ok := a.local.(storage.Lister); ok {
		fallback, err := lister.Keys(ctx, storage.RemoteCachePrefix())
		if err != nil {
			return fmt.Errorf("failed to list fallback copies: %w", err)
		}
		for _, k := range fallback {
			keys = append(keys, strings.TrimPrefix(k, storage.RemoteCachePrefix()))
		}
	}

	slices.Sort(keys)
	for _, key := range slices.Compact(keys) {
		if err := a.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// Online reports the connectivity state.
func (a *Adapter) Online() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.online
}

// SetOnline switches connectivity. Going online flushes the pending queue.
func (a *Adapter) SetOnline(ctx context.Context, online bool) error {
	a.mu.Lock()
	wasOnline := a.online
	a.online = online
	a.mu.Unlock()

	a.logger.InfoContext(ctx, "connectivity changed", "online", online)
	if online && !wasOnline {
		return a.FlushPendingWrites(ctx)
	}
	return nil
}

// PendingWrites returns a copy of the queue.
func (a *Adapter) PendingWrites() map[string]PendingWrite {
	a.mu.Lock()
	defer a.mu.Unlock()
	return maps.Clone(a.pending)
}

// FlushPendingWrites sends every queued write concurrently. A failed entry
// stays queued for the next cycle; an entry is dropped only if it is still
// the write that was sent.
func (a *Adapter) FlushPendingWrites(ctx context.Context) error {
	a.mu.Lock()
	if !a.online || a.userID == "" || len(a.pending) == 0 {
		a.mu.Unlock()
		return nil
	}
	uid := a.userID
	batch := maps.Clone(a.pending)
	seqs := maps.Clone(a.pendingSeq)
	a.mu.Unlock()

	var (
		g       errgroup.Group
		flushMu sync.Mutex
		done    = make(map[string]uint64, len(batch))
	)
	g.SetLimit(a.flushLimit)

	for key, w := range batch {
		seq := seqs[key]
		g.Go(func() error {
			if err := a.sendOrdered(ctx, uid, key, w, seq); err != nil {
				a.logger.WarnContext(ctx, "pending write failed, keeping it queued", "key", key, "error", err)
				return nil
			}
			flushMu.Lock()
			done[key] = seq
			flushMu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.userID != uid {
		return nil
	}
	for key, seq := range done {
		if _, ok := a.pending[key]; ok && a.pendingSeq[key] == seq {
			a.dequeueLocked(key)
		}
	}
	a.logger.InfoContext(ctx, "pending writes flushed", "sent", len(done), "remaining", len(a.pending))
	return a.persistPendingLocked(ctx)
}

// SetupRealtimeSync subscribes fn to remote changes of key. fn runs only
// when the decoded value differs from the cached one; the cache and the
// fallback copy are updated before fn is called.
func (a *Adapter) SetupRealtimeSync(ctx context.Context, key string, fn func(value json.RawMessage)) (storage.Unsubscribe, error) {
	uid, err := a.resolveUser(ctx)
	if err != nil {
		return nil, err
	}
	if uid == "" {
		return nil, fmt.Errorf("subscribe %q: %w", key, storage.ErrNotAuthenticated)
	}

	subCtx, cancel := context.WithCancel(context.Background())
	sub := &subscription{cancel: cancel}

	a.mu.Lock()
	if prev, ok := a.subs[key]; ok {
		prev.close()
	}
	a.subs[key] = sub
	a.mu.Unlock()

	handler := func(value json.RawMessage) {
		a.deliver(subCtx, key, sub, value, fn)
	}

	path := DocumentPath(uid, key)
	watched := false
	if w, ok := a.store.(Watcher); ok {
		stop, err := w.WatchDocument(subCtx, path, handler)
		if err != nil {
			a.logger.WarnContext(ctx, "native watch unavailable, polling instead", "key", key, "error", err)
		} else {
			sub.stop = stop
			watched = true
		}
	}
	if !watched {
		go a.poll(subCtx, path, handler)
	}

	return func() {
		a.mu.Lock()
		if a.subs[key] == sub {
			delete(a.subs, key)
		}
		a.mu.Unlock()
		sub.close()
	}, nil
}

func (a *Adapter) poll(ctx context.Context, path string, handler func(json.RawMessage)) {
	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if !a.Online() {
			continue
		}
		value, err := a.store.GetDocument(ctx, path)
		switch {
		case errors.Is(err, ErrDocumentNotFound):
			handler(nil)
		case err != nil:
			if ctx.Err() == nil {
				a.logger.DebugContext(ctx, "realtime poll failed", "path", path, "error", err)
			}
		default:
			handler(value)
		}
	}
}

func (a *Adapter) deliver(ctx context.Context, key string, sub *subscription, value json.RawMessage, fn func(json.RawMessage)) {
	a.mu.Lock()
	if a.subs[key] != sub || ctx.Err() != nil {
		a.mu.Unlock()
		return
	}
	cached, ok := a.cache[key]
	if ok && cmp.Equal(decode(cached), decode(value)) {
		a.mu.Unlock()
		return
	}
	if !ok && value == nil {
		a.mu.Unlock()
		return
	}
	if value == nil {
		delete(a.cache, key)
	} else {
		a.cache[key] = value
	}
	a.mu.Unlock()

	if value == nil {
		if err := a.local.Remove(ctx, storage.RemoteCacheKey(key)); err != nil {
			a.logger.ErrorContext(ctx, "failed to drop fallback copy", "key", key, "error", err)
		}
	} else {
		a.writeFallback(ctx, key, value)
	}

	fn(value)
}

// decode turns a document into comparable Go values.
func decode(raw json.RawMessage) any {
	if raw == nil {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return string(raw)
	}
	return v
}

func (a *Adapter) readFallback(ctx context.Context, key string) json.RawMessage {
	value, err := a.local.Get(ctx, storage.RemoteCacheKey(key))
	if err != nil {
		a.logger.ErrorContext(ctx, "failed to read fallback copy", "key", key, "error", err)
		return nil
	}
	return value
}

func (a *Adapter) writeFallback(ctx context.Context, key string, value json.RawMessage) {
	if err := a.local.Set(ctx, storage.RemoteCacheKey(key), value); err != nil {
		a.logger.ErrorContext(ctx, "failed to write fallback copy", "key", key, "error", err)
	}
}

// handleIdentityChange drops everything tied to the previous user.
func (a *Adapter) handleIdentityChange(userID string) {
	ctx := context.Background()

	a.mu.Lock()
	if userID == a.userID {
		a.mu.Unlock()
		return
	}
	prev := a.userID
	a.userID = userID
	if prev == "" {
		// Первый вход: очередь и копии принадлежат этому же устройству
		a.mu.Unlock()
		return
	}

	for key, sub := range a.subs {
		sub.close()
		delete(a.subs, key)
	}
	clear(a.cache)
	clear(a.pending)
	clear(a.pendingSeq)
	if err := a.persistPendingLocked(ctx); err != nil {
		a.logger.Error("failed to clear pending writes on sign-out", "error", err)
	}
	a.mu.Unlock()

	a.dropFallbackCopies(ctx)
	a.logger.Info("identity changed, remote state reset", "signed_in", userID != "")
}

func (a *Adapter) dropFallbackCopies(ctx context.Context) {
	lister, ok := a.local.(storage.Lister)
	if !ok {
		return
	}
	keys, err := lister.Keys(ctx, storage.RemoteCachePrefix())
	if err != nil {
		a.logger.Error("failed to list fallback copies", "error", err)
		return
	}
	for _, k := range keys {
		if err := a.local.Remove(ctx, k); err != nil {
			a.logger.Error("failed to drop fallback copy", "key", k, "error", err)
		}
	}
}

// Close cancels all subscriptions and detaches from the identity provider.
func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}
	a.closed = true
	for key, sub := range a.subs {
		sub.close()
		delete(a.subs, key)
	}
	if a.stopIdentity != nil {
		a.stopIdentity()
	}
	return nil
}

// CloseSubscriptions cancels every realtime subscription and keeps the
// adapter usable.
func (a *Adapter) CloseSubscriptions() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for key, sub := range a.subs {
		sub.close()
		delete(a.subs, key)
	}
}
