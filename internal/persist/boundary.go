package persist

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/openhire/mobile-core/internal/apperrors"
	"github.com/openhire/mobile-core/internal/ports"
	"github.com/openhire/mobile-core/internal/store"
)

// DefaultDebounce is how long the boundary batches state changes before
// writing, so bursts of preference edits cost one storage write.
const DefaultDebounce = 500 * time.Millisecond

// Rehydrate loads the persisted record and converts it into a store seed.
// It runs once at startup, before the store is handed to any writer, so a
// persistence write can never race the rehydration read.
//
// Corrupt, absent, or version-mismatched records fall back to the default
// state for the affected containers; rehydration never fails the caller
// over bad stored data.
func Rehydrate(ctx context.Context, driver ports.StorageDriver, logger *slog.Logger) (*store.Seed, string) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := driver.Load(ctx)
	if err != nil {
		if apperrors.IsNotFound(err) {
			logger.InfoContext(ctx, "no persisted state, starting with defaults")
		} else {
			logger.ErrorContext(ctx, "load persisted state failed, starting with defaults", "error", err)
		}
		return nil, uuid.NewString()
	}

	snap, err := DecodeSnapshot(data)
	if err != nil {
		logger.WarnContext(ctx, "persisted state rejected, starting with defaults", "error", err)
		return nil, uuid.NewString()
	}

	deviceID := snap.DeviceID
	if deviceID == "" {
		deviceID = uuid.NewString()
	}

	prefs := snap.Preferences
	return &store.Seed{
		User:        snap.Session.User,
		Token:       snap.Session.Token,
		Preferences: &prefs,
	}, deviceID
}

// PersistorOptions groups dependencies for NewPersistor.
type PersistorOptions struct {
	Driver   ports.StorageDriver
	Logger   *slog.Logger
	DeviceID string
	// Debounce overrides DefaultDebounce when > 0.
	Debounce time.Duration
}

// Persistor keeps the whitelisted subset mirrored in durable storage.
// Writes are debounced and best effort: a storage failure is logged and
// never blocks the in-memory tree.
type Persistor struct {
	driver   ports.StorageDriver
	logger   *slog.Logger
	deviceID string
	debounce time.Duration

	mu        sync.Mutex
	pending   *Snapshot
	timer     *time.Timer
	lastToken string
	closed    bool
}

// NewPersistor constructs a Persistor.
func NewPersistor(opts PersistorOptions) *Persistor {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Persistor{
		driver:   opts.Driver,
		logger:   logger,
		deviceID: opts.DeviceID,
		debounce: debounce,
	}
}

// Attach subscribes the persistor to the whitelisted slices of the store
// and returns a detach function. Non-whitelisted slices never reach the
// persisted record because their subscriptions are never registered.
func (p *Persistor) Attach(st *store.Store) func() {
	unsubSession := st.Subscribe(store.SliceSession, p.onChange)
	unsubPrefs := st.Subscribe(store.SlicePreferences, p.onChange)
	return func() {
		unsubSession()
		unsubPrefs()
	}
}

// onChange records the latest whitelisted subset and arms the debounce
// timer. A logout (credential token leaving the tree) flushes immediately
// so the token is removed from durable storage without delay.
func (p *Persistor) onChange(state store.State) {
	snap := p.snapshotOf(state)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.pending = &snap
	tokenRemoved := p.lastToken != "" && snap.Session.Token == ""
	p.lastToken = snap.Session.Token
	if p.timer == nil {
		p.timer = time.AfterFunc(p.debounce, p.flushPending)
	}
	p.mu.Unlock()

	if tokenRemoved {
		p.flushPending()
	}
}

// Flush forces any pending write to storage.
func (p *Persistor) Flush(ctx context.Context) {
	p.flush(ctx)
}

// Close flushes pending state and stops the persistor.
func (p *Persistor) Close() {
	p.flushPending()
	p.mu.Lock()
	p.closed = true
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.mu.Unlock()
}

func (p *Persistor) flushPending() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p.flush(ctx)
}

func (p *Persistor) flush(ctx context.Context) {
	p.mu.Lock()
	snap := p.pending
	p.pending = nil
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.mu.Unlock()

	if snap == nil {
		return
	}

	data, err := snap.Encode()
	if err != nil {
		p.logger.ErrorContext(ctx, "persist state failed", "error", err)
		return
	}
	if err := p.driver.Save(ctx, data); err != nil {
		p.logger.ErrorContext(ctx, "persist state failed", "error", err)
	}
}

func (p *Persistor) snapshotOf(state store.State) Snapshot {
	return Snapshot{
		SchemaVersion: SchemaVersion,
		DeviceID:      p.deviceID,
		SavedAt:       time.Now().UTC(),
		Session: SessionRecord{
			User:  state.Session.User,
			Token: state.Session.Token,
		},
		Preferences: state.Preferences.Prefs,
	}
}
