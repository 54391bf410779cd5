// Package store implements the client-side state synchronization core: a
// central tree composed of independent resource containers, one dispatch
// channel, and per-slice subscriptions. Reducers are pure; side effects
// live in the effect methods, which call the platform and dispatch
// completion intents back through the same channel.
package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/openhire/mobile-core/internal/observability/metrics"
	"github.com/openhire/mobile-core/internal/observability/statsd"
	"github.com/openhire/mobile-core/internal/ports"
)

// Options groups dependencies for New. The store is an explicitly
// constructed instance; nothing in this package holds global state.
type Options struct {
	// Client is the remote platform API used by the fetch effects.
	Client ports.PlatformClient
	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
	// Metrics receives intent/fetch lifecycle metrics. Optional.
	Metrics statsd.Sink
	// Seed applies rehydrated whitelist values before the store is
	// exposed. Optional.
	Seed *Seed
	// DevMode makes malformed intents panic instead of being logged and
	// ignored.
	DevMode bool
}

// Store composes the resource containers into one addressable tree.
// All state transitions are serialized: intents are applied in dispatch
// order under a single mutex, so containers never race each other.
type Store struct {
	client  ports.PlatformClient
	logger  *slog.Logger
	metrics statsd.Sink
	devMode bool

	// dispatchMu serializes the whole dispatch cycle, listener delivery
	// included, so two dispatches racing from different goroutines cannot
	// hand subscribers snapshots out of apply order. State reads take only
	// mu, so listeners may call GetState.
	dispatchMu sync.Mutex

	mu    sync.Mutex
	state State

	subsMu sync.Mutex
	subs   map[uint64]subscription
	nextID atomic.Uint64

	// Monotonic request-token sources, one per async-backed container.
	// Completion intents carry the token they were issued; reducers
	// discard completions whose token is not the latest recorded in the
	// container state (last-resolved-wins).
	sessionSeq      atomic.Uint64
	listingsSeq     atomic.Uint64
	applicationsSeq atomic.Uint64
}

type subscription struct {
	slice    Slice
	listener func(State)
}

// New constructs a Store. The caller owns wiring it to whatever consumes
// the tree (navigation, persistence, views).
func New(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		client:  opts.Client,
		logger:  logger,
		metrics: opts.Metrics,
		devMode: opts.DevMode,
		state:   initialState().withSeed(opts.Seed),
		subs:    make(map[uint64]subscription),
	}
}

// GetState returns a synchronous snapshot of the tree. Slices inside the
// snapshot are shared with the store and must be treated as immutable.
func (s *Store) GetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers a listener for changes to one slice of the tree
// (or SliceAny for all of it) and returns an unsubscribe function. The
// listener receives the post-change snapshot; snapshots arrive in apply
// order. Listeners must not call Dispatch.
func (s *Store) Subscribe(slice Slice, listener func(State)) func() {
	id := s.nextID.Add(1)
	s.subsMu.Lock()
	s.subs[id] = subscription{slice: slice, listener: listener}
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

// Dispatch routes an intent to its owning container reducer and publishes
// the updated tree to subscribers of that slice. A nil or unknown intent
// is a programming error: it panics in dev mode and is logged and ignored
// otherwise, never corrupting state.
func (s *Store) Dispatch(intent Intent) {
	if intent == nil {
		s.rejectIntent("nil intent")
		return
	}
	slice := intent.slice()
	switch slice {
	case SliceSession, SliceListings, SliceApplications, SlicePreferences:
	default:
		s.rejectIntent(fmt.Sprintf("intent %T targets unknown slice %q", intent, slice))
		return
	}

	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.Lock()
	changed := s.applyLocked(slice, intent)
	snapshot := s.state
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.Count("intent.dispatched", 1, map[string]string{
			"container": string(slice),
			"applied":   fmt.Sprintf("%t", changed),
		})
	}

	if changed {
		s.notify(slice, snapshot)
	}
}

// applyLocked routes the intent to the owning reducer and returns whether
// the slice changed. Reducers are pure functions of (state, intent); all
// of them bump the slice revision on change.
func (s *Store) applyLocked(slice Slice, intent Intent) bool {
	switch slice {
	case SliceSession:
		next, ok := reduceSession(s.state.Session, intent)
		if ok {
			s.state.Session = next
		}
		return ok
	case SliceListings:
		next, ok := reduceListings(s.state.Listings, intent)
		if ok {
			s.state.Listings = next
		}
		return ok
	case SliceApplications:
		next, ok := reduceApplications(s.state.Applications, intent)
		if ok {
			s.state.Applications = next
		}
		return ok
	case SlicePreferences:
		next, ok := reducePreferences(s.state.Preferences, intent)
		if ok {
			s.state.Preferences = next
		}
		return ok
	default:
		return false
	}
}

func (s *Store) notify(slice Slice, snapshot State) {
	s.subsMu.Lock()
	listeners := make([]func(State), 0, len(s.subs))
	for _, sub := range s.subs {
		if sub.slice == slice || sub.slice == SliceAny {
			listeners = append(listeners, sub.listener)
		}
	}
	s.subsMu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// emitFetch reports one resolved fetch to the metrics sink.
func (s *Store) emitFetch(container string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	metrics.EmitFetch(s.metrics, metrics.FetchMetric{
		Container: container,
		Duration:  time.Since(start),
		Err:       err,
	})
}

// rejectIntent implements the malformed-intent policy: fail fast in
// development, diagnostic log in production.
func (s *Store) rejectIntent(msg string) {
	if s.devMode {
		panic("store: " + msg)
	}
	s.logger.Error("ignoring malformed intent", "reason", msg)
}

// rejectParams implements the same policy for malformed effect parameters.
func (s *Store) rejectParams(ctx context.Context, op string, err error) {
	if s.devMode {
		panic(fmt.Sprintf("store: %s: invalid params: %v", op, err))
	}
	s.logger.ErrorContext(ctx, "ignoring operation with invalid params",
		"op", op, "error", err)
}
