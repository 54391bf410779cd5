package store

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/openhire/mobile-core/internal/domain/auth"
	"github.com/openhire/mobile-core/internal/domain/model"
	"github.com/openhire/mobile-core/internal/mocks/platform"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T, client *platform.StubClient) *Store {
	t.Helper()
	if client == nil {
		client = platform.NewStubClient()
	}
	return New(Options{
		Client: client,
		Logger: testLogger(),
	})
}

type badIntent struct{}

func (badIntent) slice() Slice { return Slice("unknown") }

func TestNew_InitialState(t *testing.T) {
	s := newTestStore(t, nil)
	state := s.GetState()

	assert.Nil(t, state.Session.User)
	assert.Empty(t, state.Session.Token)
	assert.Equal(t, StatusIdle, state.Session.Status)
	assert.False(t, state.Session.Authenticated())

	assert.Empty(t, state.Listings.Items)
	assert.True(t, state.Listings.Query.IsZero())
	assert.Equal(t, StatusIdle, state.Listings.Status)

	assert.Empty(t, state.Applications.Items)
	assert.Equal(t, StatusIdle, state.Applications.Status)

	assert.Equal(t, model.DefaultPreferences(), state.Preferences.Prefs)
	assert.Equal(t, StatusIdle, state.Preferences.Status)
}

func TestNew_SeedAppliesWhitelistedContainers(t *testing.T) {
	prefs := model.DefaultPreferences()
	prefs.Theme = model.ThemeDark

	s := New(Options{
		Client: platform.NewStubClient(),
		Logger: testLogger(),
		Seed: &Seed{
			User:        &domainauth.Profile{ID: "user-1", Role: domainauth.RoleJobSeeker},
			Token:       "token-1",
			Preferences: &prefs,
		},
	})

	state := s.GetState()
	require.True(t, state.Session.Authenticated())
	assert.Equal(t, "user-1", state.Session.User.ID)
	assert.Equal(t, "token-1", state.Session.Token)
	assert.Equal(t, StatusSucceeded, state.Session.Status)
	assert.Equal(t, model.ThemeDark, state.Preferences.Prefs.Theme)

	// Non-whitelisted containers always start cold.
	assert.Empty(t, state.Listings.Items)
	assert.Empty(t, state.Applications.Items)
}

func TestNew_SeedWithoutTokenIsIgnored(t *testing.T) {
	s := New(Options{
		Client: platform.NewStubClient(),
		Logger: testLogger(),
		Seed: &Seed{
			User: &domainauth.Profile{ID: "user-1"},
		},
	})

	state := s.GetState()
	assert.False(t, state.Session.Authenticated())
	assert.Equal(t, StatusIdle, state.Session.Status)
}

func TestSubscribe_NotifiesMatchingSliceOnly(t *testing.T) {
	s := newTestStore(t, nil)

	var sessionCalls, prefCalls, anyCalls int
	s.Subscribe(SliceSession, func(State) { sessionCalls++ })
	s.Subscribe(SlicePreferences, func(State) { prefCalls++ })
	s.Subscribe(SliceAny, func(State) { anyCalls++ })

	s.Dispatch(ThemeChanged{Theme: model.ThemeLight})

	assert.Zero(t, sessionCalls)
	assert.Equal(t, 1, prefCalls)
	assert.Equal(t, 1, anyCalls)
}

func TestSubscribe_UnsubscribeStopsNotifications(t *testing.T) {
	s := newTestStore(t, nil)

	var calls int
	unsub := s.Subscribe(SlicePreferences, func(State) { calls++ })

	s.Dispatch(ThemeChanged{Theme: model.ThemeLight})
	unsub()
	s.Dispatch(ThemeChanged{Theme: model.ThemeDark})

	assert.Equal(t, 1, calls)
}

func TestDispatch_NoOpIntentDoesNotNotify(t *testing.T) {
	s := newTestStore(t, nil)

	var calls int
	s.Subscribe(SlicePreferences, func(State) { calls++ })

	// Theme is already "system"; the reducer reports no change.
	s.Dispatch(ThemeChanged{Theme: model.ThemeSystem})

	assert.Zero(t, calls)
}

func TestDispatch_ListenerSeesPostChangeSnapshot(t *testing.T) {
	s := newTestStore(t, nil)

	var seen model.Theme
	s.Subscribe(SlicePreferences, func(state State) {
		seen = state.Preferences.Prefs.Theme
	})

	s.Dispatch(ThemeChanged{Theme: model.ThemeDark})

	assert.Equal(t, model.ThemeDark, seen)
}

func TestDispatch_UnknownIntentIgnoredInProduction(t *testing.T) {
	s := newTestStore(t, nil)
	before := s.GetState()

	s.Dispatch(badIntent{})
	s.Dispatch(nil)

	assert.Equal(t, before, s.GetState())
}

func TestDispatch_UnknownIntentPanicsInDevMode(t *testing.T) {
	s := New(Options{
		Client:  platform.NewStubClient(),
		Logger:  testLogger(),
		DevMode: true,
	})

	assert.Panics(t, func() { s.Dispatch(badIntent{}) })
	assert.Panics(t, func() { s.Dispatch(nil) })
}

func TestDispatch_SnapshotsDeliveredInApplyOrder(t *testing.T) {
	s := newTestStore(t, nil)

	// The dispatch lock serializes listener invocations, so the append
	// below never races.
	var seen []uint64
	detach := s.Subscribe(SlicePreferences, func(state State) {
		seen = append(seen, state.Preferences.Revision)
	})
	defer detach()

	const goroutines, perGoroutine = 8, 50
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				s.Dispatch(AlertKeywordAdded{Keyword: fmt.Sprintf("kw-%d-%d", g, i)})
			}
		}(g)
	}
	wg.Wait()

	require.Len(t, seen, goroutines*perGoroutine)
	for i := 1; i < len(seen); i++ {
		require.Greater(t, seen[i], seen[i-1],
			"listener observed snapshots out of apply order at index %d", i)
	}
}

func TestDispatch_RevisionBumpsPerChange(t *testing.T) {
	s := newTestStore(t, nil)

	before := s.GetState().Preferences.Revision
	s.Dispatch(ThemeChanged{Theme: model.ThemeDark})
	s.Dispatch(NotificationsToggled{})
	after := s.GetState().Preferences.Revision

	assert.Equal(t, before+2, after)
}
