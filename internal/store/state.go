package store

import (
	domainauth "github.com/openhire/mobile-core/internal/domain/auth"
	"github.com/openhire/mobile-core/internal/domain/model"
)

// SessionState is the authentication slice of the tree.
// Invariant: Token is non-empty iff User is non-nil. Both are set and
// cleared atomically by the session reducer.
type SessionState struct {
	User  *domainauth.Profile `json:"user,omitempty"`
	Token string              `json:"token,omitempty"`
	Lifecycle

	// FetchToken tags the in-flight login so a stale completion cannot
	// overwrite a newer one. Not part of the serializable tree.
	FetchToken uint64 `json:"-"`
	// Revision increments on every change to this slice. Not serialized.
	Revision uint64 `json:"-"`
}

// Authenticated reports whether a user is logged in.
func (s SessionState) Authenticated() bool { return s.User != nil }

// ListingsState owns the job-listing collection and the active query.
// Items are immutable once fetched; a successful fetch replaces the slice
// wholesale and a failed fetch leaves it untouched.
type ListingsState struct {
	Items []model.JobListing  `json:"items"`
	Query model.ListingsQuery `json:"query"`
	Lifecycle

	FetchToken uint64 `json:"-"`
	Revision   uint64 `json:"-"`
}

// ApplicationsState owns the user's application collection.
type ApplicationsState struct {
	Items []model.Application `json:"items"`
	Lifecycle

	FetchToken uint64 `json:"-"`
	Revision   uint64 `json:"-"`
}

// PreferencesState owns the client-local preference record. It is
// synchronous-only: the Lifecycle fields are inert and stay idle.
type PreferencesState struct {
	Prefs model.Preferences `json:"prefs"`
	Lifecycle

	Revision uint64 `json:"-"`
}

// State is the full addressable state tree. Dispatch routes each intent
// to the container owning one of these slices; containers never mutate a
// slice they do not own.
type State struct {
	Session      SessionState      `json:"session"`
	Listings     ListingsState     `json:"listings"`
	Applications ApplicationsState `json:"applications"`
	Preferences  PreferencesState  `json:"preferences"`
}

// Seed carries rehydrated values applied to the initial tree before the
// store is exposed to any writer. Only whitelisted containers can seed.
type Seed struct {
	User        *domainauth.Profile
	Token       string
	Preferences *model.Preferences
}

func initialState() State {
	return State{
		Session:      SessionState{Lifecycle: idleLifecycle()},
		Listings:     ListingsState{Lifecycle: idleLifecycle()},
		Applications: ApplicationsState{Lifecycle: idleLifecycle()},
		Preferences: PreferencesState{
			Prefs:     model.DefaultPreferences(),
			Lifecycle: idleLifecycle(),
		},
	}
}

func (s State) withSeed(seed *Seed) State {
	if seed == nil {
		return s
	}
	if seed.User != nil && seed.Token != "" {
		user := *seed.User
		s.Session.User = &user
		s.Session.Token = seed.Token
		s.Session.Status = StatusSucceeded
	}
	if seed.Preferences != nil {
		s.Preferences.Prefs = *seed.Preferences
	}
	return s
}
