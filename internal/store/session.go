package store

import (
	"context"
	"time"

	"github.com/openhire/mobile-core/internal/apperrors"
	domainauth "github.com/openhire/mobile-core/internal/domain/auth"
)

// Session container intents.

// LoginStarted marks a login attempt as in flight.
type LoginStarted struct {
	Token uint64
}

// LoginSucceeded installs the authenticated user and credential token
// atomically, upholding the session invariant.
type LoginSucceeded struct {
	Token      uint64
	User       domainauth.Profile
	Credential string
}

// LoginFailed records the classified failure message. Any previously held
// session data is left untouched.
type LoginFailed struct {
	Token   uint64
	Message string
}

// LoggedOut clears the user and credential token atomically and returns
// the session to its initial shape.
type LoggedOut struct{}

// SessionExpired is dispatched when any platform call returns an
// unauthorized response: the session is cleared like a logout, and the
// expiry is surfaced as the session error.
type SessionExpired struct{}

// SessionErrorCleared resets the session error without touching any other
// field.
type SessionErrorCleared struct{}

func (LoginStarted) slice() Slice        { return SliceSession }
func (LoginSucceeded) slice() Slice      { return SliceSession }
func (LoginFailed) slice() Slice         { return SliceSession }
func (LoggedOut) slice() Slice           { return SliceSession }
func (SessionExpired) slice() Slice      { return SliceSession }
func (SessionErrorCleared) slice() Slice { return SliceSession }

// reduceSession is the pure update function for the session slice.
func reduceSession(prev SessionState, intent Intent) (SessionState, bool) {
	next := prev
	switch in := intent.(type) {
	case LoginStarted:
		next.FetchToken = in.Token
		next.Status = StatusPending
		next.Error = ""

	case LoginSucceeded:
		if in.Token != prev.FetchToken {
			return prev, false
		}
		user := in.User
		next.User = &user
		next.Token = in.Credential
		next.Status = StatusSucceeded
		next.Error = ""

	case LoginFailed:
		if in.Token != prev.FetchToken {
			return prev, false
		}
		next.Status = StatusFailed
		next.Error = in.Message

	case LoggedOut:
		next = SessionState{Lifecycle: idleLifecycle()}

	case SessionExpired:
		next = SessionState{Lifecycle: Lifecycle{
			Status: StatusFailed,
			Error:  "Session expired",
		}}

	case SessionErrorCleared:
		if prev.Error == "" {
			return prev, false
		}
		next.Error = ""

	default:
		return prev, false
	}

	next.Revision = prev.Revision + 1
	return next, true
}

// LoginUser authenticates against the platform and resolves the session
// lifecycle. Completion is applied through Dispatch like every other state
// transition; a slower, older login cannot overwrite a newer one.
func (s *Store) LoginUser(ctx context.Context, creds domainauth.Credentials) {
	if err := creds.Validate(); err != nil {
		s.rejectParams(ctx, "login", err)
		return
	}

	token := s.sessionSeq.Add(1)
	s.Dispatch(LoginStarted{Token: token})

	start := time.Now()
	res, err := s.client.Authenticate(ctx, creds)
	s.emitFetch("session", start, err)
	if err != nil {
		s.logger.WarnContext(ctx, "login failed", "error", err)
		msg := apperrors.UserMessage(err)
		if apperrors.IsUnauthorized(err) {
			// A 401 on the login call itself is a rejected credential,
			// not an expired session; keep the classified message.
			msg = apperrors.Message(err)
		}
		s.Dispatch(LoginFailed{Token: token, Message: msg})
		return
	}

	s.Dispatch(LoginSucceeded{Token: token, User: res.User, Credential: res.Token})
}

// Logout clears the session and the user-scoped application data. The
// persistence boundary observes the cleared session and removes the token
// from durable storage.
func (s *Store) Logout() {
	s.Dispatch(LoggedOut{})
	s.Dispatch(ApplicationsCleared{})
}

// ClearSessionError resets the session error field.
func (s *Store) ClearSessionError() {
	s.Dispatch(SessionErrorCleared{})
}

// forceLogoutOnUnauthorized routes 401-class failures through the forced
// logout path. Returns true when the error was an authorization failure.
func (s *Store) forceLogoutOnUnauthorized(err error) bool {
	if !apperrors.IsUnauthorized(err) {
		return false
	}
	s.Dispatch(SessionExpired{})
	s.Dispatch(ApplicationsCleared{})
	return true
}
