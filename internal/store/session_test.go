package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhire/mobile-core/internal/apperrors"
	domainauth "github.com/openhire/mobile-core/internal/domain/auth"
	"github.com/openhire/mobile-core/internal/domain/model"
	"github.com/openhire/mobile-core/internal/mocks/platform"
	"github.com/openhire/mobile-core/internal/ports"
	"github.com/openhire/mobile-core/internal/testutil"
)

func validCreds() domainauth.Credentials {
	return domainauth.Credentials{Email: "user@example.com", Password: "hunter22"}
}

func TestLoginUser_Success(t *testing.T) {
	client := platform.NewStubClient()
	s := newTestStore(t, client)

	s.LoginUser(context.Background(), validCreds())

	state := s.GetState().Session
	require.True(t, state.Authenticated())
	assert.Equal(t, client.User.ID, state.User.ID)
	assert.Equal(t, client.Token, state.Token)
	assert.Equal(t, StatusSucceeded, state.Status)
	assert.Empty(t, state.Error)
}

func TestLoginUser_TransportFailureUsesStableMessage(t *testing.T) {
	client := platform.NewStubClient()
	client.AuthenticateFunc = func(context.Context, domainauth.Credentials) (ports.AuthResult, error) {
		return ports.AuthResult{}, apperrors.Transport("dial tcp: connection refused")
	}
	s := newTestStore(t, client)

	s.LoginUser(context.Background(), validCreds())

	state := s.GetState().Session
	assert.False(t, state.Authenticated())
	assert.Equal(t, StatusFailed, state.Status)
	assert.Equal(t, "Network error", state.Error)
}

func TestLoginUser_ServerFailureKeepsServerMessage(t *testing.T) {
	client := platform.NewStubClient()
	client.AuthenticateFunc = func(context.Context, domainauth.Credentials) (ports.AuthResult, error) {
		return ports.AuthResult{}, apperrors.Server("invalid email or password")
	}
	s := newTestStore(t, client)

	s.LoginUser(context.Background(), validCreds())

	state := s.GetState().Session
	assert.Equal(t, StatusFailed, state.Status)
	assert.Equal(t, "invalid email or password", state.Error)
}

func TestLoginUser_RejectedCredentialKeepsClassifiedMessage(t *testing.T) {
	client := platform.NewStubClient()
	client.AuthenticateFunc = func(context.Context, domainauth.Credentials) (ports.AuthResult, error) {
		return ports.AuthResult{}, apperrors.Unauthorized("invalid email or password")
	}
	s := newTestStore(t, client)

	s.LoginUser(context.Background(), validCreds())

	// The user was never signed in, so a 401 here is a rejected
	// credential, not an expired session.
	state := s.GetState().Session
	assert.False(t, state.Authenticated())
	assert.Equal(t, StatusFailed, state.Status)
	assert.Equal(t, "invalid email or password", state.Error)
}

func TestLoginUser_InvalidCredentialsNeverReachPlatform(t *testing.T) {
	client := platform.NewStubClient()
	s := newTestStore(t, client)

	s.LoginUser(context.Background(), domainauth.Credentials{Email: "", Password: "x"})

	assert.Zero(t, client.Calls("Authenticate"))
	assert.Equal(t, StatusIdle, s.GetState().Session.Status)
}

func TestReduceSession_StaleLoginCompletionDiscarded(t *testing.T) {
	s := newTestStore(t, nil)

	// Two overlapping login attempts: the first completes after the
	// second has started, so its completion carries a superseded token.
	s.Dispatch(LoginStarted{Token: 1})
	s.Dispatch(LoginStarted{Token: 2})
	s.Dispatch(LoginSucceeded{Token: 1, User: domainauth.Profile{ID: "stale"}, Credential: "stale-token"})

	state := s.GetState().Session
	assert.False(t, state.Authenticated())
	assert.Equal(t, StatusPending, state.Status)

	s.Dispatch(LoginSucceeded{Token: 2, User: domainauth.Profile{ID: "fresh"}, Credential: "fresh-token"})

	state = s.GetState().Session
	require.True(t, state.Authenticated())
	assert.Equal(t, "fresh", state.User.ID)
	assert.Equal(t, "fresh-token", state.Token)
}

func TestReduceSession_StaleFailureDiscarded(t *testing.T) {
	s := newTestStore(t, nil)

	s.Dispatch(LoginStarted{Token: 1})
	s.Dispatch(LoginStarted{Token: 2})
	s.Dispatch(LoginSucceeded{Token: 2, User: domainauth.Profile{ID: "fresh"}, Credential: "fresh-token"})
	s.Dispatch(LoginFailed{Token: 1, Message: "Network error"})

	state := s.GetState().Session
	assert.True(t, state.Authenticated())
	assert.Equal(t, StatusSucceeded, state.Status)
	assert.Empty(t, state.Error)
}

func TestLogout_ClearsSessionAndApplications(t *testing.T) {
	client := platform.NewStubClient()
	client.Applications = []model.Application{
		testutil.NewApplication("app-1", "job-1").Build(),
	}
	s := newTestStore(t, client)

	s.LoginUser(context.Background(), validCreds())
	s.FetchApplications(context.Background())
	require.True(t, s.GetState().Session.Authenticated())
	require.NotEmpty(t, s.GetState().Applications.Items)

	s.Logout()

	state := s.GetState()
	assert.False(t, state.Session.Authenticated())
	assert.Empty(t, state.Session.Token)
	assert.Equal(t, StatusIdle, state.Session.Status)
	assert.Empty(t, state.Applications.Items)
	assert.Equal(t, StatusIdle, state.Applications.Status)
}

func TestForcedLogout_UnauthorizedFetchClearsSession(t *testing.T) {
	client := platform.NewStubClient()
	s := newTestStore(t, client)

	s.LoginUser(context.Background(), validCreds())
	require.True(t, s.GetState().Session.Authenticated())

	client.ListApplicationsFunc = func(context.Context, string) ([]model.Application, error) {
		return nil, apperrors.Unauthorized("token expired")
	}

	s.FetchApplications(context.Background())

	state := s.GetState()
	assert.False(t, state.Session.Authenticated())
	assert.Equal(t, "Session expired", state.Session.Error)
	assert.Empty(t, state.Applications.Items)
}

func TestClearSessionError(t *testing.T) {
	s := newTestStore(t, nil)

	s.Dispatch(LoginStarted{Token: 1})
	s.Dispatch(LoginFailed{Token: 1, Message: "Network error"})
	require.Equal(t, "Network error", s.GetState().Session.Error)

	s.ClearSessionError()

	state := s.GetState().Session
	assert.Empty(t, state.Error)
	// Clearing the error does not rewrite history: the status stays failed.
	assert.Equal(t, StatusFailed, state.Status)
}
