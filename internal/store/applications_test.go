package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhire/mobile-core/internal/apperrors"
	"github.com/openhire/mobile-core/internal/domain/model"
	"github.com/openhire/mobile-core/internal/mocks/platform"
	"github.com/openhire/mobile-core/internal/testutil"
)

func TestFetchApplications_Success(t *testing.T) {
	client := platform.NewStubClient()
	client.Applications = []model.Application{
		testutil.NewApplication("app-1", "job-1").Build(),
	}
	s := newTestStore(t, client)

	s.LoginUser(context.Background(), validCreds())
	s.FetchApplications(context.Background())

	state := s.GetState().Applications
	require.Len(t, state.Items, 1)
	assert.Equal(t, StatusSucceeded, state.Status)
}

func TestFetchApplications_RequiresAuthentication(t *testing.T) {
	client := platform.NewStubClient()
	s := newTestStore(t, client)

	s.FetchApplications(context.Background())

	assert.Zero(t, client.Calls("ListApplications"))
	assert.Equal(t, StatusIdle, s.GetState().Applications.Status)
}

func TestFetchApplications_UsesSignedInUserID(t *testing.T) {
	client := platform.NewStubClient()
	var gotUserID string
	client.ListApplicationsFunc = func(_ context.Context, userID string) ([]model.Application, error) {
		gotUserID = userID
		return nil, nil
	}
	s := newTestStore(t, client)

	s.LoginUser(context.Background(), validCreds())
	s.FetchApplications(context.Background())

	assert.Equal(t, client.User.ID, gotUserID)
}

func TestSubmitApplication_AppendsConfirmedRecord(t *testing.T) {
	client := platform.NewStubClient()
	client.Applications = []model.Application{
		testutil.NewApplication("app-1", "job-1").Build(),
	}
	s := newTestStore(t, client)

	s.LoginUser(context.Background(), validCreds())
	s.FetchApplications(context.Background())
	s.SubmitApplication(context.Background(), "job-2", []string{"resume-1"})

	state := s.GetState().Applications
	require.Len(t, state.Items, 2)
	assert.Equal(t, "job-2", state.Items[1].JobID)
	assert.Equal(t, model.ApplicationStatusSubmitted, state.Items[1].Status)
	assert.Equal(t, StatusSucceeded, state.Status)
}

func TestSubmitApplication_FailureLeavesCollectionUntouched(t *testing.T) {
	client := platform.NewStubClient()
	client.Applications = []model.Application{
		testutil.NewApplication("app-1", "job-1").Build(),
	}
	s := newTestStore(t, client)

	s.LoginUser(context.Background(), validCreds())
	s.FetchApplications(context.Background())

	client.SubmitApplicationFunc = func(context.Context, model.SubmitApplicationRequest) (model.Application, error) {
		return model.Application{}, apperrors.Server("job listing closed")
	}
	s.SubmitApplication(context.Background(), "job-2", nil)

	state := s.GetState().Applications
	assert.Len(t, state.Items, 1)
	assert.Equal(t, StatusFailed, state.Status)
	assert.Equal(t, "job listing closed", state.Error)
}

func TestSubmitApplication_MissingJobIDIgnored(t *testing.T) {
	client := platform.NewStubClient()
	s := newTestStore(t, client)

	s.LoginUser(context.Background(), validCreds())
	s.SubmitApplication(context.Background(), "", nil)

	assert.Zero(t, client.Calls("SubmitApplication"))
}

func TestReduceApplications_ClearInvalidatesInFlightFetch(t *testing.T) {
	s := newTestStore(t, nil)

	s.Dispatch(ApplicationsFetchStarted{Token: 7})
	s.Dispatch(ApplicationsCleared{})

	// A completion for the cleared user arrives late and must not land.
	s.Dispatch(ApplicationsFetchSucceeded{Token: 7, Items: []model.Application{
		testutil.NewApplication("app-1", "job-1").Build(),
	}})

	state := s.GetState().Applications
	assert.Empty(t, state.Items)
	assert.Equal(t, StatusIdle, state.Status)
}
