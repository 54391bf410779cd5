// Package ports defines interfaces (hexagonal ports) for the state core's
// external collaborators. Implementations live in internal/adapters;
// orchestration in internal/store and internal/persist.
package ports

import (
	"context"

	domainauth "github.com/openhire/mobile-core/internal/domain/auth"
	"github.com/openhire/mobile-core/internal/domain/model"
)

// AuthResult is the platform response to a successful login.
type AuthResult struct {
	User  domainauth.Profile
	Token string
}

// PlatformClient talks to the remote job-platform API. Implementations
// classify failures with the apperrors taxonomy so the store can route
// unauthorized responses through the forced-logout path.
type PlatformClient interface {
	// Authenticate exchanges credentials for a profile and an opaque
	// credential token.
	Authenticate(ctx context.Context, creds domainauth.Credentials) (AuthResult, error)

	// ListJobs returns the listings matching the query, in server order.
	ListJobs(ctx context.Context, query model.ListingsQuery) ([]model.JobListing, error)

	// ListApplications returns all applications belonging to a user.
	ListApplications(ctx context.Context, userID string) ([]model.Application, error)

	// SubmitApplication creates an application and returns the
	// server-confirmed record.
	SubmitApplication(ctx context.Context, req model.SubmitApplicationRequest) (model.Application, error)
}
