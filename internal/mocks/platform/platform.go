// Package platform contains simple hand-written test doubles for the
// platform port. These are lightweight and suitable for unit tests
// without codegen.
package platform

import (
	"context"
	"sync"
	"time"

	domainauth "github.com/openhire/mobile-core/internal/domain/auth"
	"github.com/openhire/mobile-core/internal/domain/model"
	"github.com/openhire/mobile-core/internal/ports"
)

// Ensure compile-time conformance to ports.
var _ ports.PlatformClient = (*StubClient)(nil)

// StubClient simulates the platform API for tests with deterministic
// defaults. Any Func field overrides the default behavior for that call.
type StubClient struct {
	AuthenticateFunc      func(ctx context.Context, creds domainauth.Credentials) (ports.AuthResult, error)
	ListJobsFunc          func(ctx context.Context, query model.ListingsQuery) ([]model.JobListing, error)
	ListApplicationsFunc  func(ctx context.Context, userID string) ([]model.Application, error)
	SubmitApplicationFunc func(ctx context.Context, req model.SubmitApplicationRequest) (model.Application, error)

	// Deterministic values for predictable testing
	Token        string
	User         domainauth.Profile
	Listings     []model.JobListing
	Applications []model.Application

	mu    sync.Mutex
	calls map[string]int
}

// NewStubClient creates a StubClient with sensible defaults.
func NewStubClient() *StubClient {
	return &StubClient{
		Token: "token-1",
		User: domainauth.Profile{
			ID:          "user-1",
			Email:       "stub.user@example.com",
			DisplayName: "Stub User",
			Role:        domainauth.RoleJobSeeker,
		},
		Listings: []model.JobListing{
			{
				ID:       "job-1",
				Title:    "Backend Engineer",
				Company:  "OpenHire",
				Location: "Remote",
				Type:     model.JobTypeFullTime,
				Salary:   120000,
				PostedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		calls: make(map[string]int),
	}
}

// Calls reports how many times a method was invoked.
func (c *StubClient) Calls(method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[method]
}

func (c *StubClient) record(method string) {
	c.mu.Lock()
	c.calls[method]++
	c.mu.Unlock()
}

func (c *StubClient) Authenticate(ctx context.Context, creds domainauth.Credentials) (ports.AuthResult, error) {
	c.record("Authenticate")
	if c.AuthenticateFunc != nil {
		return c.AuthenticateFunc(ctx, creds)
	}
	return ports.AuthResult{User: c.User, Token: c.Token}, nil
}

func (c *StubClient) ListJobs(ctx context.Context, query model.ListingsQuery) ([]model.JobListing, error) {
	c.record("ListJobs")
	if c.ListJobsFunc != nil {
		return c.ListJobsFunc(ctx, query)
	}
	return c.Listings, nil
}

func (c *StubClient) ListApplications(ctx context.Context, userID string) ([]model.Application, error) {
	c.record("ListApplications")
	if c.ListApplicationsFunc != nil {
		return c.ListApplicationsFunc(ctx, userID)
	}
	return c.Applications, nil
}

func (c *StubClient) SubmitApplication(ctx context.Context, req model.SubmitApplicationRequest) (model.Application, error) {
	c.record("SubmitApplication")
	if c.SubmitApplicationFunc != nil {
		return c.SubmitApplicationFunc(ctx, req)
	}
	return model.Application{
		ID:          "app-1",
		JobID:       req.JobID,
		UserID:      req.UserID,
		Status:      model.ApplicationStatusSubmitted,
		AppliedAt:   time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		DocumentIDs: req.DocumentIDs,
	}, nil
}
