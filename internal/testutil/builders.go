package testutil

import (
	"time"

	"github.com/openhire/mobile-core/internal/domain/model"
)

// ListingBuilder provides a fluent interface for building JobListing
// objects for testing.
type ListingBuilder struct {
	listing model.JobListing
}

// NewListing creates a ListingBuilder with sensible defaults.
func NewListing(id string) *ListingBuilder {
	return &ListingBuilder{
		listing: model.JobListing{
			ID:       id,
			Title:    "Backend Engineer",
			Company:  "OpenHire",
			Location: "Remote",
			Type:     model.JobTypeFullTime,
			Salary:   120000,
			PostedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// WithTitle sets the listing title.
func (b *ListingBuilder) WithTitle(title string) *ListingBuilder {
	b.listing.Title = title
	return b
}

// WithCompany sets the company name.
func (b *ListingBuilder) WithCompany(company string) *ListingBuilder {
	b.listing.Company = company
	return b
}

// WithLocation sets the listing location.
func (b *ListingBuilder) WithLocation(location string) *ListingBuilder {
	b.listing.Location = location
	return b
}

// WithType sets the employment type.
func (b *ListingBuilder) WithType(t model.JobType) *ListingBuilder {
	b.listing.Type = t
	return b
}

// WithSalary sets the listing salary.
func (b *ListingBuilder) WithSalary(salary int) *ListingBuilder {
	b.listing.Salary = salary
	return b
}

// Build returns the constructed listing.
func (b *ListingBuilder) Build() model.JobListing {
	return b.listing
}

// ApplicationBuilder provides a fluent interface for building Application
// objects for testing.
type ApplicationBuilder struct {
	app model.Application
}

// NewApplication creates an ApplicationBuilder with sensible defaults.
func NewApplication(id, jobID string) *ApplicationBuilder {
	return &ApplicationBuilder{
		app: model.Application{
			ID:        id,
			JobID:     jobID,
			UserID:    "user-1",
			Status:    model.ApplicationStatusSubmitted,
			AppliedAt: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		},
	}
}

// WithUser sets the applicant's user ID.
func (b *ApplicationBuilder) WithUser(userID string) *ApplicationBuilder {
	b.app.UserID = userID
	return b
}

// WithStatus sets the application status.
func (b *ApplicationBuilder) WithStatus(status model.ApplicationStatus) *ApplicationBuilder {
	b.app.Status = status
	return b
}

// WithDocuments sets the attached document IDs.
func (b *ApplicationBuilder) WithDocuments(ids ...string) *ApplicationBuilder {
	b.app.DocumentIDs = ids
	return b
}

// Build returns the constructed application.
func (b *ApplicationBuilder) Build() model.Application {
	return b.app
}
