// Package views computes read-only views over raw container state without
// mutating or duplicating it. Selectors are deterministic and memoized:
// two calls over unchanged source state return the identical value, so
// consuming layers can skip work by comparing references.
//
// Memoization keys off the per-container revision counters the reducers
// bump on every change. Containers replace their collections wholesale,
// so an unchanged revision implies unchanged backing data.
package views

import (
	"strings"

	"github.com/openhire/mobile-core/internal/domain/model"
	"github.com/openhire/mobile-core/internal/store"
)

// ListingWithApplication is a job listing joined with the caller's
// application for it, if one exists. HasApplication distinguishes "no
// application" from zero values.
type ListingWithApplication struct {
	Listing        model.JobListing
	HasApplication bool
	ApplicationID  string
	Status         model.ApplicationStatus
}

// ApplicationStats aggregates application counts by status.
type ApplicationStats struct {
	Total    int
	ByStatus map[model.ApplicationStatus]int
}

// Selectors holds the memo cells for the derived views. One instance per
// store; it is not safe for concurrent use (consume it from the same
// logical thread that observes the store, as view layers do).
type Selectors struct {
	filtered struct {
		revision uint64
		valid    bool
		result   []model.JobListing
	}
	joined struct {
		listingsRev     uint64
		applicationsRev uint64
		valid           bool
		result          map[string]ListingWithApplication
	}
	stats struct {
		revision uint64
		valid    bool
		result   ApplicationStats
	}
}

// NewSelectors constructs an empty selector set.
func NewSelectors() *Selectors {
	return &Selectors{}
}

// FilteredListings applies the active query against the raw listing
// collection: case-insensitive text match over title and company, exact
// match on location and type, and a salary floor.
func (s *Selectors) FilteredListings(state store.State) []model.JobListing {
	ls := state.Listings
	if s.filtered.valid && s.filtered.revision == ls.Revision {
		return s.filtered.result
	}

	result := filterListings(ls.Items, ls.Query)

	s.filtered.revision = ls.Revision
	s.filtered.valid = true
	s.filtered.result = result
	return result
}

// ListingWithApplicationStatus joins one listing with the application
// referencing it. The second return is false when the listing ID is
// unknown; a known listing without an application is returned with
// HasApplication false and the application fields left empty.
func (s *Selectors) ListingWithApplicationStatus(state store.State, listingID string) (ListingWithApplication, bool) {
	ls, as := state.Listings, state.Applications
	if !s.joined.valid || s.joined.listingsRev != ls.Revision || s.joined.applicationsRev != as.Revision {
		s.joined.result = joinListings(ls.Items, as.Items)
		s.joined.listingsRev = ls.Revision
		s.joined.applicationsRev = as.Revision
		s.joined.valid = true
	}

	joined, ok := s.joined.result[listingID]
	return joined, ok
}

// UserApplicationStats aggregates application counts by status.
func (s *Selectors) UserApplicationStats(state store.State) ApplicationStats {
	as := state.Applications
	if s.stats.valid && s.stats.revision == as.Revision {
		return s.stats.result
	}

	stats := ApplicationStats{ByStatus: make(map[model.ApplicationStatus]int)}
	for _, app := range as.Items {
		stats.Total++
		stats.ByStatus[app.Status]++
	}

	s.stats.revision = as.Revision
	s.stats.valid = true
	s.stats.result = stats
	return stats
}

func filterListings(items []model.JobListing, query model.ListingsQuery) []model.JobListing {
	if query.IsZero() {
		return items
	}

	text := strings.ToLower(strings.TrimSpace(query.Text))
	result := make([]model.JobListing, 0, len(items))
	for _, item := range items {
		if query.Location != "" && item.Location != query.Location {
			continue
		}
		if query.Type != "" && item.Type != query.Type {
			continue
		}
		if query.SalaryMin > 0 && item.Salary < query.SalaryMin {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(item.Title), text) &&
			!strings.Contains(strings.ToLower(item.Company), text) {
			continue
		}
		result = append(result, item)
	}
	return result
}

// joinListings indexes applications by job ID, then annotates each
// listing. An application referencing an unknown listing is ignored here;
// it still counts in UserApplicationStats.
func joinListings(listings []model.JobListing, applications []model.Application) map[string]ListingWithApplication {
	byJob := make(map[string]model.Application, len(applications))
	for _, app := range applications {
		byJob[app.JobID] = app
	}

	result := make(map[string]ListingWithApplication, len(listings))
	for _, listing := range listings {
		entry := ListingWithApplication{Listing: listing}
		if app, ok := byJob[listing.ID]; ok {
			entry.HasApplication = true
			entry.ApplicationID = app.ID
			entry.Status = app.Status
		}
		result[listing.ID] = entry
	}
	return result
}
