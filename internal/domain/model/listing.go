// Package model defines the core data types used throughout the mobile state core.
package model

import "time"

// JobType represents the employment type of a listing.
type JobType string

const (
	JobTypeFullTime JobType = "full_time"
	JobTypePartTime JobType = "part_time"
	JobTypeContract JobType = "contract"
	JobTypeIntern   JobType = "internship"
)

// Valid returns true if the JobType is a known value. The empty value is
// also accepted so queries can leave the type unconstrained.
func (t JobType) Valid() bool {
	return t == "" || t == JobTypeFullTime || t == JobTypePartTime ||
		t == JobTypeContract || t == JobTypeIntern
}

// JobListing is a single job posting as returned by the platform API.
// Listings are immutable once fetched; a refetch replaces the collection
// wholesale.
type JobListing struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Type           JobType   `json:"type"`
	Salary         int       `json:"salary"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"required_skills"`
	PostedAt       time.Time `json:"posted_at"`
}

// ListingsQuery is the active filter set for the listings collection.
// Changing the query does not refetch listings; an explicit fetch carries
// the query to the API and the derived view layer applies it locally.
type ListingsQuery struct {
	Location  string  `json:"location,omitempty"`
	Type      JobType `json:"type,omitempty"`
	SalaryMin int     `json:"salary_min,omitempty"`
	Text      string  `json:"q,omitempty"`
}

// Validate checks the query is well-formed.
func (q ListingsQuery) Validate() error {
	if !q.Type.Valid() {
		return errInvalidJobType
	}
	if q.SalaryMin < 0 {
		return errNegativeSalaryFloor
	}
	return nil
}

// IsZero reports whether the query constrains nothing.
func (q ListingsQuery) IsZero() bool {
	return q == ListingsQuery{}
}
