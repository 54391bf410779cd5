package model

import (
	"errors"
	"time"
)

// ApplicationStatus represents the last known server-side status of an
// application. Transitions are driven by the platform; the client only
// reflects the most recent value it has seen.
type ApplicationStatus string

const (
	ApplicationStatusSubmitted          ApplicationStatus = "submitted"
	ApplicationStatusUnderReview        ApplicationStatus = "under_review"
	ApplicationStatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	ApplicationStatusOfferExtended      ApplicationStatus = "offer_extended"
	ApplicationStatusAccepted           ApplicationStatus = "accepted"
	ApplicationStatusRejected           ApplicationStatus = "rejected"
	ApplicationStatusDeclined           ApplicationStatus = "declined"
)

// Valid returns true if the ApplicationStatus is a known value.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusUnderReview,
		ApplicationStatusInterviewScheduled, ApplicationStatusOfferExtended,
		ApplicationStatusAccepted, ApplicationStatusRejected,
		ApplicationStatusDeclined:
		return true
	}
	return false
}

// Application is one job application. JobID is a lookup reference to a
// JobListing, never an embedded copy; derived views join the two at read
// time.
type Application struct {
	ID          string            `json:"id"`
	JobID       string            `json:"job_id"`
	UserID      string            `json:"user_id"`
	Status      ApplicationStatus `json:"status"`
	AppliedAt   time.Time         `json:"applied_at"`
	DocumentIDs []string          `json:"document_ids,omitempty"`
}

// SubmitApplicationRequest is the client-side request to apply for a job.
type SubmitApplicationRequest struct {
	JobID       string   `json:"job_id"`
	UserID      string   `json:"user_id"`
	DocumentIDs []string `json:"document_ids,omitempty"`
}

// Validate validates the SubmitApplicationRequest fields.
func (r SubmitApplicationRequest) Validate() error {
	if r.JobID == "" {
		return errors.New("job ID is required")
	}
	if r.UserID == "" {
		return errors.New("user ID is required")
	}
	return nil
}

var (
	errInvalidJobType      = errors.New("invalid job type")
	errNegativeSalaryFloor = errors.New("salary floor must be >= 0")
)
