package store

import (
	"context"
	"time"

	"github.com/openhire/mobile-core/internal/apperrors"
	"github.com/openhire/mobile-core/internal/domain/model"
)

// Applications container intents.

// ApplicationsFetchStarted marks an applications fetch as in flight.
type ApplicationsFetchStarted struct {
	Token uint64
}

// ApplicationsFetchSucceeded replaces the application collection wholesale.
type ApplicationsFetchSucceeded struct {
	Token uint64
	Items []model.Application
}

// ApplicationsFetchFailed records the classified failure and leaves the
// previously held collection untouched.
type ApplicationsFetchFailed struct {
	Token   uint64
	Message string
}

// ApplicationSubmitted appends the server-confirmed application returned
// by a submit call.
type ApplicationSubmitted struct {
	Token       uint64
	Application model.Application
}

// ApplicationsCleared drops all user-scoped application data. Dispatched
// as part of logout; it also invalidates any in-flight fetch token so a
// late completion for the previous user is discarded.
type ApplicationsCleared struct{}

func (ApplicationsFetchStarted) slice() Slice   { return SliceApplications }
func (ApplicationsFetchSucceeded) slice() Slice { return SliceApplications }
func (ApplicationsFetchFailed) slice() Slice    { return SliceApplications }
func (ApplicationSubmitted) slice() Slice       { return SliceApplications }
func (ApplicationsCleared) slice() Slice        { return SliceApplications }

// reduceApplications is the pure update function for the applications slice.
func reduceApplications(prev ApplicationsState, intent Intent) (ApplicationsState, bool) {
	next := prev
	switch in := intent.(type) {
	case ApplicationsFetchStarted:
		next.FetchToken = in.Token
		next.Status = StatusPending
		next.Error = ""

	case ApplicationsFetchSucceeded:
		if in.Token != prev.FetchToken {
			return prev, false
		}
		next.Items = in.Items
		next.Status = StatusSucceeded
		next.Error = ""

	case ApplicationsFetchFailed:
		if in.Token != prev.FetchToken {
			return prev, false
		}
		next.Status = StatusFailed
		next.Error = in.Message

	case ApplicationSubmitted:
		if in.Token != prev.FetchToken {
			return prev, false
		}
		items := make([]model.Application, 0, len(prev.Items)+1)
		items = append(items, prev.Items...)
		items = append(items, in.Application)
		next.Items = items
		next.Status = StatusSucceeded
		next.Error = ""

	case ApplicationsCleared:
		next = ApplicationsState{Lifecycle: idleLifecycle()}

	default:
		return prev, false
	}

	next.Revision = prev.Revision + 1
	return next, true
}

// FetchApplications fetches the signed-in user's applications.
func (s *Store) FetchApplications(ctx context.Context) {
	session := s.GetState().Session
	if !session.Authenticated() {
		s.rejectParams(ctx, "fetch applications", apperrors.Validation("not authenticated"))
		return
	}

	token := s.applicationsSeq.Add(1)
	s.Dispatch(ApplicationsFetchStarted{Token: token})

	start := time.Now()
	items, err := s.client.ListApplications(ctx, session.User.ID)
	s.emitFetch("applications", start, err)
	if err != nil {
		s.logger.WarnContext(ctx, "applications fetch failed", "error", err)
		s.Dispatch(ApplicationsFetchFailed{Token: token, Message: apperrors.UserMessage(err)})
		s.forceLogoutOnUnauthorized(err)
		return
	}

	s.Dispatch(ApplicationsFetchSucceeded{Token: token, Items: items})
}

// SubmitApplication submits an application for a job on behalf of the
// signed-in user and appends the confirmed record on success.
func (s *Store) SubmitApplication(ctx context.Context, jobID string, documentIDs []string) {
	session := s.GetState().Session
	if !session.Authenticated() {
		s.rejectParams(ctx, "submit application", apperrors.Validation("not authenticated"))
		return
	}

	req := model.SubmitApplicationRequest{
		JobID:       jobID,
		UserID:      session.User.ID,
		DocumentIDs: documentIDs,
	}
	if err := req.Validate(); err != nil {
		s.rejectParams(ctx, "submit application", err)
		return
	}

	token := s.applicationsSeq.Add(1)
	s.Dispatch(ApplicationsFetchStarted{Token: token})

	start := time.Now()
	app, err := s.client.SubmitApplication(ctx, req)
	s.emitFetch("applications", start, err)
	if err != nil {
		s.logger.WarnContext(ctx, "application submit failed", "error", err, "job_id", jobID)
		s.Dispatch(ApplicationsFetchFailed{Token: token, Message: apperrors.UserMessage(err)})
		s.forceLogoutOnUnauthorized(err)
		return
	}

	s.Dispatch(ApplicationSubmitted{Token: token, Application: app})
}
