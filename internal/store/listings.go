package store

import (
	"context"
	"time"

	"github.com/openhire/mobile-core/internal/apperrors"
	"github.com/openhire/mobile-core/internal/domain/model"
)

// Listings container intents.

// ListingsQueryChanged replaces the active filter set. It does not refetch
// by itself; callers refetch explicitly with FetchListings.
type ListingsQueryChanged struct {
	Query model.ListingsQuery
}

// ListingsFetchStarted marks a listings fetch as in flight.
type ListingsFetchStarted struct {
	Token uint64
}

// ListingsFetchSucceeded replaces the listing collection wholesale. No
// partial merge: replacement avoids orphaned stale entries.
type ListingsFetchSucceeded struct {
	Token uint64
	Items []model.JobListing
}

// ListingsFetchFailed records the classified failure and leaves the
// previously held collection untouched (stale-but-available over empty).
type ListingsFetchFailed struct {
	Token   uint64
	Message string
}

func (ListingsQueryChanged) slice() Slice   { return SliceListings }
func (ListingsFetchStarted) slice() Slice   { return SliceListings }
func (ListingsFetchSucceeded) slice() Slice { return SliceListings }
func (ListingsFetchFailed) slice() Slice    { return SliceListings }

// reduceListings is the pure update function for the listings slice.
func reduceListings(prev ListingsState, intent Intent) (ListingsState, bool) {
	next := prev
	switch in := intent.(type) {
	case ListingsQueryChanged:
		if in.Query == prev.Query {
			return prev, false
		}
		next.Query = in.Query

	case ListingsFetchStarted:
		next.FetchToken = in.Token
		next.Status = StatusPending
		next.Error = ""

	case ListingsFetchSucceeded:
		if in.Token != prev.FetchToken {
			return prev, false
		}
		next.Items = in.Items
		next.Status = StatusSucceeded
		next.Error = ""

	case ListingsFetchFailed:
		if in.Token != prev.FetchToken {
			return prev, false
		}
		next.Status = StatusFailed
		next.Error = in.Message

	default:
		return prev, false
	}

	next.Revision = prev.Revision + 1
	return next, true
}

// SetListingsQuery validates and installs a new filter set.
func (s *Store) SetListingsQuery(ctx context.Context, query model.ListingsQuery) {
	if err := query.Validate(); err != nil {
		s.rejectParams(ctx, "set listings query", err)
		return
	}
	s.Dispatch(ListingsQueryChanged{Query: query})
}

// FetchListings fetches listings matching the active query and resolves
// the lifecycle. Two overlapping fetches settle last-resolved-wins: the
// reducer discards any completion carrying a superseded request token.
func (s *Store) FetchListings(ctx context.Context) {
	query := s.GetState().Listings.Query
	token := s.listingsSeq.Add(1)
	s.Dispatch(ListingsFetchStarted{Token: token})

	start := time.Now()
	items, err := s.client.ListJobs(ctx, query)
	s.emitFetch("listings", start, err)
	if err != nil {
		s.logger.WarnContext(ctx, "listings fetch failed", "error", err)
		s.Dispatch(ListingsFetchFailed{Token: token, Message: apperrors.UserMessage(err)})
		s.forceLogoutOnUnauthorized(err)
		return
	}

	s.Dispatch(ListingsFetchSucceeded{Token: token, Items: items})
}
