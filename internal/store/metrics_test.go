package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhire/mobile-core/internal/apperrors"
	"github.com/openhire/mobile-core/internal/domain/model"
	"github.com/openhire/mobile-core/internal/mocks/platform"
)

type sinkCall struct {
	name string
	tags map[string]string
}

// fakeSink records emissions; the store may emit from effect goroutines,
// so access is locked.
type fakeSink struct {
	mu      sync.Mutex
	counts  []sinkCall
	timings []sinkCall
}

func (s *fakeSink) Count(name string, _ int64, tags map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts = append(s.counts, sinkCall{name: name, tags: tags})
}

func (s *fakeSink) Timing(name string, _ time.Duration, tags map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timings = append(s.timings, sinkCall{name: name, tags: tags})
}

func (s *fakeSink) countsNamed(name string) []sinkCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []sinkCall
	for _, c := range s.counts {
		if c.name == name {
			out = append(out, c)
		}
	}
	return out
}

func newMeteredStore(client *platform.StubClient, sink *fakeSink) *Store {
	if client == nil {
		client = platform.NewStubClient()
	}
	return New(Options{
		Client:  client,
		Logger:  testLogger(),
		Metrics: sink,
	})
}

func TestDispatch_EmitsIntentDispatched(t *testing.T) {
	sink := &fakeSink{}
	s := newMeteredStore(nil, sink)

	s.Dispatch(ThemeChanged{Theme: model.ThemeDark})
	// Theme is already dark; the reducer reports no change.
	s.Dispatch(ThemeChanged{Theme: model.ThemeDark})

	calls := sink.countsNamed("intent.dispatched")
	require.Len(t, calls, 2)
	assert.Equal(t, "preferences", calls[0].tags["container"])
	assert.Equal(t, "true", calls[0].tags["applied"])
	assert.Equal(t, "false", calls[1].tags["applied"])
}

func TestFetchListings_EmitsResolvedSuccess(t *testing.T) {
	sink := &fakeSink{}
	s := newMeteredStore(nil, sink)

	s.FetchListings(context.Background())

	calls := sink.countsNamed("fetch.resolved")
	require.Len(t, calls, 1)
	assert.Equal(t, "listings", calls[0].tags["container"])
	assert.Equal(t, "success", calls[0].tags["result"])
	assert.NotContains(t, calls[0].tags, "error_class")
}

func TestFetchListings_EmitsResolvedErrorWithClass(t *testing.T) {
	client := platform.NewStubClient()
	client.ListJobsFunc = func(context.Context, model.ListingsQuery) ([]model.JobListing, error) {
		return nil, apperrors.Transport("dial tcp: network unreachable")
	}
	sink := &fakeSink{}
	s := newMeteredStore(client, sink)

	s.FetchListings(context.Background())

	calls := sink.countsNamed("fetch.resolved")
	require.Len(t, calls, 1)
	assert.Equal(t, "error", calls[0].tags["result"])
	assert.NotEmpty(t, calls[0].tags["error_class"])
}
