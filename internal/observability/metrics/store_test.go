package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openhire/mobile-core/internal/apperrors"
)

type recordedMetric struct {
	name  string
	value int64
	ms    time.Duration
	tags  map[string]string
}

type recordingSink struct {
	counts  []recordedMetric
	timings []recordedMetric
}

func (s *recordingSink) Count(name string, value int64, tags map[string]string) {
	s.counts = append(s.counts, recordedMetric{name: name, value: value, tags: tags})
}

func (s *recordingSink) Timing(name string, value time.Duration, tags map[string]string) {
	s.timings = append(s.timings, recordedMetric{name: name, ms: value, tags: tags})
}

func TestEmitFetch_Success(t *testing.T) {
	sink := &recordingSink{}

	EmitFetch(sink, FetchMetric{
		Container: "listings",
		Duration:  40 * time.Millisecond,
	})

	require.Len(t, sink.counts, 1)
	assert.Equal(t, "fetch.resolved", sink.counts[0].name)
	assert.Equal(t, int64(1), sink.counts[0].value)
	assert.Equal(t, "listings", sink.counts[0].tags["container"])
	assert.Equal(t, ResultSuccess, sink.counts[0].tags["result"])
	assert.NotContains(t, sink.counts[0].tags, "error_class")

	require.Len(t, sink.timings, 1)
	assert.Equal(t, "fetch.duration", sink.timings[0].name)
	assert.Equal(t, 40*time.Millisecond, sink.timings[0].ms)
}

func TestEmitFetch_ErrorCarriesClass(t *testing.T) {
	sink := &recordingSink{}

	EmitFetch(sink, FetchMetric{
		Container: "applications",
		Duration:  10 * time.Millisecond,
		Err:       apperrors.Transport("dial tcp: network unreachable"),
	})

	require.Len(t, sink.counts, 1)
	tags := sink.counts[0].tags
	assert.Equal(t, "applications", tags["container"])
	assert.Equal(t, ResultError, tags["result"])
	assert.NotEmpty(t, tags["error_class"])
}

func TestEmitFetch_ZeroDurationSkipsTiming(t *testing.T) {
	sink := &recordingSink{}

	EmitFetch(sink, FetchMetric{Container: "session"})

	assert.Len(t, sink.counts, 1)
	assert.Empty(t, sink.timings)
}

func TestEmitFetch_NilSinkIsNoOp(t *testing.T) {
	EmitFetch(nil, FetchMetric{Container: "session"})
}
