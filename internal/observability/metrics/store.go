// Package metrics emits standardized state-core lifecycle metrics.
package metrics

import (
	"time"

	obserrors "github.com/openhire/mobile-core/internal/observability/errors"
	"github.com/openhire/mobile-core/internal/observability/statsd"
)

// Result constants for metric tagging.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// FetchMetric captures one resolved container fetch for metric emission.
type FetchMetric struct {
	Container string
	Duration  time.Duration
	Err       error
}

// EmitFetch emits a count and timing for a resolved fetch, tagged by
// container and result. Failures additionally carry an error class tag.
func EmitFetch(sink statsd.Sink, in FetchMetric) {
	if sink == nil {
		return
	}

	result := ResultSuccess
	tags := map[string]string{
		"container": in.Container,
	}
	if in.Err != nil {
		result = ResultError
		if class := obserrors.Classify(in.Err); class != "" {
			tags["error_class"] = class
		}
	}
	tags["result"] = result

	sink.Count("fetch.resolved", 1, tags)
	if in.Duration > 0 {
		sink.Timing("fetch.duration", in.Duration, tags)
	}
}
