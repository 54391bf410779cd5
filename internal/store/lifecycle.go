package store

// LifecycleStatus is the progression of an asynchronous operation.
// Exactly one of pending, succeeded, or failed holds for the most recent
// operation; idle means no operation has run yet.
type LifecycleStatus string

const (
	StatusIdle      LifecycleStatus = "idle"
	StatusPending   LifecycleStatus = "pending"
	StatusSucceeded LifecycleStatus = "succeeded"
	StatusFailed    LifecycleStatus = "failed"
)

// Lifecycle is the cross-cutting fetch-lifecycle shape shared by the
// async-backed containers. Preferences carries it too for shape
// uniformity, but never moves it off idle.
type Lifecycle struct {
	Status LifecycleStatus `json:"status"`
	// Error is the user-facing message for the last failure, empty when
	// none. Clearing it is an explicit operation, never implicit.
	Error string `json:"error,omitempty"`
}

// IsLoading reports whether an operation is in flight.
func (l Lifecycle) IsLoading() bool { return l.Status == StatusPending }

func idleLifecycle() Lifecycle { return Lifecycle{Status: StatusIdle} }
