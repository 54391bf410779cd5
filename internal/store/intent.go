package store

// Slice names an independently owned region of the state tree. Subscribers
// pick the slice they care about so consumers only react to relevant
// changes.
type Slice string

const (
	SliceSession      Slice = "session"
	SliceListings     Slice = "listings"
	SliceApplications Slice = "applications"
	SlicePreferences  Slice = "preferences"
	// SliceAny subscribes to every change of the tree.
	SliceAny Slice = "any"
)

// Intent is a described request to change state. The set of intents is
// closed: each container declares its own variants in its file, and the
// reducer switch over them is exhaustive. External triggers never
// construct completion intents directly; effects do.
type Intent interface {
	// slice identifies the container owning this intent.
	slice() Slice
}
