package ports

import "context"

// StorageDriver reads and writes the single durable record that mirrors
// the persistence whitelist. The record is an opaque byte payload keyed by
// a fixed namespace chosen at construction; internal/persist owns its
// shape and versioning.
type StorageDriver interface {
	// Load returns the stored record. A missing record is reported as an
	// apperrors NotFound error, which rehydration treats as first launch.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the stored record.
	Save(ctx context.Context, data []byte) error

	// Delete removes the stored record.
	Delete(ctx context.Context) error

	// Close releases driver resources.
	Close() error
}
