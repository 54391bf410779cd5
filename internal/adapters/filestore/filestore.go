// Package filestore persists the durable record as a single file on the
// device. Writes go through a temporary file plus rename so a crash
// mid-write never leaves a torn record behind.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/openhire/mobile-core/internal/apperrors"
	"github.com/openhire/mobile-core/internal/ports"
)

// Store implements ports.StorageDriver over one file.
type Store struct {
	path string
	mu   sync.Mutex
}

var _ ports.StorageDriver = (*Store)(nil)

// New creates the parent directory if needed and returns a store writing
// to path.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, apperrors.Validation("storage path must be provided")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodePersistence, "create storage directory")
	}
	return &Store{path: path}, nil
}

// Load reads the record, mapping a missing file to NotFound.
func (s *Store) Load(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NotFound("no persisted record")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodePersistence, "read persisted record")
	}
	return data, nil
}

// Save replaces the record atomically via a sibling temp file.
func (s *Store) Save(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodePersistence, "write temporary record")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodePersistence, fmt.Sprintf("replace record at %s", s.path))
	}
	return nil
}

// Delete removes the record; deleting an absent record is not an error.
func (s *Store) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return apperrors.Wrap(err, apperrors.ErrCodePersistence, "remove persisted record")
	}
	return nil
}

// Close is a no-op; the store holds no open handles between calls.
func (s *Store) Close() error { return nil }
