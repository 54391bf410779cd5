// Package memstore is the in-memory storage driver used in development
// and tests. Nothing survives process exit.
package memstore

import (
	"context"
	"sync"

	"github.com/openhire/mobile-core/internal/apperrors"
	"github.com/openhire/mobile-core/internal/ports"
)

// Store implements ports.StorageDriver in memory.
type Store struct {
	mu   sync.Mutex
	data []byte
	set  bool

	// SaveErr and LoadErr, when non-nil, are returned by the matching
	// operation. Tests use them to simulate storage failures.
	SaveErr error
	LoadErr error
}

var _ ports.StorageDriver = (*Store)(nil)

// New returns an empty store.
func New() *Store { return &Store{} }

// Seed pre-populates the record, as if a prior run had saved it.
func (s *Store) Seed(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	s.set = true
}

// Bytes reports the current record and whether one is set.
func (s *Store) Bytes() ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return nil, false
	}
	return append([]byte(nil), s.data...), true
}

func (s *Store) Load(_ context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if !s.set {
		return nil, apperrors.NotFound("no persisted record")
	}
	return append([]byte(nil), s.data...), nil
}

func (s *Store) Save(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.data = append([]byte(nil), data...)
	s.set = true
	return nil
}

func (s *Store) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	s.set = false
	return nil
}

func (s *Store) Close() error { return nil }
