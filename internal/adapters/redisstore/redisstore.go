// Package redisstore persists the durable record in Redis, keyed per
// device. This backs cloud-synced clients where the record must survive a
// reinstall and follow the device identity rather than the filesystem.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/openhire/mobile-core/internal/apperrors"
	"github.com/openhire/mobile-core/internal/ports"
)

const defaultPrefix = "mobilecore:state:"

// Store implements ports.StorageDriver over a single Redis key.
type Store struct {
	client redis.UniversalClient
	key    string
}

var _ ports.StorageDriver = (*Store)(nil)

// New returns a store writing to defaultPrefix + namespace.
func New(client redis.UniversalClient, namespace string) (*Store, error) {
	return NewWithPrefix(client, defaultPrefix, namespace)
}

// NewWithPrefix returns a store with a custom key prefix.
func NewWithPrefix(client redis.UniversalClient, prefix, namespace string) (*Store, error) {
	if namespace == "" {
		return nil, apperrors.Validation("namespace must be provided")
	}
	return &Store{client: client, key: prefix + namespace}, nil
}

// Load reads the record, mapping a missing key to NotFound.
func (s *Store) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NotFound(fmt.Sprintf("no record at %s", s.key))
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodePersistence, "redis get")
	}
	return data, nil
}

// Save replaces the record. The record never expires; logout clears it
// explicitly through the persistence boundary.
func (s *Store) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodePersistence, "redis set")
	}
	return nil
}

// Delete removes the record.
func (s *Store) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodePersistence, "redis del")
	}
	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
