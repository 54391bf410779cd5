// Package sqlitestore persists the durable record in a SQLite database.
// This is the driver for platforms where the app already carries a
// SQLite file and single-file JSON would be one more thing to back up.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/openhire/mobile-core/internal/apperrors"
	"github.com/openhire/mobile-core/internal/ports"
)

// Store implements ports.StorageDriver over a single-row namespace table.
type Store struct {
	db        *sql.DB
	namespace string
}

var _ ports.StorageDriver = (*Store)(nil)

// New opens (or creates) the database at dbPath and prepares the record
// table. Use ":memory:" for tests. namespace keys the record so several
// stores can share one database file.
func New(dbPath, namespace string) (*Store, error) {
	if dbPath == "" {
		return nil, apperrors.Validation("database path must be provided")
	}
	if namespace == "" {
		return nil, apperrors.Validation("namespace must be provided")
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodePersistence, "open sqlite database")
	}

	schema := `
	CREATE TABLE IF NOT EXISTS app_state (
		namespace TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, apperrors.Wrap(err, apperrors.ErrCodePersistence, "initialize schema")
	}

	return &Store{db: db, namespace: namespace}, nil
}

// Load reads the record for the namespace.
func (s *Store) Load(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM app_state WHERE namespace = ?", s.namespace,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound(fmt.Sprintf("no record for namespace %s", s.namespace))
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodePersistence, "query record")
	}
	return payload, nil
}

// Save upserts the record for the namespace.
func (s *Store) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO app_state (namespace, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(namespace) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		s.namespace, data, time.Now().Unix(),
	)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodePersistence, "upsert record")
	}
	return nil
}

// Delete removes the record for the namespace.
func (s *Store) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM app_state WHERE namespace = ?", s.namespace,
	); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodePersistence, "delete record")
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
