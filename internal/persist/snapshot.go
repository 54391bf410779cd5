// Package persist mirrors the whitelisted subset of the state tree
// (Session, Preferences) in durable device storage. Listings and
// Applications are always refetched fresh and never appear in the
// persisted record: staleness there is more harmful than an extra
// network round trip.
package persist

import (
	"encoding/json"
	"time"

	"github.com/openhire/mobile-core/internal/apperrors"
	domainauth "github.com/openhire/mobile-core/internal/domain/auth"
	"github.com/openhire/mobile-core/internal/domain/model"
)

// SchemaVersion marks the shape of the persisted record. A stored record
// with a different version is discarded in favor of defaults.
const SchemaVersion = 1

// SessionRecord is the persisted slice of the session container.
type SessionRecord struct {
	User  *domainauth.Profile `json:"user,omitempty"`
	Token string              `json:"token,omitempty"`
}

// Snapshot is the single durable record. It contains only the whitelisted
// containers plus bookkeeping fields.
type Snapshot struct {
	SchemaVersion int               `json:"schema_version"`
	DeviceID      string            `json:"device_id"`
	SavedAt       time.Time         `json:"saved_at"`
	Session       SessionRecord     `json:"session"`
	Preferences   model.Preferences `json:"preferences"`
}

// Encode serializes the snapshot.
func (s Snapshot) Encode() ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodePersistence, "encode snapshot")
	}
	return data, nil
}

// DecodeSnapshot parses and shape-validates a stored record. Any defect —
// unparseable payload, schema drift, a session violating the token/user
// invariant, unknown enum values — is reported as an error so rehydration
// can fall back to defaults instead of installing corrupt state.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, apperrors.Wrap(err, apperrors.ErrCodePersistence, "decode snapshot")
	}
	if snap.SchemaVersion != SchemaVersion {
		return Snapshot{}, apperrors.Persistence("snapshot schema version mismatch")
	}
	if err := snap.validate(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s Snapshot) validate() error {
	// Token non-empty iff user non-nil; a record violating the session
	// invariant is corrupt.
	if (s.Session.User == nil) != (s.Session.Token == "") {
		return apperrors.Persistence("snapshot session violates token/user invariant")
	}
	if s.Session.User != nil && s.Session.User.ID == "" {
		return apperrors.Persistence("snapshot session user has no ID")
	}
	if !s.Preferences.Theme.Valid() {
		return apperrors.Persistence("snapshot preferences theme is invalid")
	}
	if !s.Preferences.JobAlerts.Frequency.Valid() {
		return apperrors.Persistence("snapshot preferences alert frequency is invalid")
	}
	return nil
}
