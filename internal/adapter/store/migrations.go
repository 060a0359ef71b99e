package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"
)

// CurrentSchemaVersion is the current schema version.
// Increment this when making breaking changes to the storage format.
const CurrentSchemaVersion = 1

var keySchemaVersion = []byte("schema_version")

// ErrSchemaTooNew is returned when the database was written by a newer
// plagcheck.
var ErrSchemaTooNew = errors.New("history database created by a newer version")

// SchemaVersion returns the stored schema version, 0 for a fresh database.
func (h *BoltHistory) SchemaVersion() (int, error) {
	var version int
	err := h.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keySchemaVersion)
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, &version)
	})
	return version, err
}

// Migrate brings the database up to CurrentSchemaVersion.
func (h *BoltHistory) Migrate() error {
	version, err := h.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > CurrentSchemaVersion {
		return fmt.Errorf("%w (v%d > v%d)", ErrSchemaTooNew, version, CurrentSchemaVersion)
	}
	if version == CurrentSchemaVersion {
		return nil
	}
	// Version 1 only needs the buckets created on open.
	return h.setSchemaVersion(CurrentSchemaVersion)
}

func (h *BoltHistory) setSchemaVersion(version int) error {
	data, err := json.Marshal(version)
	if err != nil {
		return err
	}
	return h.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(keySchemaVersion, data)
	})
}

