package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
	"plagcheck/internal/domain"
)

var (
	bucketChecks = []byte("checks")
	bucketMeta   = []byte("meta")
)

// ErrReportNotFound is returned by Get for unknown IDs.
var ErrReportNotFound = errors.New("report not found")

// OpenTimeout bounds how long NewBoltHistory waits for another process
// holding the database lock.
var OpenTimeout = time.Second

// BoltHistory is a bbolt-backed ledger of check reports. Keys are report
// IDs, which are UUIDv7 strings, so key order is creation order.
type BoltHistory struct {
	db *bbolt.DB
}

func NewBoltHistory(path string) (*BoltHistory, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: OpenTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketChecks, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	h := &BoltHistory{db: db}
	if err := h.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return h, nil
}

func (h *BoltHistory) Record(report domain.Report) error {
	if report.ID == "" {
		return fmt.Errorf("report has no id")
	}
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return h.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketChecks).Put([]byte(report.ID), data)
	})
}

func (h *BoltHistory) Get(id string) (domain.Report, error) {
	var report domain.Report
	err := h.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketChecks).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("%w: %s", ErrReportNotFound, id)
		}
		return json.Unmarshal(data, &report)
	})
	return report, err
}

// List walks the checks bucket backwards so the newest report comes first.
func (h *BoltHistory) List(limit int) ([]domain.Report, error) {
	var reports []domain.Report
	err := h.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(bucketChecks).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(reports) >= limit {
				break
			}
			var report domain.Report
			if err := json.Unmarshal(v, &report); err != nil {
				return fmt.Errorf("decode report %s: %w", k, err)
			}
			reports = append(reports, report)
		}
		return nil
	})
	return reports, err
}

func (h *BoltHistory) Count() (int, error) {
	var n int
	err := h.db.View(func(tx *bbolt.Tx) error {
		n = tx.Bucket(bucketChecks).Stats().KeyN
		return nil
	})
	return n, err
}

// Clear removes every report but keeps the schema metadata.
func (h *BoltHistory) Clear() error {
	return h.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketChecks); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketChecks)
		return err
	})
}

func (h *BoltHistory) Close() error {
	return h.db.Close()
}
