// Package store is the persistence gateway: one bbolt bucket holding a
// single JSON snapshot of all application state. Load never fails; an
// absent or unreadable snapshot is replaced by the default one.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"ecoquest/internal/models"
)

const (
	snapshotBucket = "snapshot"
	snapshotKey    = "state"
)

// Store provides a bbolt-backed snapshot store.
type Store struct {
	db  *bbolt.DB
	log *slog.Logger
}

// Open opens (creating if needed) the snapshot database at path.
func Open(path string, log *slog.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store path is required")
	}
	if log == nil {
		log = slog.Default()
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(snapshotBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure snapshot bucket: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load reads the snapshot. A missing or corrupt payload is recovered by
// substituting the default snapshot; the error is logged, never returned.
func (s *Store) Load() *models.Snapshot {
	var payload []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(snapshotBucket))
		if bucket == nil {
			return nil
		}
		if v := bucket.Get([]byte(snapshotKey)); v != nil {
			payload = append(payload, v...)
		}
		return nil
	})
	if err != nil {
		s.log.Warn("snapshot read failed, starting fresh", "error", err)
		return models.DefaultSnapshot()
	}
	if payload == nil {
		return models.DefaultSnapshot()
	}

	var snap models.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		s.log.Warn("snapshot corrupt, starting fresh", "error", err)
		return models.DefaultSnapshot()
	}
	snap.Normalize()
	return &snap
}

// Save serializes the full snapshot in a single write transaction.
func (s *Store) Save(snap *models.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(snapshotBucket))
		if bucket == nil {
			return fmt.Errorf("snapshot bucket is missing")
		}
		return bucket.Put([]byte(snapshotKey), payload)
	})
}
