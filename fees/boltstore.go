// Copyright (c) 2026 The stacks-blockchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fees

import (
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

// BoltStore is the default EstimateStore, backed by a single-file bbolt
// database. Every Write is one bolt transaction, so the estimate record is
// replaced all-or-nothing.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBoltStore opens the estimate database at the given file path,
// creating the file and schema if they do not exist. The bucket creation
// runs inside a write transaction that re-checks existence, so two
// processes racing on first-time initialization cannot both create it.
func OpenBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("unable to create estimate db directory: %w", err)
	}
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to open estimate db %q: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(estimateBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to create estimate bucket: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Read implements the EstimateStore interface.
func (s *BoltStore) Read() (FeeRateEstimate, error) {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(estimateBucket).Get(estimateKey)
		if v != nil {
			// The value is only valid for the life of the transaction.
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return FeeRateEstimate{}, fmt.Errorf("unable to read fee estimate: %w", err)
	}
	if raw == nil {
		return FeeRateEstimate{}, ErrNoEstimateAvailable
	}
	return deserializeEstimate(raw)
}

// Write implements the EstimateStore interface.
func (s *BoltStore) Write(estimate FeeRateEstimate) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(estimateBucket).Put(estimateKey, serializeEstimate(estimate))
	})
	if err != nil {
		return fmt.Errorf("unable to store fee estimate: %w", err)
	}
	return nil
}

// Close implements the EstimateStore interface.
func (s *BoltStore) Close() error {
	return s.db.Close()
}
