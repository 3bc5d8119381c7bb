// Copyright (c) 2026 The stacks-blockchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fees

import (
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
)

// LevelDBStore is an EstimateStore backed by a leveldb directory. It exists
// for nodes that already keep their chain data in leveldb and want a single
// storage engine; BoltStore is otherwise the default.
type LevelDBStore struct {
	db *leveldb.DB
}

// OpenLevelDBStore opens the estimate database in the given directory,
// creating it if it does not exist. Leveldb's own file lock guards against
// two processes initializing the same path at once.
func OpenLevelDBStore(path string) (*LevelDBStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to open estimate db %q: %w", path, err)
	}
	return &LevelDBStore{db: db}, nil
}

// Read implements the EstimateStore interface.
func (s *LevelDBStore) Read() (FeeRateEstimate, error) {
	raw, err := s.db.Get(estimateKey, nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return FeeRateEstimate{}, ErrNoEstimateAvailable
	}
	if err != nil {
		return FeeRateEstimate{}, fmt.Errorf("unable to read fee estimate: %w", err)
	}
	return deserializeEstimate(raw)
}

// Write implements the EstimateStore interface. The record is written
// through a batch so the replacement commits atomically.
func (s *LevelDBStore) Write(estimate FeeRateEstimate) error {
	batch := new(leveldb.Batch)
	batch.Put(estimateKey, serializeEstimate(estimate))
	if err := s.db.Write(batch, nil); err != nil {
		return fmt.Errorf("unable to store fee estimate: %w", err)
	}
	return nil
}

// Close implements the EstimateStore interface.
func (s *LevelDBStore) Close() error {
	return s.db.Close()
}
