// Copyright (c) 2026 The stacks-blockchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fees

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoEstimateAvailable is returned when no fee rate estimate has been
	// stored yet. It marks a cold start, not a storage failure: the
	// estimator simply has not observed a block with fee-paying
	// transactions.
	ErrNoEstimateAvailable = errors.New("no fee estimate available")

	// estimateBucket is the bucket/namespace holding the singleton
	// estimate record.
	estimateBucket = []byte("scalarfeeestimator")

	// estimateKey is the fixed key of the singleton estimate record. There
	// is never more than one record in a store.
	estimateKey = []byte("current")

	dbByteOrder = binary.BigEndian
)

// EstimateStore is the durable home of the current fee rate estimate. A
// store holds at most one estimate at a time; Write replaces it atomically,
// so readers never observe a partially updated record.
//
// A store handle is owned by exactly one Estimator and is not safe for
// concurrent use unless the implementation documents otherwise.
type EstimateStore interface {
	// Read returns the stored estimate, or ErrNoEstimateAvailable if none
	// has been written yet.
	Read() (FeeRateEstimate, error)

	// Write atomically replaces the stored estimate.
	Write(estimate FeeRateEstimate) error

	// Close releases the store's resources.
	Close() error
}

// Store backend names accepted by NewStore.
const (
	BoltDB   = "bolt"
	LevelDB  = "leveldb"
	InMemory = "memory"
)

// StoreConfig selects and locates an estimate store backend.
type StoreConfig struct {
	// Type is the backend to use: BoltDB (the default when empty),
	// LevelDB or InMemory.
	Type string

	// Path is the backing file (bolt) or directory (leveldb). It is
	// created on first open if it does not exist. Ignored by the memory
	// backend.
	Path string
}

// NewStore opens the estimate store described by cfg, creating its backing
// storage if it does not exist yet.
func NewStore(cfg StoreConfig) (EstimateStore, error) {
	switch cfg.Type {
	case "", BoltDB:
		return OpenBoltStore(cfg.Path)
	case LevelDB:
		return OpenLevelDBStore(cfg.Path)
	case InMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown estimate store type %q", cfg.Type)
	}
}

// serializedEstimateLen is the size of an estimate record: three big-endian
// IEEE-754 doubles (high, middle, low).
const serializedEstimateLen = 24

func serializeEstimate(e FeeRateEstimate) []byte {
	var b [serializedEstimateLen]byte
	dbByteOrder.PutUint64(b[0:8], math.Float64bits(e.High))
	dbByteOrder.PutUint64(b[8:16], math.Float64bits(e.Middle))
	dbByteOrder.PutUint64(b[16:24], math.Float64bits(e.Low))
	return b[:]
}

func deserializeEstimate(b []byte) (FeeRateEstimate, error) {
	if len(b) != serializedEstimateLen {
		return FeeRateEstimate{}, fmt.Errorf("stored estimate has wrong "+
			"length (%d bytes, want %d)", len(b), serializedEstimateLen)
	}
	return FeeRateEstimate{
		High:   math.Float64frombits(dbByteOrder.Uint64(b[0:8])),
		Middle: math.Float64frombits(dbByteOrder.Uint64(b[8:16])),
		Low:    math.Float64frombits(dbByteOrder.Uint64(b[16:24])),
	}, nil
}
