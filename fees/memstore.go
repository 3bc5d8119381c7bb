// Copyright (c) 2026 The stacks-blockchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fees

import "sync"

// MemoryStore is a non-durable EstimateStore. It backs unit tests and
// ephemeral nodes that do not care about estimates surviving a restart.
// Unlike the durable stores it is safe for concurrent use.
type MemoryStore struct {
	mtx      sync.RWMutex
	estimate *FeeRateEstimate
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Read implements the EstimateStore interface.
func (s *MemoryStore) Read() (FeeRateEstimate, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	if s.estimate == nil {
		return FeeRateEstimate{}, ErrNoEstimateAvailable
	}
	return *s.estimate, nil
}

// Write implements the EstimateStore interface.
func (s *MemoryStore) Write(estimate FeeRateEstimate) error {
	s.mtx.Lock()
	s.estimate = &estimate
	s.mtx.Unlock()
	return nil
}

// Close implements the EstimateStore interface.
func (s *MemoryStore) Close() error {
	return nil
}
