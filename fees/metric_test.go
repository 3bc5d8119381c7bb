// Copyright (c) 2026 The stacks-blockchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fees

import "testing"

func TestProportionalDotProduct(t *testing.T) {
	limit := &ExecutionCost{
		Runtime:     1_000,
		ReadCount:   100,
		ReadLength:  1_000,
		WriteCount:  100,
		WriteLength: 1_000,
	}
	metric := NewProportionalDotProduct(2_000)

	// Half of every dimension contributes 5000 each, the 500 byte length
	// is a quarter of the size limit and contributes 2500.
	cost := &ExecutionCost{
		Runtime:     500,
		ReadCount:   50,
		ReadLength:  500,
		WriteCount:  50,
		WriteLength: 500,
	}
	if got, want := metric.FromCostAndLen(cost, limit, 500), uint64(27_500); got != want {
		t.Errorf("FromCostAndLen: got %d, want %d", got, want)
	}

	if got, want := metric.FromLen(500), uint64(2_500); got != want {
		t.Errorf("FromLen: got %d, want %d", got, want)
	}

	// A transaction consuming the full ceiling in every dimension plus the
	// full block size weighs 6 * ProportionResolution.
	if got, want := metric.FromCostAndLen(limit, limit, 2_000), 6*ProportionResolution; got != want {
		t.Errorf("FromCostAndLen at ceiling: got %d, want %d", got, want)
	}
}

// TestProportionalDotProductZeroLimit checks that zeroed ceiling dimensions
// act as a limit of 1 rather than dividing by zero.
func TestProportionalDotProductZeroLimit(t *testing.T) {
	metric := NewProportionalDotProduct(0)
	limit := &ExecutionCost{}
	cost := &ExecutionCost{Runtime: 3}

	if got, want := metric.FromCostAndLen(cost, limit, 0), 3*ProportionResolution; got != want {
		t.Errorf("FromCostAndLen: got %d, want %d", got, want)
	}
}

func TestUnitMetric(t *testing.T) {
	metric := UnitMetric{}
	if got := metric.FromLen(10_000); got != 1 {
		t.Errorf("FromLen: got %d, want 1", got)
	}
	if got := metric.FromCostAndLen(&ExecutionCost{Runtime: 9}, &ExecutionCost{}, 55); got != 1 {
		t.Errorf("FromCostAndLen: got %d, want 1", got)
	}
}
