// Copyright (c) 2026 The stacks-blockchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fees

// ExecutionCost is the five dimensional resource usage vector that block
// execution is metered against. The same type expresses both a single
// transaction's usage and the block cost ceiling.
type ExecutionCost struct {
	Runtime     uint64
	ReadCount   uint64
	ReadLength  uint64
	WriteCount  uint64
	WriteLength uint64
}

// CostMetric reduces a transaction's resource consumption to one scalar
// weight so that fee rates of heterogeneous transactions are comparable.
// Implementations must be pure: the estimator calls them once per receipt
// and persists nothing about them.
type CostMetric interface {
	// FromLen returns the scalar weight of a transaction that consumes
	// block space only, given its serialized length.
	FromLen(txLen uint64) uint64

	// FromCostAndLen returns the scalar weight of a transaction given its
	// metered execution cost, the cost ceiling of the block that included
	// it, and its serialized length.
	FromCostAndLen(cost, blockLimit *ExecutionCost, txLen uint64) uint64
}

// ProportionResolution is the scale used when expressing a resource
// dimension as a proportion of its block ceiling. A transaction consuming
// an entire dimension contributes ProportionResolution to its weight.
const ProportionResolution uint64 = 10_000

// ProportionalDotProduct weighs a transaction by summing, over every cost
// dimension, the proportion of the block ceiling it consumed, plus the
// proportion of the block size budget taken by its serialized form.
type ProportionalDotProduct struct {
	// BlockSizeLimit is the maximum serialized block size in bytes.
	BlockSizeLimit uint64
}

// NewProportionalDotProduct returns a ProportionalDotProduct metric for
// chains with the given maximum block size.
func NewProportionalDotProduct(blockSizeLimit uint64) *ProportionalDotProduct {
	return &ProportionalDotProduct{BlockSizeLimit: blockSizeLimit}
}

// FromLen implements the CostMetric interface.
func (m *ProportionalDotProduct) FromLen(txLen uint64) uint64 {
	return proportionOf(txLen, m.BlockSizeLimit)
}

// FromCostAndLen implements the CostMetric interface.
func (m *ProportionalDotProduct) FromCostAndLen(cost, blockLimit *ExecutionCost, txLen uint64) uint64 {
	dot := proportionOf(cost.Runtime, blockLimit.Runtime) +
		proportionOf(cost.ReadCount, blockLimit.ReadCount) +
		proportionOf(cost.ReadLength, blockLimit.ReadLength) +
		proportionOf(cost.WriteCount, blockLimit.WriteCount) +
		proportionOf(cost.WriteLength, blockLimit.WriteLength)
	return dot + proportionOf(txLen, m.BlockSizeLimit)
}

// proportionOf scales dim to ProportionResolution-ths of its limit. A zero
// limit is treated as 1 so that a misconfigured ceiling cannot divide by
// zero.
func proportionOf(dim, limit uint64) uint64 {
	if limit < 1 {
		limit = 1
	}
	return dim * ProportionResolution / limit
}

// UnitMetric weighs every transaction as 1, turning fee rates into plain
// fee totals. It is useful in tests and on networks where execution cost
// accounting is disabled.
type UnitMetric struct{}

// FromLen implements the CostMetric interface.
func (UnitMetric) FromLen(txLen uint64) uint64 {
	return 1
}

// FromCostAndLen implements the CostMetric interface.
func (UnitMetric) FromCostAndLen(cost, blockLimit *ExecutionCost, txLen uint64) uint64 {
	return 1
}
