// Copyright (c) 2026 The stacks-blockchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package fees provides scalar fee rate estimation for new transactions based
on the fee rates observed in confirmed blocks.

For every confirmed block, each fee-paying transaction is reduced to a
single fee rate: the fee it paid divided by a scalar measure of the
resources it consumed. The scalar measure is produced by a pluggable
CostMetric, which projects a transaction's execution cost vector and
serialized length against the block's cost ceiling. The 5th, 50th and 95th
percentile rates of the block are then blended into the previously stored
estimate using exponential decay windowing, so that the low, middle and
high recommendations track the recent fee market while damping
block-to-block noise.

The resulting estimate is persisted as a single durable record behind the
EstimateStore interface, so estimates survive node restarts. Stores backed
by bbolt (the default), leveldb, and process memory are provided.
*/
package fees
