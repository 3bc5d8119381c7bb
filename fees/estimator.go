// Copyright (c) 2026 The stacks-blockchain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fees

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

const (
	// DefaultWindowSize is the default exponential decay window, in
	// blocks. With a window of W, a block's percentile measurement enters
	// the running estimate at weight 1/W while the prior estimate keeps
	// weight (W-1)/W.
	DefaultWindowSize uint32 = 5

	// minFeeRate is the floor every fee rate and estimate field saturates
	// at. Near-free transactions would otherwise feed zero, negative or
	// non-finite rates into the estimate.
	minFeeRate = 1.0
)

// FeeRateEstimate is the current recommended fee rate per unit of scalar
// cost, in microstacks. Low, Middle and High correspond to the 5th, 50th
// and 95th percentile rates of recent blocks. Every field is >= 1 after
// any update.
type FeeRateEstimate struct {
	High   float64
	Middle float64
	Low    float64
}

// feeRateAndWeight pairs the fee rate derived for one transaction with its
// scalar weight. The weight is not yet used when selecting percentiles; it
// is carried so a weighted selector can be introduced without reshaping the
// sampling step.
type feeRateAndWeight struct {
	feeRate float64
	weight  uint64
}

// Config is the set of parameters an Estimator is created with.
type Config struct {
	// Store is the durable home of the estimate. Required. The estimator
	// takes exclusive ownership of the handle; see Estimator.
	Store EstimateStore

	// Metric reduces per-transaction resource usage to the scalar the fee
	// is divided by. Required.
	Metric CostMetric

	// WindowSize is the exponential decay window in blocks. Zero selects
	// DefaultWindowSize.
	WindowSize uint32
}

// Estimator derives low/middle/high fee rate recommendations from the
// transactions of confirmed blocks and keeps the current recommendation in
// a persistent store.
//
// An Estimator owns its store handle exclusively and performs no internal
// locking: create one instance per store path and serialize calls to it
// externally if it is shared between goroutines.
type Estimator struct {
	store      EstimateStore
	metric     CostMetric
	windowSize uint32
}

// NewEstimator creates an Estimator from the given config.
func NewEstimator(cfg *Config) (*Estimator, error) {
	if cfg.Store == nil {
		return nil, errors.New("fee estimator requires an estimate store")
	}
	if cfg.Metric == nil {
		return nil, errors.New("fee estimator requires a cost metric")
	}
	windowSize := cfg.WindowSize
	if windowSize == 0 {
		windowSize = DefaultWindowSize
	}
	return &Estimator{
		store:      cfg.Store,
		metric:     cfg.Metric,
		windowSize: windowSize,
	}, nil
}

// sampleFromReceipt derives the (fee rate, weight) sample for a single
// transaction, or reports false for transactions that carry no fee market
// signal.
func (ef *Estimator) sampleFromReceipt(receipt *TxReceipt, blockLimit *ExecutionCost) (feeRateAndWeight, bool) {
	// Burn-origin transactions are not fee-denominated at all.
	if receipt.Origin != OriginStacks {
		return feeRateAndWeight{}, false
	}

	var weight uint64
	switch receipt.Payload {
	case PayloadTokenTransfer:
		// Token transfers have an empty execution cost and only
		// contribute their serialized length.
		weight = ef.metric.FromLen(receipt.TxLen)
	case PayloadCoinbase:
		// Coinbases are free, so they don't factor into the fee market.
		return feeRateAndWeight{}, false
	default:
		// Contract calls, contract publishes and poison microblocks all
		// carry an execution cost and occupy block space.
		weight = ef.metric.FromCostAndLen(&receipt.ExecutionCost, blockLimit, receipt.TxLen)
	}

	denominator := float64(weight)
	if weight < 1 {
		denominator = 1
	}
	feeRate := float64(receipt.Fee) / denominator
	if math.IsNaN(feeRate) || math.IsInf(feeRate, 0) || feeRate < minFeeRate {
		feeRate = minFeeRate
	}
	return feeRateAndWeight{feeRate: feeRate, weight: weight}, true
}

// measureBlock selects the 5th, 50th and 95th percentile fee rates from
// the block's samples, sorted ascending by rate. The sample slice must be
// non-empty.
func measureBlock(sorted []feeRateAndWeight) FeeRateEstimate {
	n := len(sorted)
	tail := n / 20
	if tail < 1 {
		tail = 1
	}
	return FeeRateEstimate{
		High:   sorted[n-tail].feeRate,
		Middle: sorted[n/2].feeRate,
		Low:    sorted[n/20].feeRate,
	}
}

// blendEstimate folds a block's percentile measurement into the prior
// estimate using the configured decay window. Each field saturates at the
// minimum fee rate so rounding during the blend cannot push it below 1.
// The function is pure.
func (ef *Estimator) blendEstimate(old, measure FeeRateEstimate) FeeRateEstimate {
	window := float64(ef.windowSize)
	blend := func(oldRate, newRate float64) float64 {
		rate := (oldRate*(window-1) + newRate) / window
		if rate < minFeeRate {
			rate = minFeeRate
		}
		return rate
	}
	return FeeRateEstimate{
		High:   blend(old.High, measure.High),
		Middle: blend(old.Middle, measure.Middle),
		Low:    blend(old.Low, measure.Low),
	}
}

// NotifyBlock feeds one confirmed block's transaction receipts and cost
// ceiling into the estimator and persists the updated estimate. A block
// that yields no eligible samples leaves the stored estimate untouched.
//
// Fee estimation is best-effort telemetry: if the current estimate cannot
// be read back for any reason other than not existing yet, the block is
// skipped with a warning instead of failing block processing. A failure to
// persist the new estimate is returned so the caller can decide whether to
// retry or drop it.
func (ef *Estimator) NotifyBlock(receipts []*TxReceipt, blockLimit *ExecutionCost) error {
	samples := make([]feeRateAndWeight, 0, len(receipts))
	for _, receipt := range receipts {
		if sample, ok := ef.sampleFromReceipt(receipt, blockLimit); ok {
			samples = append(samples, sample)
		}
	}
	if len(samples) == 0 {
		return nil
	}

	// NaN and infinite rates were clamped during sampling, so the rates
	// are totally ordered.
	sort.Slice(samples, func(i, j int) bool {
		return samples[i].feeRate < samples[j].feeRate
	})
	measure := measureBlock(samples)

	var next FeeRateEstimate
	old, err := ef.store.Read()
	switch {
	case err == nil:
		next = ef.blendEstimate(old, measure)
	case errors.Is(err, ErrNoEstimateAvailable):
		// First observation ever, nothing to blend with.
		next = measure
	default:
		log.Warnf("Unable to fetch current fee estimate, skipping "+
			"update for this block: %v", err)
		return nil
	}

	log.Debugf("Updating fee rate estimate for new block: measured "+
		"%.2f/%.2f/%.2f, estimate %.2f/%.2f/%.2f",
		measure.High, measure.Middle, measure.Low,
		next.High, next.Middle, next.Low)

	if err := ef.store.Write(next); err != nil {
		return fmt.Errorf("unable to persist fee estimate: %w", err)
	}
	return nil
}

// RateEstimates returns the currently stored fee rate estimate. It returns
// ErrNoEstimateAvailable until the first block with eligible transactions
// has been observed.
func (ef *Estimator) RateEstimates() (FeeRateEstimate, error) {
	return ef.store.Read()
}

// Close closes the underlying estimate store.
func (ef *Estimator) Close() error {
	return ef.store.Close()
}
