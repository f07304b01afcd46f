// SPDX-License-Identifier: MIT

package galam

import (
	"fmt"
	"math"
	"strings"
)

const (
	opNewDistribution = "NewDistribution"
	opWithWeight      = "WithWeight"
)

// NewDistribution builds a normalized distribution from raw interaction
// weights, where weights[k-1] is the weight of group size k. Fewer than
// MaxGroupSize weights are padded with zeros.
//
// Errors:
//   - ErrGroupSize when len(weights) > MaxGroupSize.
//   - ErrDegenerateDistribution when a weight is negative, NaN or ±Inf, or
//     when all weights are zero.
//
// Complexity: O(MaxGroupSize).
func NewDistribution(weights ...float64) (Distribution, error) {
	var d Distribution
	if len(weights) > MaxGroupSize {
		return d, fmt.Errorf("%s: %d weights: %w", opNewDistribution, len(weights), ErrGroupSize)
	}
	copy(d.weights[:], weights)

	if err := d.normalize(); err != nil {
		return Distribution{}, fmt.Errorf("%s: %w", opNewDistribution, err)
	}

	return d, nil
}

// normalize validates raw weights and fills p and total.
func (d *Distribution) normalize() error {
	total := 0.0
	for i, w := range d.weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("group size %d weight %g: %w", i+1, w, ErrDegenerateDistribution)
		}
		total += w
	}
	if total == 0 || math.IsInf(total, 0) {
		return fmt.Errorf("total weight %g: %w", total, ErrDegenerateDistribution)
	}
	for i, w := range d.weights {
		d.p[i] = w / total
	}
	d.total = total

	return nil
}

// validate rejects the zero value, which was never normalized.
func (d Distribution) validate() error {
	if d.total == 0 {
		return ErrDegenerateDistribution
	}

	return nil
}

// WithWeight returns a fresh distribution in which group size k carries the
// raw weight w; the receiver is left untouched. Used by sensitivity sweeps.
//
// Errors:
//   - ErrGroupSize for k outside 1..MaxGroupSize.
//   - ErrDegenerateDistribution when the resulting weights cannot be normalized.
func (d Distribution) WithWeight(k int, w float64) (Distribution, error) {
	if k < 1 || k > MaxGroupSize {
		return Distribution{}, fmt.Errorf("%s: k=%d: %w", opWithWeight, k, ErrGroupSize)
	}
	next := Distribution{weights: d.weights}
	next.weights[k-1] = w
	if err := next.normalize(); err != nil {
		return Distribution{}, fmt.Errorf("%s: %w", opWithWeight, err)
	}

	return next, nil
}

// P returns the normalized probability of group size k (0 outside 1..MaxGroupSize).
func (d Distribution) P(k int) float64 {
	if k < 1 || k > MaxGroupSize {
		return 0
	}

	return d.p[k-1]
}

// Probabilities returns a copy of the normalized probabilities, index k-1 for size k.
func (d Distribution) Probabilities() []float64 {
	out := make([]float64, MaxGroupSize)
	copy(out, d.p[:])

	return out
}

// Weights returns a copy of the raw weights the distribution was built from.
func (d Distribution) Weights() []float64 {
	out := make([]float64, MaxGroupSize)
	copy(out, d.weights[:])

	return out
}

// String renders the normalized probabilities, e.g. "[0 0.333 0.333 0.333 0 0 0]".
func (d Distribution) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range d.p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%.3g", p))
	}
	b.WriteByte(']')

	return b.String()
}
