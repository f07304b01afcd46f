// SPDX-License-Identifier: MIT

package galam

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

const (
	opSweep       = "Sweep"
	opWeightRange = "WeightRange"
)

// maxRangePoints caps WeightRange output to keep a typo from allocating millions of points.
const maxRangePoints = 1 << 16

// WeightRange returns from, from+step, … up to and including to (within
// half a step of rounding).
//
// Errors:
//   - ErrInvalidRange for non-finite bounds, step <= 0, from > to, or more
//     than 65536 points.
func WeightRange(from, to, step float64) ([]float64, error) {
	for _, v := range []float64{from, to, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%s: %w", opWeightRange, ErrInvalidRange)
		}
	}
	if step <= 0 || from > to {
		return nil, fmt.Errorf("%s: from=%g to=%g step=%g: %w", opWeightRange, from, to, step, ErrInvalidRange)
	}
	// bound the count in float64 first: the int conversion of a huge
	// quotient is undefined.
	span := math.Floor((to-from)/step + 0.5)
	if span+1 > maxRangePoints {
		return nil, fmt.Errorf("%s: %g points: %w", opWeightRange, span+1, ErrInvalidRange)
	}
	n := int(span) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = from + float64(i)*step
	}

	return out, nil
}

// Sweep evaluates the killing point for every raw weight in values assigned
// to group size k, all other weights held at base. Each point builds a
// fresh Distribution with WithWeight; nothing is shared between points.
//
// Implementation:
//   - Stage 1: validate k.
//   - Stage 2: evaluate points concurrently (at most WithWorkers at once)
//     with errgroup; each goroutine writes only its own result slot.
//   - Stage 3: the first failure cancels the remaining points and is returned.
//
// Returns:
//   - []SweepPoint in the order of values.
//
// Errors:
//   - ErrGroupSize, any WithWeight/FindKillingPoint error, or ctx.Err().
func Sweep(ctx context.Context, base Distribution, k int, values []float64, opts ...Option) ([]SweepPoint, error) {
	if k < 1 || k > MaxGroupSize {
		return nil, fmt.Errorf("%s: k=%d: %w", opSweep, k, ErrGroupSize)
	}
	o := gatherOptions(opts...)

	points := make([]SweepPoint, len(values))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, w := range values {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			d, err := base.WithWeight(k, w)
			if err != nil {
				return fmt.Errorf("weight %g: %w", w, err)
			}
			kp, err := FindKillingPoint(d, opts...)
			if err != nil {
				return fmt.Errorf("weight %g: %w", w, err)
			}
			points[i] = SweepPoint{Weight: w, Distribution: d, KillingPoint: kp}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", opSweep, err)
	}

	return points, nil
}
