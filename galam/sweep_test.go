// SPDX-License-Identifier: MIT
package galam_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/rumorsim/galam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWeightRange covers inclusive bounds and validation.
func TestWeightRange(t *testing.T) {
	got, err := galam.WeightRange(1, 19, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}, got)

	got, err = galam.WeightRange(0.5, 0.5, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5}, got)

	got, err = galam.WeightRange(0, 1, 0.1)
	require.NoError(t, err)
	assert.Len(t, got, 11)

	for _, c := range [][3]float64{
		{1, 0, 1}, {0, 1, 0}, {0, 1, -1}, {0, 1e9, 1e-3},
		// counts beyond the int range must be rejected, not converted
		{0, 1e20, 1}, {-1e308, 1e308, 1e-300},
	} {
		_, err = galam.WeightRange(c[0], c[1], c[2])
		require.ErrorIsf(t, err, galam.ErrInvalidRange, "range %v", c)
	}
}

// TestSweepMatchesSerial: concurrent results equal per-point evaluation, in input order.
func TestSweepMatchesSerial(t *testing.T) {
	base := mustDistribution(t, galam.DefaultWeights()...)
	values, err := galam.WeightRange(1, 19, 1)
	require.NoError(t, err)

	points, err := galam.Sweep(context.Background(), base, 3, values, galam.WithWorkers(4))
	require.NoError(t, err)
	require.Len(t, points, len(values))

	for i, pt := range points {
		assert.Equal(t, values[i], pt.Weight)
		d, err := base.WithWeight(3, values[i])
		require.NoError(t, err)
		k, err := galam.FindKillingPoint(d)
		require.NoError(t, err)
		assert.Equal(t, k, pt.KillingPoint)
		assert.Equal(t, d, pt.Distribution)
		assert.InDelta(t, killingPoint234(values[i]), pt.KillingPoint, 1e-9)
		if i > 0 {
			assert.Less(t, pt.KillingPoint, points[i-1].KillingPoint, "more triples lower K")
		}
	}
	assert.InDelta(t, 1.0/3, base.P(3), 1e-15, "base must be untouched")
}

// TestSweepErrors: the first failing point aborts the sweep.
func TestSweepErrors(t *testing.T) {
	base := mustDistribution(t, galam.DefaultWeights()...)

	_, err := galam.Sweep(context.Background(), base, 0, []float64{1})
	require.ErrorIs(t, err, galam.ErrGroupSize)

	// zero weight on size 3 leaves pairs and quartets only
	_, err = galam.Sweep(context.Background(), base, 3, []float64{1, 0, 2})
	require.ErrorIs(t, err, galam.ErrNoInteriorRoot)

	_, err = galam.Sweep(context.Background(), base, 3, []float64{-1})
	require.ErrorIs(t, err, galam.ErrDegenerateDistribution)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = galam.Sweep(ctx, base, 3, []float64{1, 2, 3})
	require.ErrorIs(t, err, context.Canceled)

	points, err := galam.Sweep(context.Background(), base, 3, nil)
	require.NoError(t, err)
	assert.Empty(t, points)
}
