// SPDX-License-Identifier: MIT
package galam_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rumorsim/galam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDistribution covers normalization, padding and rejection rules.
func TestNewDistribution(t *testing.T) {
	d, err := galam.NewDistribution(galam.DefaultWeights()...)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, d.P(2), 1e-15)
	assert.InDelta(t, 1.0/3, d.P(3), 1e-15)
	assert.InDelta(t, 1.0/3, d.P(4), 1e-15)
	assert.Equal(t, 0.0, d.P(1))
	assert.Equal(t, 0.0, d.P(0))
	assert.Equal(t, 0.0, d.P(8))

	sum := 0.0
	for _, p := range d.Probabilities() {
		sum += p
	}
	assert.InDelta(t, 1, sum, 1e-15)

	// short input is padded with zeros
	short, err := galam.NewDistribution(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, short.P(2))
	assert.Len(t, short.Weights(), galam.MaxGroupSize)

	_, err = galam.NewDistribution(1, 1, 1, 1, 1, 1, 1, 1)
	require.ErrorIs(t, err, galam.ErrGroupSize)
	_, err = galam.NewDistribution(0, 0, 0, 0, 0, 0, 0)
	require.ErrorIs(t, err, galam.ErrDegenerateDistribution)
	_, err = galam.NewDistribution()
	require.ErrorIs(t, err, galam.ErrDegenerateDistribution)
	_, err = galam.NewDistribution(1, -1)
	require.ErrorIs(t, err, galam.ErrDegenerateDistribution)
	_, err = galam.NewDistribution(1, math.NaN())
	require.ErrorIs(t, err, galam.ErrDegenerateDistribution)
	_, err = galam.NewDistribution(math.Inf(1))
	require.ErrorIs(t, err, galam.ErrDegenerateDistribution)
}

// TestWithWeight verifies that a sweep point never aliases its base.
func TestWithWeight(t *testing.T) {
	base, err := galam.NewDistribution(galam.DefaultWeights()...)
	require.NoError(t, err)

	next, err := base.WithWeight(3, 4)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/6, next.P(3), 1e-15)
	assert.InDelta(t, 1.0/3, base.P(3), 1e-15, "base must be untouched")
	assert.Equal(t, []float64{0, 1, 4, 1, 0, 0, 0}, next.Weights())

	_, err = base.WithWeight(0, 1)
	require.ErrorIs(t, err, galam.ErrGroupSize)
	_, err = base.WithWeight(8, 1)
	require.ErrorIs(t, err, galam.ErrGroupSize)
	_, err = base.WithWeight(2, -3)
	require.ErrorIs(t, err, galam.ErrDegenerateDistribution)

	single, err := galam.NewDistribution(0, 0, 1)
	require.NoError(t, err)
	_, err = single.WithWeight(3, 0)
	require.ErrorIs(t, err, galam.ErrDegenerateDistribution)
}

// TestDistributionString renders normalized probabilities.
func TestDistributionString(t *testing.T) {
	d, err := galam.NewDistribution(0, 1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "[0 0.25 0.25 0.5 0 0 0]", d.String())
}

// TestDefaultWeightsFresh ensures callers cannot corrupt the defaults.
func TestDefaultWeightsFresh(t *testing.T) {
	w := galam.DefaultWeights()
	w[0] = 99
	assert.Equal(t, []float64{0, 1, 1, 1, 0, 0, 0}, galam.DefaultWeights())
}
