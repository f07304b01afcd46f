// SPDX-License-Identifier: MIT
package galam_test

import (
	"testing"

	"github.com/katalvlaran/rumorsim/galam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPredict classifies ratios around the killing point.
func TestPredict(t *testing.T) {
	d := mustDistribution(t, galam.DefaultWeights()...)

	out, k, err := galam.Predict(d, 0.9)
	require.NoError(t, err)
	assert.Equal(t, galam.TruthWins, out)
	assert.InDelta(t, 0.8471, k, 1e-4)

	out, _, err = galam.Predict(d, 0.8)
	require.NoError(t, err)
	assert.Equal(t, galam.RumorWins, out)

	out, _, err = galam.Predict(d, k)
	require.NoError(t, err)
	assert.Equal(t, galam.Balanced, out)

	_, _, err = galam.Predict(d, 2)
	require.ErrorIs(t, err, galam.ErrInvalidRatio)

	_, _, err = galam.Predict(mustDistribution(t, 1), 0.5)
	require.ErrorIs(t, err, galam.ErrNoInteriorRoot)
}

// TestOutcomeString gives human verdicts.
func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "rumor spreads", galam.RumorWins.String())
	assert.Equal(t, "balanced", galam.Balanced.String())
	assert.Equal(t, "rumor dies out", galam.TruthWins.String())
	assert.Equal(t, "Outcome(9)", galam.Outcome(9).String())
}

// TestBracket: the three trajectories split around K.
func TestBracket(t *testing.T) {
	d := mustDistribution(t, galam.DefaultWeights()...)
	res, err := galam.Bracket(d, 0.05, 30)
	require.NoError(t, err)
	k := res.KillingPoint
	assert.Equal(t, 0.05, res.Delta)
	require.Len(t, res.Above, 30)
	require.Len(t, res.At, 30)
	require.Len(t, res.Below, 30)

	assert.InDelta(t, k*1.05, res.Above[0], 1e-15)
	assert.Equal(t, k, res.At[0])
	assert.InDelta(t, k*0.95, res.Below[0], 1e-15)

	assert.Greater(t, res.Above.Final(), 0.99)
	assert.InDelta(t, k, res.At.Final(), 1e-6)
	assert.Less(t, res.Below.Final(), 1e-6)

	// a wide offset caps the upper start at total truth
	wide, err := galam.Bracket(d, 0.5, 3)
	require.NoError(t, err)
	assert.Equal(t, 1.0, wide.Above[0])
	assert.Equal(t, 1.0, wide.Above.Final())
}

// TestBracketValidation rejects offsets outside (0,1) and bad lengths.
func TestBracketValidation(t *testing.T) {
	d := mustDistribution(t, galam.DefaultWeights()...)
	for _, delta := range []float64{0, 1, -0.1, 1.5} {
		_, err := galam.Bracket(d, delta, 10)
		require.ErrorIs(t, err, galam.ErrInvalidDelta)
	}
	_, err := galam.Bracket(d, 0.1, 0)
	require.ErrorIs(t, err, galam.ErrInvalidDays)
}
