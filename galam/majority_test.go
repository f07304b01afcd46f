// SPDX-License-Identifier: MIT
package galam_test

import (
	"testing"

	"github.com/katalvlaran/rumorsim/galam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expanded majority polynomials for k = 1..7.
var majorityClosedForm = map[int]func(x float64) float64{
	1: func(x float64) float64 { return x },
	2: func(x float64) float64 { return x * x },
	3: func(x float64) float64 { return 3*x*x - 2*x*x*x },
	4: func(x float64) float64 { return 4*x*x*x - 3*x*x*x*x },
	5: func(x float64) float64 {
		x3 := x * x * x
		return 10*x3 - 15*x3*x + 6*x3*x*x
	},
	6: func(x float64) float64 {
		x4 := x * x * x * x
		return 15*x4 - 24*x4*x + 10*x4*x*x
	},
	7: func(x float64) float64 {
		x4 := x * x * x * x
		return 35*x4 - 84*x4*x + 70*x4*x*x - 20*x4*x*x*x
	},
}

// TestMajorityClosedForms compares the binomial tail with hand-expanded rows.
func TestMajorityClosedForms(t *testing.T) {
	for k := 1; k <= galam.MaxGroupSize; k++ {
		for _, x := range []float64{0.05, 0.2, 0.37, 0.5, 0.61, 0.8, 0.99} {
			assert.InDeltaf(t, majorityClosedForm[k](x), galam.Majority(x, k), 1e-13, "k=%d x=%g", k, x)
		}
		assert.Equal(t, 0.0, galam.Majority(0, k))
		assert.Equal(t, 1.0, galam.Majority(1, k))
	}
}

// TestMajoritySymmetry: odd groups are symmetric around 1/2, even groups favor the rumor on ties.
func TestMajoritySymmetry(t *testing.T) {
	for _, k := range []int{1, 3, 5, 7} {
		assert.InDelta(t, 0.5, galam.Majority(0.5, k), 1e-15)
	}
	for _, k := range []int{2, 4, 6} {
		assert.Less(t, galam.Majority(0.5, k), 0.5)
	}
}

// TestMajorityPanics on group sizes outside the supported range.
func TestMajorityPanics(t *testing.T) {
	assert.Panics(t, func() { galam.Majority(0.5, 0) })
	assert.Panics(t, func() { galam.Majority(0.5, 8) })
}

// TestStepBoundaries: 0 and 1 are exact fixed points for every distribution.
func TestStepBoundaries(t *testing.T) {
	for _, w := range [][]float64{
		galam.DefaultWeights(),
		{1},
		{0, 0, 0, 0, 0, 0, 1},
		{1, 2, 3, 4, 5, 6, 7},
	} {
		d, err := galam.NewDistribution(w...)
		require.NoError(t, err)
		assert.Equal(t, 0.0, d.Step(0))
		assert.Equal(t, 1.0, d.Step(1))
		for _, x := range []float64{0.1, 0.5, 0.9} {
			y := d.Step(x)
			assert.GreaterOrEqual(t, y, 0.0)
			assert.LessOrEqual(t, y, 1.0)
		}
	}
}

// TestStepIdentity: groups of one never change anyone's mind.
func TestStepIdentity(t *testing.T) {
	d, err := galam.NewDistribution(1)
	require.NoError(t, err)
	for _, x := range []float64{0.01, 0.25, 0.5, 0.75, 0.99} {
		assert.Equal(t, x, d.Step(x))
	}
}
