// SPDX-License-Identifier: MIT
package poly_test

import (
	"testing"

	"github.com/katalvlaran/rumorsim/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDegreeAndTrim covers exact degree, tolerance trimming and the zero polynomial.
func TestDegreeAndTrim(t *testing.T) {
	assert.Equal(t, -1, poly.Polynomial(nil).Degree())
	assert.Equal(t, -1, poly.New(0, 0).Degree())
	assert.Equal(t, 2, poly.New(1, 0, 3, 0).Degree())

	trimmed := poly.New(1, 2, 1e-20).Trim(1e-14)
	assert.Equal(t, poly.New(1, 2), trimmed)
	assert.Empty(t, poly.New(0, 0, 0).Trim(1e-14))
	assert.True(t, poly.New(1e-18, -1e-18).IsZero(1e-15))
	assert.False(t, poly.New(0, 1).IsZero(1e-15))
}

// TestEvalHorner checks Horner evaluation against a hand-expanded value.
func TestEvalHorner(t *testing.T) {
	p := poly.New(-6, 11, -6, 1) // (x-1)(x-2)(x-3)
	for _, r := range []float64{1, 2, 3} {
		assert.Equal(t, 0.0, p.Eval(r))
	}
	assert.Equal(t, -6.0, p.Eval(0))
	assert.Equal(t, 6.0, p.Eval(4))
	assert.Equal(t, 0.0, poly.Polynomial(nil).Eval(3))
}

// TestDerivative checks formal differentiation including the constant edge case.
func TestDerivative(t *testing.T) {
	assert.Equal(t, poly.New(11, -12, 3), poly.New(-6, 11, -6, 1).Derivative())
	assert.Empty(t, poly.New(5).Derivative())
}

// TestDivideLinear verifies quotient and remainder of synthetic division.
func TestDivideLinear(t *testing.T) {
	q, rem := poly.New(-6, 11, -6, 1).DivideLinear(1)
	assert.Equal(t, poly.New(6, -5, 1), q) // (x-2)(x-3)
	assert.Equal(t, 0.0, rem)

	q, rem = poly.New(1, 0, 1).DivideLinear(1) // x²+1 = (x-1)(x+1) + 2
	assert.Equal(t, poly.New(1, 1), q)
	assert.Equal(t, 2.0, rem)
}

// TestDeflate removes repeated roots at 0 and 1.
func TestDeflate(t *testing.T) {
	// x²(x-1)²(x+2) = x⁵ - 3x³ + 2x² ... expanded via repeated multiplication.
	p := poly.New(0, 0, 2, -3, 0, 1)
	q, m0 := p.Deflate(0, 1e-12)
	require.Equal(t, 2, m0)
	require.Equal(t, poly.New(2, -3, 0, 1), q)

	q, m1 := q.Deflate(1, 1e-12)
	require.Equal(t, 2, m1)
	require.Equal(t, 1, q.Degree())
	assert.InDelta(t, -2.0, -q[0]/q[1], 1e-12)

	// Not a root: nothing removed.
	same, m := poly.New(1, 1).Deflate(1, 1e-12)
	assert.Equal(t, 0, m)
	assert.Equal(t, poly.New(1, 1), same)
}

// TestPolish refines a perturbed root.
func TestPolish(t *testing.T) {
	p := poly.New(-2, 0, 1) // x² - 2
	got := p.Polish(1.4, 8)
	assert.InDelta(t, 1.4142135623730951, got, 1e-15)
	assert.Equal(t, 1.4, p.Polish(1.4, 0))
}
