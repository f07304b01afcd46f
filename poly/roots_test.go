// SPDX-License-Identifier: MIT
package poly_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rumorsim/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompanion checks layout and error cases.
func TestCompanion(t *testing.T) {
	c, err := poly.Companion(poly.New(-6, 11, -6, 1))
	require.NoError(t, err)
	assert.Equal(t, "[0, 0, 6]\n[1, 0, -11]\n[0, 1, 6]\n", c.String())

	// non-monic input is normalized by the leading coefficient
	c, err = poly.Companion(poly.New(4, 2))
	require.NoError(t, err)
	assert.Equal(t, "[-2]\n", c.String())

	_, err = poly.Companion(poly.New(0, 0))
	require.ErrorIs(t, err, poly.ErrZeroPolynomial)
	_, err = poly.Companion(poly.New(3))
	require.ErrorIs(t, err, poly.ErrConstant)
}

// TestRoots covers real, complex and constant inputs.
func TestRoots(t *testing.T) {
	roots, err := poly.New(-6, 11, -6, 1).Roots()
	require.NoError(t, err)
	require.Len(t, roots, 3)
	for i, want := range []float64{1, 2, 3} {
		assert.InDelta(t, want, real(roots[i]), 1e-10)
		assert.InDelta(t, 0, imag(roots[i]), 1e-10)
	}

	roots, err = poly.New(1, 0, 1).Roots() // x²+1
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.InDelta(t, -1, imag(roots[0]), 1e-12)
	assert.InDelta(t, 1, imag(roots[1]), 1e-12)

	roots, err = poly.New(-6, 11, -6, 1).Roots(poly.WithMaxIterations(60))
	require.NoError(t, err)
	assert.InDelta(t, 3, real(roots[2]), 1e-10)

	roots, err = poly.New(7).Roots()
	require.NoError(t, err)
	assert.Empty(t, roots)

	_, err = poly.Polynomial(nil).Roots()
	require.ErrorIs(t, err, poly.ErrZeroPolynomial)
}

// TestRealRootsIn filters by interval, discards complex pairs and merges duplicates.
func TestRealRootsIn(t *testing.T) {
	p := poly.New(-6, 11, -6, 1)
	got, err := p.RealRootsIn(1.5, 2.5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 2, got[0], 1e-12)

	got, err = p.RealRootsIn(0, 10)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	// open interval: endpoints are excluded
	got, err = p.RealRootsIn(1, 3)
	require.NoError(t, err)
	require.Len(t, got, 1)

	// (x²+1)(x-0.25): only the real root survives
	got, err = poly.New(-0.25, 1, -0.25, 1).RealRootsIn(0, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 0.25, got[0], 1e-12)

	_, err = p.RealRootsIn(1, 1)
	require.ErrorIs(t, err, poly.ErrInvalidInterval)
	_, err = p.RealRootsIn(math.NaN(), 1)
	require.ErrorIs(t, err, poly.ErrInvalidInterval)
}

// TestBracketRoots finds simple roots by sign change and skips even ones.
func TestBracketRoots(t *testing.T) {
	p := poly.New(-6, 11, -6, 1)
	got, err := p.BracketRoots(0, 10, 64)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, want := range []float64{1, 2, 3} {
		assert.InDelta(t, want, got[i], 1e-12)
	}

	// (x-0.25)²(x-0.75): the double root has no sign change
	got, err = poly.New(-0.046875, 0.4375, -1.25, 1).BracketRoots(0, 1, 256)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 0.75, got[0], 1e-12)

	// x²+1 has no real roots
	got, err = poly.New(1, 0, 1).BracketRoots(-5, 5, 100)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = p.BracketRoots(0, 1, 0)
	require.ErrorIs(t, err, poly.ErrInvalidInterval)
	_, err = p.BracketRoots(1, math.Inf(1), 10)
	require.ErrorIs(t, err, poly.ErrInvalidInterval)
	_, err = poly.New(0, 0).BracketRoots(0, 1, 10)
	require.ErrorIs(t, err, poly.ErrZeroPolynomial)
}

// TestOptionPanics guards option constructor contracts.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { poly.WithImagTolerance(0) })
	require.Panics(t, func() { poly.WithRootTolerance(math.Inf(1)) })
	require.Panics(t, func() { poly.WithPolishSteps(-1) })
	require.Panics(t, func() { poly.WithMaxIterations(0) })
	require.NotPanics(t, func() { poly.WithRootTolerance(1e-6) })
}
