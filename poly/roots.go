// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/rumorsim/matrix"
)

// Operation tags for error wrapping.
const (
	opCompanion    = "Companion"
	opRoots        = "Roots"
	opRealRootsIn  = "RealRootsIn"
	opBracketRoots = "BracketRoots"
)

// Companion returns the companion matrix of p after trimming negligible
// leading coefficients: ones on the subdiagonal and −c[i]/c[n] in the last
// column. Its eigenvalues are exactly the roots of p.
//
// Errors:
//   - ErrZeroPolynomial for the zero polynomial.
//   - ErrConstant for degree 0.
//
// Complexity:
//   - Time O(n²) (dense allocation), Space O(n²).
func Companion(p Polynomial) (*matrix.Dense, error) {
	t := p.Trim(DefaultTrimTolerance)
	n := len(t) - 1
	if n < 0 {
		return nil, fmt.Errorf("%s: %w", opCompanion, ErrZeroPolynomial)
	}
	if n == 0 {
		return nil, fmt.Errorf("%s: %w", opCompanion, ErrConstant)
	}
	lead := t[n]
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		if i > 0 {
			rows[i][i-1] = 1
		}
		rows[i][n-1] = -t[i] / lead
	}
	c, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompanion, err)
	}

	return c, nil
}

// Roots returns all complex roots of p (with multiplicity) as the
// eigenvalues of its companion matrix, sorted by (real, imag).
// A non-zero constant has no roots and yields an empty slice.
// Only WithMaxIterations affects Roots; the other options are ignored.
//
// Errors:
//   - ErrZeroPolynomial for the zero polynomial.
//   - matrix.ErrMatrixEigenFailed if the QR iteration does not converge.
func (p Polynomial) Roots(opts ...Option) ([]complex128, error) {
	t := p.Trim(DefaultTrimTolerance)
	switch len(t) {
	case 0:
		return nil, fmt.Errorf("%s: %w", opRoots, ErrZeroPolynomial)
	case 1:
		return []complex128{}, nil
	}
	c, err := Companion(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRoots, err)
	}
	o := gatherOptions(opts...)
	eigs, err := matrix.Eigenvalues(c, matrix.WithMaxIterations(o.maxIter))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRoots, err)
	}

	return eigs, nil
}

// RealRootsIn returns the distinct real roots of p strictly inside (lo, hi),
// ascending.
//
// Implementation:
//   - Stage 1: all complex roots via Roots.
//   - Stage 2: keep roots with |imag| ≤ imagTol·max(1,|z|); Newton-polish the real part.
//   - Stage 3: keep lo+rootTol < x < hi−rootTol; merge neighbours closer than rootTol.
//
// Notes:
//   - A double root perturbed into a complex pair wider than imagTol is not
//     reported; callers that need tangential roots should deflate first.
//
// Errors:
//   - ErrInvalidInterval, ErrZeroPolynomial, and Roots errors.
func (p Polynomial) RealRootsIn(lo, hi float64, opts ...Option) ([]float64, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return nil, fmt.Errorf("%s: (%g, %g): %w", opRealRootsIn, lo, hi, ErrInvalidInterval)
	}
	o := gatherOptions(opts...)

	all, err := p.Roots(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opRealRootsIn, err)
	}

	var found []float64
	for _, z := range all {
		if math.Abs(imag(z)) > o.imagTol*math.Max(1, math.Hypot(real(z), imag(z))) {
			continue
		}
		x := p.Polish(real(z), o.polishSteps)
		if x <= lo+o.rootTol || x >= hi-o.rootTol {
			continue
		}
		found = append(found, x)
	}
	sort.Float64s(found)

	merged := found[:0]
	for _, x := range found {
		if len(merged) > 0 && x-merged[len(merged)-1] <= o.rootTol {
			continue
		}
		merged = append(merged, x)
	}

	return merged, nil
}

// BracketRoots returns the real roots of p strictly inside (lo, hi) at which
// p changes sign, ascending. It needs no eigenvalue solver: the interval is
// scanned at the midpoints of samples equal cells, each sign change is
// bisected down to rootTol and the result Newton-polished.
//
// Notes:
//   - Roots of even multiplicity and sign changes closer together than
//     (hi−lo)/samples are not reported.
//
// Errors:
//   - ErrInvalidInterval for a bad interval or samples < 1.
//   - ErrZeroPolynomial for the zero polynomial.
func (p Polynomial) BracketRoots(lo, hi float64, samples int, opts ...Option) ([]float64, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi || samples < 1 {
		return nil, fmt.Errorf("%s: (%g, %g) samples=%d: %w", opBracketRoots, lo, hi, samples, ErrInvalidInterval)
	}
	t := p.Trim(DefaultTrimTolerance)
	if len(t) == 0 {
		return nil, fmt.Errorf("%s: %w", opBracketRoots, ErrZeroPolynomial)
	}
	o := gatherOptions(opts...)

	cell := (hi - lo) / float64(samples)
	var found []float64
	a := lo + 0.5*cell
	fa := t.Eval(a)
	if fa == 0 {
		found = append(found, a)
	}
	for i := 1; i < samples; i++ {
		b := lo + (float64(i)+0.5)*cell
		fb := t.Eval(b)
		switch {
		case fb == 0:
			found = append(found, b)
		case fa != 0 && (fa < 0) != (fb < 0):
			found = append(found, t.Polish(bisect(t, a, b, fa, o.rootTol), o.polishSteps))
		}
		a, fa = b, fb
	}
	sort.Float64s(found)

	merged := found[:0]
	for _, x := range found {
		if x <= lo || x >= hi {
			continue
		}
		if len(merged) > 0 && x-merged[len(merged)-1] <= o.rootTol {
			continue
		}
		merged = append(merged, x)
	}

	return merged, nil
}

// bisect narrows a sign change of p on [a, b] (fa = p(a)) to width ≤ tol.
func bisect(p Polynomial, a, b, fa, tol float64) float64 {
	for b-a > tol {
		m := 0.5 * (a + b)
		if m <= a || m >= b {
			break
		}
		fm := p.Eval(m)
		if fm == 0 {
			return m
		}
		if (fm < 0) == (fa < 0) {
			a, fa = m, fm
		} else {
			b = m
		}
	}

	return 0.5 * (a + b)
}
