// SPDX-License-Identifier: MIT

package galam

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rumorsim/matrix"
	"github.com/katalvlaran/rumorsim/poly"
)

const opFindKillingPoint = "FindKillingPoint"

// bracketSamples is the grid resolution of the sign-change scan used when
// the eigenvalue solver gives up.
const bracketSamples = 2048

// FixedPointPolynomial returns F(x) − x for the distribution d as an
// explicit polynomial of degree ≤ 7 (ascending coefficients).
//
// The coefficients are the binomial majority sums for k = 1..7 expanded by
// hand once:
//
//	k=1: x
//	k=2: x²
//	k=3: 3x² − 2x³
//	k=4: 4x³ − 3x⁴
//	k=5: 10x³ − 15x⁴ + 6x⁵
//	k=6: 15x⁴ − 24x⁵ + 10x⁶
//	k=7: 35x⁴ − 84x⁵ + 70x⁶ − 20x⁷
//
// Every row sums to 1 at x = 1, so x = 0 and x = 1 are always roots.
func FixedPointPolynomial(d Distribution) poly.Polynomial {
	p1, p2, p3, p4 := d.p[0], d.p[1], d.p[2], d.p[3]
	p5, p6, p7 := d.p[4], d.p[5], d.p[6]

	return poly.New(
		0,
		p1-1,
		p2+3*p3,
		-2*p3+4*p4+10*p5,
		-3*p4-15*p5+15*p6+35*p7,
		6*p5-24*p6-84*p7,
		10*p6+70*p7,
		-20*p7,
	)
}

// FindKillingPoint returns the unique fixed point of the update map strictly
// inside (0,1): the truth ratio separating the basin of total rumor (below)
// from the basin of total truth (above).
//
// Implementation:
//   - Stage 1: build F(x) − x in closed form (FixedPointPolynomial).
//   - Stage 2: reject the identity map (all weight on group size 1).
//   - Stage 3: divide out the boundary roots x = 0 and x = 1 with their
//     multiplicity (mixes dominated by pairs make x = 1 a double root).
//   - Stage 4: real roots of the remainder in (0,1) via companion-matrix
//     eigenvalues, filtered by imaginary tolerance and Newton-polished.
//     If the QR iteration exhausts its sweep budget, fall back to a
//     sign-change scan of the remainder on (0,1) with bisection.
//   - Stage 5: exactly one survivor is the killing point.
//
// Errors:
//   - ErrDegenerateDistribution for a zero-value Distribution.
//   - ErrNoInteriorRoot when zero, several or infinitely many fixed points lie in (0,1).
//
// Determinism:
//   - Depends only on the normalized probabilities; identical input gives
//     bit-identical output.
//
// Complexity:
//   - O(1): a degree ≤ 5 eigenvalue problem after deflation.
func FindKillingPoint(d Distribution, opts ...Option) (float64, error) {
	if err := d.validate(); err != nil {
		return 0, fmt.Errorf("%s: %w", opFindKillingPoint, err)
	}
	o := gatherOptions(opts...)

	fp := FixedPointPolynomial(d)
	if fp.IsZero(identityTolerance) {
		return 0, fmt.Errorf("%s: identity map, every ratio is a fixed point: %w", opFindKillingPoint, ErrNoInteriorRoot)
	}

	q, _ := fp.Deflate(0, deflateTolerance)
	q, _ = q.Deflate(1, deflateTolerance)
	if q.Trim(poly.DefaultTrimTolerance).Degree() < 1 {
		return 0, fmt.Errorf("%s: 0 roots in (0,1): %w", opFindKillingPoint, ErrNoInteriorRoot)
	}

	popts := []poly.Option{
		poly.WithImagTolerance(o.imagTol),
		poly.WithRootTolerance(o.rootTol),
		poly.WithPolishSteps(o.polishSteps),
		poly.WithMaxIterations(o.maxIter),
	}
	roots, err := q.RealRootsIn(0, 1, popts...)
	if errors.Is(err, matrix.ErrMatrixEigenFailed) {
		roots, err = q.BracketRoots(0, 1, bracketSamples, popts...)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opFindKillingPoint, err)
	}
	if len(roots) != 1 {
		return 0, fmt.Errorf("%s: %d roots in (0,1): %w", opFindKillingPoint, len(roots), ErrNoInteriorRoot)
	}

	return roots[0], nil
}
