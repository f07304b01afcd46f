// SPDX-License-Identifier: MIT

// Package poly: functional configuration for root finding.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package poly

import (
	"math"

	"github.com/katalvlaran/rumorsim/matrix"
)

// Defaults (single source of truth).
const (
	// DefaultImagTolerance is the largest |imag| (relative to max(1,|root|))
	// for which an eigenvalue is treated as a real root.
	DefaultImagTolerance = 1e-9

	// DefaultRootTolerance is the distance below which two real roots are
	// merged and the margin that keeps roots strictly inside an open interval.
	DefaultRootTolerance = 1e-9

	// DefaultTrimTolerance is the relative size (versus the largest
	// coefficient) under which a leading coefficient is dropped.
	DefaultTrimTolerance = 1e-14

	// DefaultPolishSteps bounds Newton refinement per root.
	DefaultPolishSteps = 8
)

const (
	panicImagTolInvalid    = "poly: WithImagTolerance: tol must be finite and > 0"
	panicRootTolInvalid    = "poly: WithRootTolerance: tol must be finite and > 0"
	panicPolishStepInvalid = "poly: WithPolishSteps: n must be >= 0"
	panicMaxIterInvalid    = "poly: WithMaxIterations: n must be > 0"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective root-finding configuration.
type Options struct {
	imagTol     float64
	rootTol     float64
	polishSteps int
	maxIter     int
}

// WithImagTolerance sets the imaginary-part threshold for real roots.
// Panics on non-positive or non-finite tol.
func WithImagTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicImagTolInvalid)
	}

	return func(o *Options) { o.imagTol = tol }
}

// WithRootTolerance sets the merge distance and interval margin.
// Panics on non-positive or non-finite tol.
func WithRootTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicRootTolInvalid)
	}

	return func(o *Options) { o.rootTol = tol }
}

// WithPolishSteps sets the Newton refinement budget (0 disables polishing).
func WithPolishSteps(n int) Option {
	if n < 0 {
		panic(panicPolishStepInvalid)
	}

	return func(o *Options) { o.polishSteps = n }
}

// WithMaxIterations sets the QR iteration budget per eigenvalue of the
// companion matrix (see matrix.WithMaxIterations).
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		imagTol:     DefaultImagTolerance,
		rootTol:     DefaultRootTolerance,
		polishSteps: DefaultPolishSteps,
		maxIter:     matrix.DefaultMaxIterations,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
