// SPDX-License-Identifier: MIT

// Package galam: functional configuration for the killing-point solver and sweeps.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package galam

import (
	"math"
	"runtime"

	"github.com/katalvlaran/rumorsim/matrix"
)

// Defaults (single source of truth).
const (
	// DefaultImagTolerance: eigenvalues with |imag| at most this are treated
	// as real roots of the fixed-point polynomial.
	DefaultImagTolerance = 1e-9

	// DefaultRootTolerance: roots closer than this are merged, and roots
	// within this distance of 0 or 1 are not interior.
	DefaultRootTolerance = 1e-9

	// DefaultPolishSteps bounds Newton refinement of each candidate root.
	DefaultPolishSteps = 8

	// deflateTolerance decides, relative to the largest coefficient, whether
	// 0 or 1 is still a root while dividing out boundary factors.
	deflateTolerance = 1e-12

	// identityTolerance: a fixed-point polynomial whose coefficients are all
	// below this is the identity map (all weight on group size 1).
	identityTolerance = 1e-12
)

const (
	panicImagTolInvalid = "galam: WithImagTolerance: tol must be finite and > 0"
	panicRootTolInvalid = "galam: WithRootTolerance: tol must be finite and > 0"
	panicWorkersInvalid = "galam: WithWorkers: n must be > 0"
	panicMaxIterInvalid = "galam: WithMaxIterations: n must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration.
type Options struct {
	imagTol     float64
	rootTol     float64
	polishSteps int
	maxIter     int
	workers     int
}

// WithImagTolerance sets the imaginary-part threshold for real roots.
func WithImagTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicImagTolInvalid)
	}

	return func(o *Options) { o.imagTol = tol }
}

// WithRootTolerance sets the merge distance and boundary margin for roots.
func WithRootTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic(panicRootTolInvalid)
	}

	return func(o *Options) { o.rootTol = tol }
}

// WithMaxIterations sets the eigenvalue QR iteration budget used by the
// root finder.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithWorkers bounds the number of sweep points evaluated concurrently.
// Defaults to runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		imagTol:     DefaultImagTolerance,
		rootTol:     DefaultRootTolerance,
		polishSteps: DefaultPolishSteps,
		maxIter:     matrix.DefaultMaxIterations,
		workers:     runtime.GOMAXPROCS(0),
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
