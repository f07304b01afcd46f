// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for spectral kernels and the
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true
)

// Spectral policy.
const (
	// DefaultMaxIterations caps QR sweeps spent on a single eigenvalue before
	// Eigenvalues reports ErrMatrixEigenFailed. An exceptional shift is
	// applied after every 10 stalled sweeps, so the budget allows several.
	DefaultMaxIterations = 100

	// DefaultBalance enables diagonal similarity balancing before the
	// Hessenberg reduction. Balancing reduces the norm of badly scaled inputs
	// such as companion matrices and sharpens the computed eigenvalues.
	DefaultBalance = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxIterationsInvalid = "matrix: WithMaxIterations: n must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	maxIter int  // > 0; DefaultMaxIterations
	balance bool // DefaultBalance
}

// WithMaxIterations sets the per-eigenvalue QR iteration budget.
//
// Errors:
//   - Panics with a stable message when n <= 0.
//
// AI-Hints:
//   - The default (30) is ample for polynomial companions of degree ≤ 64.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// WithoutBalancing disables the balancing pre-pass.
// Mostly useful in tests that compare balanced and raw spectra.
func WithoutBalancing() Option {
	return func(o *Options) { o.balance = false }
}

// defaultOptions returns the documented defaults (single source of truth).
func defaultOptions() Options {
	return Options{
		maxIter: DefaultMaxIterations,
		balance: DefaultBalance,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults
// (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
