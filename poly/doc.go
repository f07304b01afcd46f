// SPDX-License-Identifier: MIT

// Package poly works with real polynomials stored as ascending coefficient
// slices: p(x) = c[0] + c[1]·x + … + c[n]·xⁿ.
//
// 🚀 What is inside?
//
//   - Eval / Derivative  : Horner evaluation and formal differentiation
//   - DivideLinear       : synthetic division by (x − r), used to deflate known roots
//   - Companion          : companion matrix whose spectrum equals the roots
//   - Roots              : all complex roots via matrix.Eigenvalues
//   - RealRootsIn        : real roots inside an open interval, Newton-polished
//
// ⚙️ Usage:
//
//	p := poly.New(-6, 11, -6, 1)             // (x-1)(x-2)(x-3)
//	roots, err := p.RealRootsIn(1.5, 2.5)    // [2]
//
// Determinism:
//
//	Every routine is pure; identical coefficients always yield identical roots.
package poly
