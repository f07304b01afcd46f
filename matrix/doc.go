// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernel used by the
// polynomial root finder: a row-major Dense matrix with safe accessors,
// central validators, and a general (non-symmetric) eigenvalue solver.
//
// 🚀 What lives here?
//
//   - Dense     : row-major storage, At/Set return errors instead of panicking
//   - Validators: nil/shape guards shared by every kernel
//   - Eigenvalues: balancing → Hessenberg reduction → Francis double-shift QR
//
// ✨ Why a general solver?
//
//	Companion matrices of real polynomials are not symmetric, so their
//	spectrum may contain complex-conjugate pairs. Eigenvalues returns
//	complex128 values sorted by (real, imag) for reproducible output.
//
// ⚙️ Usage:
//
//	m, _ := matrix.NewDense(2, 2)
//	_ = m.Set(0, 1, -1)
//	_ = m.Set(1, 0, 1)
//	eigs, err := matrix.Eigenvalues(m) // [-i, +i]
//
// Performance:
//
//   - Time:   O(n³) for the Hessenberg reduction, O(n²) per QR sweep
//   - Memory: O(n²) working copy; the input is never mutated
package matrix
