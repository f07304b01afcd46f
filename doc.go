// Package rumorsim is a small laboratory for the Galam model of rumor
// spreading: how a fully mixed population that argues in small groups, and
// settles each argument by majority, drifts to total truth or total rumor.
//
// 🚀 What is in the box?
//
//   - matrix/ : dense row-major matrix and a general eigenvalue solver
//     (balancing, Hessenberg reduction, Francis double-shift QR)
//   - poly/   : real polynomials, companion matrices, real roots in an interval
//   - galam/  : interaction distributions, the daily majority update, the
//     killing point, trajectories, predictions and weight sweeps
//   - cmd/rumorsim : CLI with table/JSON/YAML/CSV output and SQLite run history
//
// ✨ The one number that matters
//
//	For a distribution of group sizes the daily update F has stable fixed
//	points at 0 and 1. The unstable fixed point K between them, the killing
//	point, splits the starting ratios: above K the rumor dies out, below K
//	it takes over. Groups of even size break ties in favor of the rumor,
//	which pushes K above 1/2.
//
// Quick example:
//
//	d, _ := galam.NewDistribution(0, 1, 1, 1) // groups of 2, 3 and 4
//	k, _ := galam.FindKillingPoint(d)         // ≈ 0.8471
//
//	go install github.com/katalvlaran/rumorsim/cmd/rumorsim@latest
//	rumorsim sweep --group-size 3 --from 1 --to 19
package rumorsim
