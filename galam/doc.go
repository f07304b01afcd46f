// SPDX-License-Identifier: MIT

// Package galam implements the Galam reaction-diffusion model of rumor
// spreading: a fully mixed population repeatedly splits into small groups,
// and every group adopts the belief held by its strict majority (a tie goes
// to the rumor).
//
// 🚀 What is the model?
//
//	Let x be the fraction of the population believing the truth and p[k]
//	the probability that a day's interaction happens in a group of size
//	k = 1..7. One day of discussion maps x to
//
//	    F(x) = Σ_k p[k] · Σ_{j>k/2} C(k,j) xʲ (1−x)^(k−j)
//
//	F(0)=0 and F(1)=1 are stable attractors. When they are separated by an
//	unstable fixed point K (the "killing point"), starting ratios above K
//	flow to total truth and those below K flow to total rumor.
//
// ✨ Key features:
//   - Majority / Distribution.Step: the exact update map, computed once and shared
//   - FindKillingPoint: closed-form degree-7 polynomial F(x)−x, companion-matrix roots
//   - Evolve          : day-by-day belief trajectory
//   - Predict, Bracket: verdict for a starting ratio; trajectories around K
//   - Sweep           : concurrent sensitivity sweep over one group-size weight
//
// ⚙️ Usage:
//
//	d, _ := galam.NewDistribution(galam.DefaultWeights()...)
//	k, err := galam.FindKillingPoint(d)       // ≈ 0.8471
//	traj, err := galam.Evolve(d, 0.80, 20)    // rumor wins: 0.80 < k
//
// Determinism:
//
//	All functions except Sweep are synchronous and pure. Sweep evaluates
//	independent points concurrently and returns them in input order.
package galam
