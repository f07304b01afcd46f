// SPDX-License-Identifier: MIT

package galam

import "fmt"

// binomial[n][k] = C(n,k) for 0 ≤ k ≤ n ≤ MaxGroupSize, built from Pascal's
// rule in exact integer arithmetic.
var binomial = func() [MaxGroupSize + 1][MaxGroupSize + 1]int64 {
	var c [MaxGroupSize + 1][MaxGroupSize + 1]int64
	for n := 0; n <= MaxGroupSize; n++ {
		c[n][0] = 1
		for k := 1; k <= n; k++ {
			c[n][k] = c[n-1][k-1] + c[n-1][k]
		}
	}

	return c
}()

// Majority returns the probability that a strict majority of a group of
// size k believes the truth when each member independently does so with
// probability x:
//
//	Σ_{j=⌊k/2⌋+1}^{k} C(k,j) xʲ (1−x)^(k−j)
//
// For even k a tie does not count as a truth majority. Majority(0,k) is
// exactly 0 and Majority(1,k) exactly 1.
//
// Panics when k is outside 1..MaxGroupSize (programmer error).
func Majority(x float64, k int) float64 {
	if k < 1 || k > MaxGroupSize {
		panic(fmt.Sprintf("galam: Majority: group size %d outside 1..%d", k, MaxGroupSize))
	}
	switch x {
	case 0:
		return 0
	case 1:
		return 1
	}

	y := 1 - x
	sum := 0.0
	for j := k/2 + 1; j <= k; j++ {
		sum += float64(binomial[k][j]) * ipow(x, j) * ipow(y, k-j)
	}

	return sum
}

// Step applies one day of majority-rule discussion: the expected truth
// ratio after every individual joins a group whose size is drawn from d.
// Each group-size term is computed by its own Majority call, so no partial
// sum leaks from one size into the next. Step(0) == 0 and Step(1) == 1
// exactly; other results are clamped to [0,1] against rounding.
func (d Distribution) Step(x float64) float64 {
	switch x {
	case 0:
		return 0
	case 1:
		return 1
	}

	next := 0.0
	for k := 1; k <= MaxGroupSize; k++ {
		pk := d.p[k-1]
		if pk == 0 {
			continue
		}
		next += pk * Majority(x, k)
	}

	return min(max(next, 0), 1)
}

// ipow computes xⁿ for small non-negative n by repeated multiplication;
// ipow(x, 0) == 1 for every x, including 0.
func ipow(x float64, n int) float64 {
	r := 1.0
	for ; n > 0; n-- {
		r *= x
	}

	return r
}
