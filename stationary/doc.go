// Package stationary reduces pairings to lag shapes for stationary Gaussian
// processes, and labels symbolic time offsets so the reduction stays exact.
//
// 🚀 Why lags?
//
//	For a stationary process the covariance between X_s and X_t depends only
//	on the lag |s−t|. Two pairings that induce the same tally of lags
//	therefore contribute identical covariance products to the Isserlis sum,
//	so each pairing collapses to a Shape: entry k counts the pairs at lag k.
//	  (1,0,1) → s(0)·s(2)
//	  (1,0,2) → s(0)·s(2)²
//	  (0,1,0,10) → s(1)·s(3)¹⁰
//
// ✨ Key features:
//   - Reduce composes lazily with the pairing enumerator — one pass, no
//     intermediate storage
//   - Shape length is significant: (1) and (1,0) are distinct shapes, never
//     implicitly zero-padded to match
//   - Analytical maps arbitrary comparable tokens (algebraic time offsets
//     such as "t+t_1") to the integers 0, 1, 3, 7, 15, … (2^k−1): each value
//     exceeds the sum of all smaller ones, so every pairwise difference
//     identifies exactly one unordered token pair
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/wick/stationary"
//
//	labels, shapes, err := stationary.Analytical(
//	  []string{"t", "t", "t+t_1", "t+t_1"}, pairing.DefaultOptions())
//	for s := range shapes {
//	  // tally s; s.Sum() is always the number of pairs
//	}
//
// The 2^k−1 scheme is load-bearing: a linear labeling (0,1,2,…) makes
// different token pairs collide on the same lag and silently corrupts the
// expansion. Do not substitute it.
package stationary
