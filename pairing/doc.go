// Package pairing enumerates the partitions of a sequence into unordered
// pairs — the combinatorial core of the Wick/Isserlis expansion for moments
// of jointly Gaussian variables.
//
// 🚀 What is a pairing?
//
//	Given a sequence of 2n symbols, a pairing groups its positions into n
//	unordered pairs covering every position exactly once. There are exactly
//	(2n-1)!! = 1·3·5·…·(2n-1) of them. Isserlis' theorem writes the moment
//	E{X_1·X_2·…·X_2n} of jointly Gaussian variables as the sum, over all
//	pairings, of the product of pairwise covariances.
//
// ✨ Key features:
//   - lazy enumeration via iter.Seq — no pairing is materialized twice
//   - each distinct pair-set of positions is emitted exactly once, in a
//     canonical form (smaller position first within a pair, pairs ordered
//     by their first position)
//   - repeated symbol values are allowed and meaningful (squared terms)
//   - pluggable generation strategy (see Strategy)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/wick/pairing"
//
//	parts, err := pairing.Enumerate([]int{1, 1, 2, 2}, pairing.DefaultOptions())
//	if err != nil {
//	  // handle ErrOddLength
//	}
//	for p := range parts {
//	  // p is the input reordered; positions (0,1),(2,3),… are the pairs
//	}
//
// Performance:
//
//	The enumeration is inherently exponential: (2n-1)!! pairings exist.
//	DirectRecursive does work proportional to the output; PermutationFilter
//	scans all (2n)! permutations and is only suitable for very small n.
//	Neither is a bug — the problem size is combinatorial by nature.
package pairing
