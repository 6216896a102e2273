package stationary

import (
	"iter"

	"github.com/katalvlaran/wick/pairing"
)

// Analytical expands a moment over symbolic time offsets. Each distinct
// token, in order of first occurrence, is assigned the integer 2^k−1
// (0, 1, 3, 7, 15, …); every occurrence maps through that assignment and the
// mapped sequence is reduced to lag shapes.
//
// The 2^k−1 values are super-additive — each exceeds the sum of all smaller
// ones — so the absolute difference of any two assigned values identifies
// exactly one unordered pair of tokens. That makes every lag in the emitted
// shapes attributable to a unique covariance s(token_j − token_i).
//
// Returns the mapped integer sequence (for labeling and debugging) alongside
// the lazy shape stream.
//
// Contracts:
//   - len(tokens) must be even; odd length returns pairing.ErrOddLength.
//   - At most 62 distinct tokens; beyond that returns ErrTokenOverflow.
//   - Repeated tokens map to the same integer, preserving multiplicity.
func Analytical[T comparable](tokens []T, opts pairing.Options) ([]int, iter.Seq[Shape], error) {
	values := make(map[T]int, len(tokens))
	mapped := make([]int, len(tokens))
	distinct := 0

	for i, tok := range tokens {
		v, ok := values[tok]
		if !ok {
			if distinct >= maxDistinctTokens {
				return nil, nil, ErrTokenOverflow
			}
			v = 1<<distinct - 1 // 2^k − 1 for the k-th distinct token
			values[tok] = v
			distinct++
		}
		mapped[i] = v
	}

	shapes, err := Reduce(mapped, opts)
	if err != nil {
		return nil, nil, err
	}

	return mapped, shapes, nil
}
