// Package pairing defines options and errors for pairing enumeration.
package pairing

import "errors"

var (
	// ErrOddLength indicates the input sequence has odd length; no perfect
	// pairing exists for it.
	ErrOddLength = errors.New("pairing: sequence length must be even")

	// ErrUnknownStrategy indicates Options.Strategy is not a declared Strategy.
	ErrUnknownStrategy = errors.New("pairing: unknown enumeration strategy")
)

// Strategy selects how candidate pairings are generated.
//
//   - PermutationFilter — scan all (2n)! index permutations in lexicographic
//     order and keep exactly those in canonical form. This is the reference
//     construction; its cost is factorial in the sequence length.
//
//   - DirectRecursive — build pairings directly: pair the lowest unused
//     position with each later unused position and recurse. Emits the same
//     canonical pairings with work proportional to the (2n-1)!! output.
//
// Both strategies emit every distinct unordered-pair-of-positions partition
// exactly once; only the emission order may differ.
type Strategy int

const (
	// DirectRecursive mode: O((2n-1)!!) work, the default.
	DirectRecursive Strategy = iota

	// PermutationFilter mode: O((2n)!) scan, reference construction.
	PermutationFilter
)

// Options configures pairing enumeration.
//
// Fields:
//   - Strategy — generation strategy (DirectRecursive or PermutationFilter).
//
// Example:
//
//	opts := pairing.DefaultOptions()
//	opts.Strategy = pairing.PermutationFilter
//	parts, err := pairing.Enumerate(seq, opts)
type Options struct {
	Strategy Strategy
}

// DefaultOptions returns the recommended defaults: DirectRecursive.
func DefaultOptions() Options {
	return Options{Strategy: DirectRecursive}
}
