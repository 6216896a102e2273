package pairing

import "iter"

// Enumerate returns a lazy sequence of all partitions of seq into unordered
// pairs. Each emitted partition is seq reordered so that positions
// (0,1),(2,3),… hold the pairs; for example [1,2,1,3] stands for the
// partition {{1,2},{1,3}}.
//
// Contracts:
//   - len(seq) must be even; odd length returns ErrOddLength.
//   - An empty seq yields exactly one partition: the empty pairing.
//   - Exactly (2n-1)!! partitions are emitted for len(seq)=2n, one per
//     distinct unordered pair-set of positions, regardless of repeated
//     symbol values.
//   - Emitted slices are freshly allocated; callers may retain them.
//
// Complexity: DirectRecursive O(n·(2n-1)!!); PermutationFilter O(n·(2n)!).
func Enumerate[S any](seq []S, opts Options) (iter.Seq[[]S], error) {
	if len(seq)%2 != 0 {
		return nil, ErrOddLength
	}
	switch opts.Strategy {
	case DirectRecursive:
		return enumerateDirect(seq), nil
	case PermutationFilter:
		return enumerateFiltered(seq), nil
	default:
		return nil, ErrUnknownStrategy
	}
}

// enumerateDirect emits pairings without scanning non-canonical permutations:
// the lowest unused position opens the next pair and is matched against every
// later unused position in increasing order. The resulting emission is
// already canonical (smaller position first in each pair, pairs ordered by
// their first position).
func enumerateDirect[S any](seq []S) iter.Seq[[]S] {
	n := len(seq)

	return func(yield func([]S) bool) {
		if n == 0 {
			yield([]S{})

			return
		}

		used := make([]bool, n)
		out := make([]S, n)

		// rec fills pair-slot `slot`; returns false once a yield asked to stop.
		var rec func(slot int) bool
		rec = func(slot int) bool {
			if slot == n {
				cp := make([]S, n)
				copy(cp, out)

				return yield(cp)
			}

			first := 0
			for used[first] {
				first++
			}
			used[first] = true
			out[slot] = seq[first]

			for second := first + 1; second < n; second++ {
				if used[second] {
					continue
				}
				used[second] = true
				out[slot+1] = seq[second]
				if !rec(slot + 2) {
					used[second] = false
					used[first] = false

					return false
				}
				used[second] = false
			}
			used[first] = false

			return true
		}
		rec(0)
	}
}

// enumerateFiltered is the reference construction: generate all index
// permutations in lexicographic order, keep those passing the canonical-form
// test, and emit the sequence reordered by the inverse permutation
// (out[k] = seq[index of value k in p]).
func enumerateFiltered[S any](seq []S) iter.Seq[[]S] {
	n := len(seq)

	return func(yield func([]S) bool) {
		if n == 0 {
			yield([]S{})

			return
		}

		p := make([]int, n)   // current permutation, starts at identity
		pos := make([]int, n) // inverse: pos[v] = index of value v in p
		for i := range p {
			p[i] = i
		}

		for {
			for i, v := range p {
				pos[v] = i
			}
			if canonical(pos, n) {
				out := make([]S, n)
				for k := 0; k < n; k++ {
					out[k] = seq[pos[k]]
				}
				if !yield(out) {
					return
				}
			}
			if !nextPermutation(p) {
				return
			}
		}
	}
}

// canonical reports whether the permutation with inverse pos is the unique
// representative of its pair-set. Walking pair openers 0,2,4,… a cursor
// tracks the position of the previous opener; the permutation is canonical
// iff each opener's position neither precedes the cursor nor exceeds its
// partner's position. Equivalently: within each pair the smaller original
// position comes first when read via the inverse permutation, and pairs are
// ordered by the position of their first element.
func canonical(pos []int, n int) bool {
	i := pos[0]
	for j := 0; j < n; j += 2 {
		t := pos[j]
		if t < i || t > pos[j+1] {
			return false
		}
		i = t
	}

	return true
}

// nextPermutation advances p to its lexicographic successor in place,
// returning false when p was already the last permutation.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]

	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}

// DoubleFactorial returns (2n-1)!! = 1·3·5·…·(2n-1), the number of pairings
// of a 2n-element sequence. DoubleFactorial(0) = 1 (the empty pairing).
func DoubleFactorial(n int) int {
	out := 1
	for k := 3; k <= 2*n-1; k += 2 {
		out *= k
	}

	return out
}
