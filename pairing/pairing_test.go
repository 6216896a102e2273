package pairing_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/katalvlaran/wick/pairing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains a pairing stream into a slice.
func collect(t *testing.T, seq []int, opts pairing.Options) [][]int {
	t.Helper()
	parts, err := pairing.Enumerate(seq, opts)
	require.NoError(t, err, "even-length input must not error")

	var out [][]int
	for p := range parts {
		out = append(out, p)
	}

	return out
}

// pairSetKey reduces a partition over distinct labels 0..2n-1 to a canonical
// string identifying its unordered pair-set.
func pairSetKey(part []int) string {
	pairs := make([][2]int, 0, len(part)/2)
	for j := 0; j < len(part); j += 2 {
		a, b := part[j], part[j+1]
		if a > b {
			a, b = b, a
		}
		pairs = append(pairs, [2]int{a, b})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })

	return fmt.Sprint(pairs)
}

// TestEnumerate_OddLength verifies that odd-length input errors with
// ErrOddLength for both strategies.
func TestEnumerate_OddLength(t *testing.T) {
	for _, s := range []pairing.Strategy{pairing.DirectRecursive, pairing.PermutationFilter} {
		_, err := pairing.Enumerate([]int{1, 2, 3}, pairing.Options{Strategy: s})
		assert.ErrorIs(t, err, pairing.ErrOddLength, "odd length must error")
	}
}

// TestEnumerate_UnknownStrategy ensures an undeclared strategy is rejected.
func TestEnumerate_UnknownStrategy(t *testing.T) {
	_, err := pairing.Enumerate([]int{1, 2}, pairing.Options{Strategy: pairing.Strategy(42)})
	assert.ErrorIs(t, err, pairing.ErrUnknownStrategy)
}

// TestEnumerate_Empty verifies the degenerate base case: exactly one empty
// partition, not an error.
func TestEnumerate_Empty(t *testing.T) {
	for _, s := range []pairing.Strategy{pairing.DirectRecursive, pairing.PermutationFilter} {
		got := collect(t, []int{}, pairing.Options{Strategy: s})
		require.Len(t, got, 1, "empty input yields exactly one partition")
		assert.Empty(t, got[0], "the single partition is the empty pairing")
	}
}

// TestEnumerate_SinglePair verifies the smallest non-trivial input.
func TestEnumerate_SinglePair(t *testing.T) {
	got := collect(t, []int{1, 2}, pairing.DefaultOptions())
	require.Len(t, got, 1)
	assert.Equal(t, []int{1, 2}, got[0])
}

// TestEnumerate_RepeatedValues checks the [1,1,2,2] scenario: 3 partitions,
// one pairing {(1,1),(2,2)} and the {(1,2),(1,2)} pairing counted twice.
func TestEnumerate_RepeatedValues(t *testing.T) {
	got := collect(t, []int{1, 1, 2, 2}, pairing.DefaultOptions())
	require.Len(t, got, 3, "(4-1)!! = 3 partitions")

	var same, cross int
	for _, p := range got {
		switch {
		case p[0] == p[1] && p[2] == p[3]:
			same++
		case p[0] != p[1] && p[2] != p[3]:
			cross++
		}
	}
	assert.Equal(t, 1, same, "exactly one {(1,1),(2,2)} pairing")
	assert.Equal(t, 2, cross, "the {(1,2),(1,2)} pairing appears twice")
}

// TestEnumerate_DoubleFactorialCounts verifies the (2n-1)!! counting property
// and pair-set distinctness for n = 0..4 under both strategies.
func TestEnumerate_DoubleFactorialCounts(t *testing.T) {
	for _, s := range []pairing.Strategy{pairing.DirectRecursive, pairing.PermutationFilter} {
		for n := 0; n <= 4; n++ {
			seq := make([]int, 2*n)
			for i := range seq {
				seq[i] = i // distinct labels = positions
			}

			got := collect(t, seq, pairing.Options{Strategy: s})
			want := pairing.DoubleFactorial(n)
			require.Len(t, got, want, "strategy=%v n=%d must emit (2n-1)!!", s, n)

			seen := make(map[string]bool, len(got))
			for _, p := range got {
				key := pairSetKey(p)
				assert.False(t, seen[key], "duplicate pair-set %s (strategy=%v n=%d)", key, s, n)
				seen[key] = true
			}
		}
	}
}

// TestEnumerate_MultisetPreserved verifies every partition is a rearrangement
// of the input, repeats included.
func TestEnumerate_MultisetPreserved(t *testing.T) {
	seq := []int{0, 0, 1, 1, 3, 3}
	want := map[int]int{0: 2, 1: 2, 3: 2}

	for _, p := range collect(t, seq, pairing.DefaultOptions()) {
		got := make(map[int]int)
		for _, v := range p {
			got[v]++
		}
		assert.Equal(t, want, got, "partition %v must preserve the input multiset", p)
	}
}

// TestEnumerate_StrategiesAgree verifies DirectRecursive and
// PermutationFilter emit the same multiset of partitions.
func TestEnumerate_StrategiesAgree(t *testing.T) {
	seq := []int{0, 0, 1, 1, 3, 3}

	asStrings := func(parts [][]int) []string {
		out := make([]string, len(parts))
		for i, p := range parts {
			out[i] = fmt.Sprint(p)
		}
		sort.Strings(out)

		return out
	}

	direct := collect(t, seq, pairing.Options{Strategy: pairing.DirectRecursive})
	filtered := collect(t, seq, pairing.Options{Strategy: pairing.PermutationFilter})
	assert.Equal(t, asStrings(direct), asStrings(filtered), "strategies must agree on content")
}

// TestEnumerate_Deterministic verifies two runs over the same input emit the
// same multiset of partitions.
func TestEnumerate_Deterministic(t *testing.T) {
	seq := []int{0, 0, 1, 1, 3, 3, 7, 7}
	first := collect(t, seq, pairing.DefaultOptions())
	second := collect(t, seq, pairing.DefaultOptions())
	require.Len(t, first, 105, "(8-1)!! = 105")
	assert.Equal(t, first, second, "same strategy must reproduce the same stream")
}

// TestEnumerate_EarlyStop verifies the stream honors a consumer break.
func TestEnumerate_EarlyStop(t *testing.T) {
	for _, s := range []pairing.Strategy{pairing.DirectRecursive, pairing.PermutationFilter} {
		parts, err := pairing.Enumerate([]int{0, 1, 2, 3, 4, 5}, pairing.Options{Strategy: s})
		require.NoError(t, err)

		count := 0
		for range parts {
			count++
			if count == 2 {
				break
			}
		}
		assert.Equal(t, 2, count, "breaking the range must stop the generator")
	}
}

// TestDoubleFactorial pins the closed form used by the counting tests.
func TestDoubleFactorial(t *testing.T) {
	want := []int{1, 1, 3, 15, 105, 945}
	for n, w := range want {
		assert.Equal(t, w, pairing.DoubleFactorial(n), "(2·%d-1)!!", n)
	}
}
