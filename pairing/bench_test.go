package pairing_test

import (
	"testing"

	"github.com/katalvlaran/wick/pairing"
)

// benchmarkEnumerate drains a full pairing stream over 2n distinct labels.
func benchmarkEnumerate(b *testing.B, n int, opts pairing.Options) {
	seq := make([]int, 2*n)
	for i := range seq {
		seq[i] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		parts, err := pairing.Enumerate(seq, opts)
		if err != nil {
			b.Fatalf("Enumerate failed: %v", err)
		}
		count := 0
		for range parts {
			count++
		}
		if count != pairing.DoubleFactorial(n) {
			b.Fatalf("expected %d pairings, got %d", pairing.DoubleFactorial(n), count)
		}
	}
}

// BenchmarkEnumerate_Direct4 benchmarks the direct generator on 8 symbols (105 pairings).
func BenchmarkEnumerate_Direct4(b *testing.B) {
	benchmarkEnumerate(b, 4, pairing.Options{Strategy: pairing.DirectRecursive})
}

// BenchmarkEnumerate_Direct6 benchmarks the direct generator on 12 symbols (10395 pairings).
func BenchmarkEnumerate_Direct6(b *testing.B) {
	benchmarkEnumerate(b, 6, pairing.Options{Strategy: pairing.DirectRecursive})
}

// BenchmarkEnumerate_Filter3 benchmarks the permutation filter on 6 symbols (720 permutations).
func BenchmarkEnumerate_Filter3(b *testing.B) {
	benchmarkEnumerate(b, 3, pairing.Options{Strategy: pairing.PermutationFilter})
}

// BenchmarkEnumerate_Filter4 benchmarks the permutation filter on 8 symbols (40320 permutations).
func BenchmarkEnumerate_Filter4(b *testing.B) {
	benchmarkEnumerate(b, 4, pairing.Options{Strategy: pairing.PermutationFilter})
}
