package stationary

import (
	"errors"
	"iter"
	"strconv"
	"strings"

	"github.com/katalvlaran/wick/pairing"
)

// ErrTokenOverflow indicates more than 62 distinct tokens were supplied;
// the 2^k−1 labeling would overflow int64 and lose exactness.
var ErrTokenOverflow = errors.New("stationary: more than 62 distinct tokens overflow the labeling")

// maxDistinctTokens bounds the 2^k−1 labeling to exact int64 arithmetic.
const maxDistinctTokens = 62

// Shape is the lag tally of one pairing: Shape[k] is the number of pairs at
// lag k, for k from 0 to the largest lag present. Length varies per pairing
// and is significant — shapes of different length are distinct even when the
// shorter one zero-extends to the longer.
type Shape []int

// Sum returns the total number of pairs in the shape, always n for a
// 2n-element input.
func (s Shape) Sum() int {
	total := 0
	for _, c := range s {
		total += c
	}

	return total
}

// Key returns a hashable identity for the shape, suitable as a map key for
// tallying. Distinct lengths yield distinct keys.
func (s Shape) Key() string {
	var b strings.Builder
	for i, c := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c))
	}

	return b.String()
}

// String renders the shape in tuple form, e.g. "(1,0,2)".
func (s Shape) String() string {
	return "(" + s.Key() + ")"
}

// Reduce returns a lazy sequence of the Shape of every pairing of seq, where
// seq holds integer positions on a stationary index line.
//
// Contracts:
//   - len(seq) must be even; odd length returns pairing.ErrOddLength.
//   - An empty seq yields exactly one empty Shape.
//   - Every emitted Shape sums to len(seq)/2.
//
// Complexity: that of the pairing enumeration plus O(n) per pairing.
func Reduce(seq []int, opts pairing.Options) (iter.Seq[Shape], error) {
	parts, err := pairing.Enumerate(seq, opts)
	if err != nil {
		return nil, err
	}

	return func(yield func(Shape) bool) {
		for p := range parts {
			if !yield(shapeOf(p)) {
				return
			}
		}
	}, nil
}

// shapeOf tallies the absolute pair differences of one emitted partition.
func shapeOf(part []int) Shape {
	if len(part) == 0 {
		return Shape{}
	}

	maxLag := 0
	lags := make([]int, 0, len(part)/2)
	for j := 0; j < len(part); j += 2 {
		d := part[j+1] - part[j]
		if d < 0 {
			d = -d
		}
		lags = append(lags, d)
		if d > maxLag {
			maxLag = d
		}
	}

	s := make(Shape, maxLag+1)
	for _, d := range lags {
		s[d]++
	}

	return s
}
