package render

import (
	"iter"

	orderedmap "github.com/elliotchance/orderedmap/v2"

	"github.com/katalvlaran/wick/stationary"
)

// Term is one summand of the expansion: a lag shape and the number of
// pairings that reduced to it.
type Term struct {
	Shape stationary.Shape
	Count int
}

// CountTable accumulates shape multiplicities across a full shape stream,
// preserving first-seen order. It is the presentation-side aggregate; the
// core packages never build one.
type CountTable struct {
	terms *orderedmap.OrderedMap[string, *Term]
	total int
}

// NewCountTable returns an empty table.
func NewCountTable() *CountTable {
	return &CountTable{terms: orderedmap.NewOrderedMap[string, *Term]()}
}

// Tally drains shapes into a fresh CountTable.
func Tally(shapes iter.Seq[stationary.Shape]) *CountTable {
	t := NewCountTable()
	for s := range shapes {
		t.Add(s)
	}

	return t
}

// Add records one shape occurrence. Shapes of different length never merge,
// even when zero-extension would equate them.
func (t *CountTable) Add(s stationary.Shape) {
	t.total++
	key := s.Key()
	if term, ok := t.terms.Get(key); ok {
		term.Count++

		return
	}
	t.terms.Set(key, &Term{Shape: s, Count: 1})
}

// Len returns the number of distinct shapes seen.
func (t *CountTable) Len() int {
	return t.terms.Len()
}

// Total returns the number of shapes added, i.e. the number of pairings.
func (t *CountTable) Total() int {
	return t.total
}

// Terms returns the accumulated terms in first-seen order.
func (t *CountTable) Terms() []Term {
	out := make([]Term, 0, t.terms.Len())
	for el := t.terms.Front(); el != nil; el = el.Next() {
		out = append(out, *el.Value)
	}

	return out
}
