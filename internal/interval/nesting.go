package interval

import (
	"fmt"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Integer has no cmp equivalent.
)

// Nesting is a set of properly nested half-open intervals [start, end)
// with endpoints in K, supporting innermost-enclosing lookups.
//
// Properly nested means that any two intervals in the set are either
// disjoint or one contains the other, and no two intervals share a start.
// Delimited group spans in a token tree have exactly this shape, since
// each group starts at its own opening delimiter.
//
// A zero value is ready to use.
type Nesting[K constraints.Integer, V any] struct {
	// Keys in this map are the starts of intervals in the map.
	tree btree.Map[K, *entry[K, V]]
}

// Interval is an entry returned by [Nesting.Innermost].
type Interval[K constraints.Integer, V any] struct {
	// The range for this interval.
	Start, End K

	// The value associated with it.
	Value V
}

type entry[K constraints.Integer, V any] struct {
	end   K
	value V
}

// Len returns the number of intervals in the set.
func (n *Nesting[K, V]) Len() int {
	return n.tree.Len()
}

// Insert inserts a new interval with the given associated value.
//
// Panics if the interval is empty or inverted, or if an interval with the
// same start is already present. Insert does not verify proper nesting
// against existing intervals; callers are expected to insert spans that
// come from a single tree.
func (n *Nesting[K, V]) Insert(start, end K, value V) {
	if start >= end {
		panic(fmt.Sprintf("interval: start (%v) >= end (%v)", start, end))
	}
	if _, ok := n.tree.Get(start); ok {
		panic(fmt.Sprintf("interval: duplicate interval start (%v)", start))
	}
	n.tree.Set(start, &entry[K, V]{end: end, value: value})
}

// Innermost returns the smallest interval containing key, if one exists.
func (n *Nesting[K, V]) Innermost(key K) (Interval[K, V], bool) {
	var (
		out   Interval[K, V]
		found bool
	)

	// Scan intervals with start <= key in descending start order. Intervals
	// that end at or before key are earlier siblings (or their children);
	// the first interval that extends past key contains it, and because the
	// set is properly nested, the one with the greatest start is innermost.
	n.tree.Descend(key, func(start K, e *entry[K, V]) bool {
		if e.end > key {
			out = Interval[K, V]{Start: start, End: e.end, Value: e.value}
			found = true
			return false
		}
		return true
	})

	return out, found
}
