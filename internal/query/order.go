package query

import (
	"cmp"
	"iter"
	"slices"

	"golang.org/x/text/collate"
)

// Direction selects ascending or descending order for a SortKey.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortKey compares two elements by one key in one direction.
// Build with Asc, Desc, KeyFunc or Collated.
type SortKey[T any] struct {
	compare func(a, b T) int
}

// Asc orders by a naturally ordered key, smallest first.
func Asc[T any, K cmp.Ordered](key func(T) K) SortKey[T] {
	return KeyFunc(key, cmp.Compare[K], Ascending)
}

// Desc orders by a naturally ordered key, largest first.
func Desc[T any, K cmp.Ordered](key func(T) K) SortKey[T] {
	return KeyFunc(key, cmp.Compare[K], Descending)
}

// KeyFunc orders by a key compared with compare, which must return a
// negative number, zero or a positive number as a is less than, equal to or
// greater than b. Used for keys without a natural Go ordering, such as
// fixed-point decimals.
func KeyFunc[T, K any](key func(T) K, compare func(a, b K) int, dir Direction) SortKey[T] {
	if dir == Descending {
		return SortKey[T]{compare: func(a, b T) int { return compare(key(b), key(a)) }}
	}
	return SortKey[T]{compare: func(a, b T) int { return compare(key(a), key(b)) }}
}

// Collated orders by a string key using linguistic collation rather than
// byte order. A Collator is not safe for concurrent use; do not share one
// between sequences ranged from different goroutines.
func Collated[T any](key func(T) string, c *collate.Collator, dir Direction) SortKey[T] {
	return KeyFunc(key, c.CompareString, dir)
}

// Ordered is a sequence sorted by one or more keys in priority order.
// It is immutable: ThenBy returns a new Ordered.
type Ordered[T any] struct {
	source iter.Seq[T]
	keys   []SortKey[T]
}

// OrderBy starts an ordering of seq by key.
func OrderBy[T any](seq iter.Seq[T], key SortKey[T]) *Ordered[T] {
	return &Ordered[T]{source: seq, keys: []SortKey[T]{key}}
}

// ThenBy adds a tie-break key applied when all previous keys compare equal.
func (o *Ordered[T]) ThenBy(key SortKey[T]) *Ordered[T] {
	keys := make([]SortKey[T], len(o.keys), len(o.keys)+1)
	copy(keys, o.keys)
	return &Ordered[T]{source: o.source, keys: append(keys, key)}
}

// All returns the sorted sequence. Deferred: the source is collected and
// sorted each time the result is ranged over.
//
// The sort is stable, so elements equal under every key keep their source
// order.
func (o *Ordered[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		items := slices.Collect(o.source)
		slices.SortStableFunc(items, o.compare)
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

func (o *Ordered[T]) compare(a, b T) int {
	for _, k := range o.keys {
		if c := k.compare(a, b); c != 0 {
			return c
		}
	}
	return 0
}
