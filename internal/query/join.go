package query

import "iter"

// Join performs an inner equi-join of left and right.
//
// For each left element, in left order, every right element whose key equals
// the left key is paired with it in right order and passed to project.
// Left elements without a match produce nothing; several matches fan out
// into several results.
//
// Deferred: right is indexed by key each time the result is ranged over.
func Join[L, R any, K comparable, V any](
	left iter.Seq[L],
	right iter.Seq[R],
	leftKey func(L) K,
	rightKey func(R) K,
	project func(L, R) V,
) iter.Seq[V] {
	return func(yield func(V) bool) {
		index := make(map[K][]R)
		for r := range right {
			k := rightKey(r)
			index[k] = append(index[k], r)
		}

		for l := range left {
			for _, r := range index[leftKey(l)] {
				if !yield(project(l, r)) {
					return
				}
			}
		}
	}
}
