package query

import (
	"iter"
	"slices"
)

// From returns a sequence over items in slice order.
// The slice is read on every iteration, not copied.
func From[T any](items []T) iter.Seq[T] {
	return slices.Values(items)
}

// Select projects each element of seq through fn. Deferred.
func Select[T, V any](seq iter.Seq[T], fn func(T) V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

// ToSlice materializes seq.
func ToSlice[T any](seq iter.Seq[T]) []T {
	return slices.Collect(seq)
}

// Count returns the number of elements in seq.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// matchAll combines optional predicates. No predicates matches everything.
func matchAll[T any](preds []func(T) bool) func(T) bool {
	return func(v T) bool {
		for _, p := range preds {
			if !p(v) {
				return false
			}
		}
		return true
	}
}
