package query

import "iter"

// All reports whether every element satisfies pred.
// True for an empty sequence. Stops at the first failure.
func All[T any](seq iter.Seq[T], pred func(T) bool) bool {
	for v := range seq {
		if !pred(v) {
			return false
		}
	}
	return true
}

// Any reports whether some element satisfies every given predicate.
// With no predicates it reports whether seq is non-empty.
// False for an empty sequence.
func Any[T any](seq iter.Seq[T], preds ...func(T) bool) bool {
	match := matchAll(preds)
	for v := range seq {
		if match(v) {
			return true
		}
	}
	return false
}

// Contains reports whether some element equals target under eq.
// Equivalent to Any(seq, func(v T) bool { return eq.Equal(v, target) });
// eq.Hash, when set, is used to skip elements cheaply.
func Contains[T any](seq iter.Seq[T], target T, eq Equality[T]) bool {
	if eq.Hash == nil {
		return Any(seq, func(v T) bool { return eq.Equal(v, target) })
	}
	h := eq.Hash(target)
	return Any(seq, func(v T) bool { return eq.Hash(v) == h && eq.Equal(v, target) })
}
