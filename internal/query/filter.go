package query

import "iter"

// Where emits the elements of seq that satisfy pred, in source order.
// Deferred: pred runs each time the result is ranged over.
func Where[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// OfType emits the elements of a heterogeneous sequence whose dynamic type
// is T, in source order. Deferred.
//
// T may be an interface type, in which case every element implementing it
// is emitted. Nil elements never match.
func OfType[T any](seq iter.Seq[any]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			t, ok := v.(T)
			if ok && !yield(t) {
				return
			}
		}
	}
}
