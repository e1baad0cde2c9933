package query

import (
	"hash/maphash"
	"iter"
)

// Equality is a caller-supplied notion of element equality.
//
// Equal must be an equivalence relation. Hash is optional; when set it must
// be consistent with Equal (Equal(a, b) implies Hash(a) == Hash(b)).
// Violations are not detected.
type Equality[T any] struct {
	Equal func(a, b T) bool
	Hash  func(T) uint64
}

// EqualityBy treats two elements as equal when their projected keys are
// equal, e.g. matching records by identifier only.
func EqualityBy[T any, K comparable](key func(T) K) Equality[T] {
	seed := maphash.MakeSeed()
	return Equality[T]{
		Equal: func(a, b T) bool { return key(a) == key(b) },
		Hash:  func(v T) uint64 { return maphash.Comparable(seed, key(v)) },
	}
}

// Distinct emits the first element of each equivalence class under eq, in
// source order. Deferred. Without eq.Hash every element is compared against
// every class seen so far.
func Distinct[T any](seq iter.Seq[T], eq Equality[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		buckets := make(map[uint64][]T)
		for v := range seq {
			var h uint64
			if eq.Hash != nil {
				h = eq.Hash(v)
			}
			if containsEqual(buckets[h], v, eq.Equal) {
				continue
			}
			buckets[h] = append(buckets[h], v)
			if !yield(v) {
				return
			}
		}
	}
}

func containsEqual[T any](items []T, v T, equal func(a, b T) bool) bool {
	for _, it := range items {
		if equal(it, v) {
			return true
		}
	}
	return false
}
