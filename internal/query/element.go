package query

import "iter"

// ElementAt returns the element at zero-based index n.
// Fails with CodeOutOfRange when n is outside [0, length).
func ElementAt[T any](seq iter.Seq[T], n int) (T, error) {
	var zero T
	if n < 0 {
		return zero, outOfRange("ElementAt", n, Count(seq))
	}
	i := 0
	for v := range seq {
		if i == n {
			return v, nil
		}
		i++
	}
	return zero, outOfRange("ElementAt", n, i)
}

// ElementAtOrDefault returns the element at index n, or the zero value of T
// when n is out of range.
func ElementAtOrDefault[T any](seq iter.Seq[T], n int) T {
	v, _ := ElementAt(seq, n)
	return v
}

// First returns the first element satisfying every predicate (the first
// element overall when none are given). Fails with CodeNotFound.
func First[T any](seq iter.Seq[T], preds ...func(T) bool) (T, error) {
	match := matchAll(preds)
	for v := range seq {
		if match(v) {
			return v, nil
		}
	}
	var zero T
	return zero, notFound("First")
}

// FirstOrDefault is First returning the zero value instead of failing.
func FirstOrDefault[T any](seq iter.Seq[T], preds ...func(T) bool) T {
	v, _ := First(seq, preds...)
	return v
}

// Last returns the last element satisfying every predicate (the last element
// overall when none are given). Fails with CodeNotFound.
func Last[T any](seq iter.Seq[T], preds ...func(T) bool) (T, error) {
	match := matchAll(preds)
	var last T
	found := false
	for v := range seq {
		if match(v) {
			last, found = v, true
		}
	}
	if !found {
		return last, notFound("Last")
	}
	return last, nil
}

// LastOrDefault is Last returning the zero value instead of failing.
func LastOrDefault[T any](seq iter.Seq[T], preds ...func(T) bool) T {
	v, _ := Last(seq, preds...)
	return v
}

// Single returns the only element satisfying every predicate.
// Fails with CodeNotFound when none match and CodeAmbiguous when more than
// one does.
func Single[T any](seq iter.Seq[T], preds ...func(T) bool) (T, error) {
	v, found, err := single("Single", seq, preds)
	if err != nil {
		return v, err
	}
	if !found {
		return v, notFound("Single")
	}
	return v, nil
}

// SingleOrDefault returns the only matching element, or the zero value when
// none match. More than one match is still an error.
func SingleOrDefault[T any](seq iter.Seq[T], preds ...func(T) bool) (T, error) {
	v, _, err := single("SingleOrDefault", seq, preds)
	return v, err
}

// single stops scanning at the second match.
func single[T any](op string, seq iter.Seq[T], preds []func(T) bool) (T, bool, error) {
	match := matchAll(preds)
	var (
		zero, result T
		found        bool
	)
	for v := range seq {
		if !match(v) {
			continue
		}
		if found {
			return zero, true, ambiguous(op)
		}
		result, found = v, true
	}
	return result, found, nil
}
