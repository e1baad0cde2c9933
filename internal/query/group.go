package query

import "iter"

// Grouping is one partition produced by GroupBy or a Lookup.
// Items keep the relative order they had in the source.
type Grouping[K comparable, T any] struct {
	Key   K
	Items []T
}

// Len returns the number of members.
func (g Grouping[K, T]) Len() int {
	return len(g.Items)
}

// GroupBy partitions seq by key.
//
// Groups are yielded in the order their key first occurs in seq, so a
// pre-sorted source yields groups in sort order. Deferred: partitioning
// happens each time the result is ranged over.
func GroupBy[T any, K comparable](seq iter.Seq[T], key func(T) K) iter.Seq[Grouping[K, T]] {
	return func(yield func(Grouping[K, T]) bool) {
		for _, g := range partition(seq, key) {
			if !yield(g) {
				return
			}
		}
	}
}

// Lookup is an immediately evaluated grouping, queryable by key without
// re-reading the source.
type Lookup[K comparable, T any] struct {
	groups []Grouping[K, T]
	index  map[K]int
}

// ToLookup partitions seq by key now and returns the result.
func ToLookup[T any, K comparable](seq iter.Seq[T], key func(T) K) *Lookup[K, T] {
	groups := partition(seq, key)
	index := make(map[K]int, len(groups))
	for i, g := range groups {
		index[g.Key] = i
	}
	return &Lookup[K, T]{groups: groups, index: index}
}

// Get returns the members for k, or nil if k has no members.
func (l *Lookup[K, T]) Get(k K) []T {
	i, ok := l.index[k]
	if !ok {
		return nil
	}
	return l.groups[i].Items
}

// Contains reports whether k has at least one member.
func (l *Lookup[K, T]) Contains(k K) bool {
	_, ok := l.index[k]
	return ok
}

// Len returns the number of distinct keys.
func (l *Lookup[K, T]) Len() int {
	return len(l.groups)
}

// Keys returns the keys in first-occurrence order.
func (l *Lookup[K, T]) Keys() []K {
	keys := make([]K, len(l.groups))
	for i, g := range l.groups {
		keys[i] = g.Key
	}
	return keys
}

// All yields the groups in first-occurrence order.
func (l *Lookup[K, T]) All() iter.Seq[Grouping[K, T]] {
	return func(yield func(Grouping[K, T]) bool) {
		for _, g := range l.groups {
			if !yield(g) {
				return
			}
		}
	}
}

func partition[T any, K comparable](seq iter.Seq[T], key func(T) K) []Grouping[K, T] {
	var groups []Grouping[K, T]
	index := make(map[K]int)
	for v := range seq {
		k := key(v)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Grouping[K, T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, v)
	}
	return groups
}
