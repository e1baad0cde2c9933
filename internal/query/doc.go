// Package query provides composable operators over ordered, in-memory
// sequences of records.
//
// Sequences are iter.Seq values. Operators fall into two evaluation classes:
//
// DEFERRED:
//
// Where, OfType, Select, Join, Distinct, GroupBy and Ordered.All return a
// sequence whose body does the work when it is ranged over. Ranging twice
// re-runs the computation against the source; nothing is cached.
//
// IMMEDIATE:
//
// ToLookup, ToSlice, Count, the quantifiers (All, Any, Contains) and the
// element accessors consume the source at call time.
//
// ERRORS:
//
// Strict element accessors (ElementAt, First, Last, Single) return an *Error
// when no element qualifies. The OrDefault variants return the zero value
// instead, except that SingleOrDefault still fails on ambiguity:
//
//	_, err := query.Single(employees, isHighEarner)
//	switch {
//	case query.IsAmbiguous(err):
//	    // more than one match
//	case query.IsNotFound(err):
//	    // no match
//	}
//
// EQUALITY CONTRACT:
//
// Contains and Distinct take an Equality. Its Equal and Hash functions must be
// consistent: elements that are Equal must produce the same Hash. The package
// does not detect violations; an inconsistent pair yields wrong answers.
//
// The package never logs and holds no state between calls.
package query
