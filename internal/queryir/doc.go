// Package queryir describes the relational subset of the query engine as
// data, so the same pipeline can be compiled for a SQL backend and checked
// against the in-memory operators.
//
// ARCHITECTURE:
//
//	[demo pipeline] -> [Query IR] -> [querysql] -> [store (SQLite)]
//	      |                                             |
//	      +------------- crosscheck compares -----------+
//
// FRAGMENT:
//
// The fragment covers what the engine's relational operators do:
//   - Select(from, filter, bindings): Where over one record sequence
//   - Join(left, right, on, bindings): inner equi-join
//   - OrderBy(source, keys): stable multi-key ordering
//   - Predicates: Equals, FieldEquals, Greater, And
//
// Excluded: outer joins, OR predicates, aggregation, NULLs, subqueries.
//
// ORDERING:
//
// A query without OrderBy yields source order. Backends must preserve it
// (querysql appends the ord column of each table as the final tiebreak), so
// rows equal under every key keep their relative order exactly as the
// in-memory stable sort does.
//
// SEALED INTERFACES:
//
// Query, Predicate and Value use the marker method pattern so backends can
// switch exhaustively:
//
//	switch q := query.(type) {
//	case Select:
//	case Join:
//	case OrderBy:
//	}
package queryir
