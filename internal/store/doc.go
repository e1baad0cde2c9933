// Package store holds a dataset in SQLite so query plans compiled by
// querysql can be run against a real relational engine.
//
// The store is a reference backend, not a database of record: it is
// normally opened in memory and loaded from a roster.Dataset once per
// process. Load replaces the previous contents.
//
// # Layout
//
//   - employees: one row per employee, salary as integer minor units
//     (SalaryScale fractional digits)
//   - departments: one row per department
//
// Both tables carry ord, the record's position in its source sequence.
// Queries that end with ORDER BY ..., ord ASC return rows in the same
// order as the stable in-memory operators.
//
// # Database Configuration
//
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - a single pooled connection, so in-memory databases are shared by
//     every query
package store
