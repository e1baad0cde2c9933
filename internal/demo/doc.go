// Package demo is the sequence of queries run against a roster dataset and
// the report that prints their results.
//
// Each section has a header line followed by one fixed-width line per
// result row. Sections are independent; the strict element accessors print
// their failures as "Error: ..." lines rather than aborting the report.
package demo
