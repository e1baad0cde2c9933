// Package roster provides the employee and department records queried by
// the demo, the built-in sample dataset, and loaders for dataset files.
//
// Records are immutable once constructed. Salaries are fixed-point decimals
// (Money); no float types are used so that ordering and rendering are exact.
//
// Referential integrity between Employee.DepartmentID and Department.ID is
// assumed but not enforced. Identifiers must be unique within each sequence;
// loaders reject duplicates.
package roster
