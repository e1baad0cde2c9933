package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/quarry/internal/roster"
)

// SalaryScale is the number of fractional salary digits kept in
// salary_minor.
const SalaryScale = 2

// Load replaces the store's contents with ds in one transaction. Each
// record's ord is its index in the dataset slice.
//
// Fails without changing the store if a salary has more than SalaryScale
// fractional digits or ids collide.
func (s *Store) Load(ctx context.Context, ds *roster.Dataset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("load: begin: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"employees", "departments"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("load: clear %s: %w", table, err)
		}
	}

	if err := insertDepartments(ctx, tx, ds.Departments); err != nil {
		return fmt.Errorf("load: %w", err)
	}
	if err := insertEmployees(ctx, tx, ds.Employees); err != nil {
		return fmt.Errorf("load: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("load: commit: %w", err)
	}

	s.logger.Debug("store loaded", "employees", len(ds.Employees), "departments", len(ds.Departments))
	return nil
}

func insertDepartments(ctx context.Context, tx *sql.Tx, departments []roster.Department) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO departments (id, short_name, long_name, ord)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare department insert: %w", err)
	}
	defer stmt.Close()

	for i, d := range departments {
		if _, err := stmt.ExecContext(ctx, d.ID, d.ShortName, d.LongName, i); err != nil {
			return fmt.Errorf("insert department %d: %w", d.ID, err)
		}
	}
	return nil
}

func insertEmployees(ctx context.Context, tx *sql.Tx, employees []roster.Employee) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO employees (id, first_name, last_name, salary_minor, is_manager, department_id, ord)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare employee insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range employees {
		salary, err := e.AnnualSalary.MinorUnits(SalaryScale)
		if err != nil {
			return fmt.Errorf("employee %d salary: %w", e.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, e.ID, e.FirstName, e.LastName, salary, e.IsManager, e.DepartmentID, i); err != nil {
			return fmt.Errorf("insert employee %d: %w", e.ID, err)
		}
	}
	return nil
}
