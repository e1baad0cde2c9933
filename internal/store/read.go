package store

import (
	"context"
	"fmt"

	"github.com/roach88/quarry/internal/roster"
)

// ReadDataset returns the stored records in source order.
func (s *Store) ReadDataset(ctx context.Context) (*roster.Dataset, error) {
	employees, err := s.readEmployees(ctx)
	if err != nil {
		return nil, err
	}

	departments, err := s.readDepartments(ctx)
	if err != nil {
		return nil, err
	}

	return &roster.Dataset{Employees: employees, Departments: departments}, nil
}

func (s *Store) readEmployees(ctx context.Context) ([]roster.Employee, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, salary_minor, is_manager, department_id
		FROM employees
		ORDER BY ord ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	employees := []roster.Employee{}
	for rows.Next() {
		var (
			e      roster.Employee
			salary int64
		)
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &salary, &e.IsManager, &e.DepartmentID); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		e.AnnualSalary = roster.MoneyFromMinor(salary, SalaryScale)
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate employees: %w", err)
	}
	return employees, nil
}

func (s *Store) readDepartments(ctx context.Context) ([]roster.Department, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, short_name, long_name
		FROM departments
		ORDER BY ord ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query departments: %w", err)
	}
	defer rows.Close()

	departments := []roster.Department{}
	for rows.Next() {
		var d roster.Department
		if err := rows.Scan(&d.ID, &d.ShortName, &d.LongName); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		departments = append(departments, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate departments: %w", err)
	}
	return departments, nil
}

// QueryIDs runs a query whose first column is an integer id and returns
// the ids in row order. Returns an empty slice (not nil) for no rows.
func (s *Store) QueryIDs(ctx context.Context, query string, args ...any) ([]int, error) {
	rows, err := s.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ids: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("query ids: columns: %w", err)
	}

	ids := []int{}
	dest := make([]any, len(cols))
	for i := range dest {
		dest[i] = new(any)
	}
	for rows.Next() {
		var id int
		dest[0] = &id
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("query ids: scan: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query ids: iterate: %w", err)
	}
	return ids, nil
}
