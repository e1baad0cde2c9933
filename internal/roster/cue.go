package roster

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// LoadCUE decodes a dataset written as CUE data:
//
//	departments: [{id: 1, short_name: "HR", long_name: "Human Resources"}]
//	employees: [{id: 1, first_name: "Bob", last_name: "Jones",
//	    annual_salary: 60000.3, is_manager: true, department_id: 1}]
//
// The value must be concrete. Salaries are read from CUE's decimal
// representation, so no float rounding occurs.
func LoadCUE(filename string, src []byte) (*Dataset, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	var ds Dataset
	err := eachElement(v, "employees", func(el cue.Value) error {
		e, err := decodeEmployee(el)
		if err != nil {
			return err
		}
		ds.Employees = append(ds.Employees, e)
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = eachElement(v, "departments", func(el cue.Value) error {
		d, err := decodeDepartment(el)
		if err != nil {
			return err
		}
		ds.Departments = append(ds.Departments, d)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := finish(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// eachElement calls fn for every element of the list at name.
// A missing field is an empty list.
func eachElement(v cue.Value, name string, fn func(cue.Value) error) error {
	list := v.LookupPath(cue.ParsePath(name))
	if !list.Exists() {
		return nil
	}
	it, err := list.List()
	if err != nil {
		return fmt.Errorf("%s: %w", name, formatCUEError(err))
	}
	for i := 0; it.Next(); i++ {
		if err := fn(it.Value()); err != nil {
			return fmt.Errorf("%s[%d]: %w", name, i, err)
		}
	}
	return nil
}

func decodeEmployee(v cue.Value) (Employee, error) {
	var (
		e   Employee
		err error
	)
	if e.ID, err = intField(v, "id"); err != nil {
		return e, err
	}
	if e.FirstName, err = stringField(v, "first_name"); err != nil {
		return e, err
	}
	if e.LastName, err = stringField(v, "last_name"); err != nil {
		return e, err
	}
	if e.AnnualSalary, err = moneyField(v, "annual_salary"); err != nil {
		return e, err
	}
	if e.IsManager, err = boolField(v, "is_manager"); err != nil {
		return e, err
	}
	if e.DepartmentID, err = intField(v, "department_id"); err != nil {
		return e, err
	}
	return e, nil
}

func decodeDepartment(v cue.Value) (Department, error) {
	var (
		d   Department
		err error
	)
	if d.ID, err = intField(v, "id"); err != nil {
		return d, err
	}
	if d.ShortName, err = stringField(v, "short_name"); err != nil {
		return d, err
	}
	if d.LongName, err = stringField(v, "long_name"); err != nil {
		return d, err
	}
	return d, nil
}

func field(v cue.Value, name string) (cue.Value, error) {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return f, fmt.Errorf("%s is required", name)
	}
	return f, nil
}

func intField(v cue.Value, name string) (int, error) {
	f, err := field(v, name)
	if err != nil {
		return 0, err
	}
	n, err := f.Int64()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, formatCUEError(err))
	}
	return int(n), nil
}

func stringField(v cue.Value, name string) (string, error) {
	f, err := field(v, name)
	if err != nil {
		return "", err
	}
	s, err := f.String()
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, formatCUEError(err))
	}
	return s, nil
}

func boolField(v cue.Value, name string) (bool, error) {
	f, err := field(v, name)
	if err != nil {
		return false, err
	}
	b, err := f.Bool()
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, formatCUEError(err))
	}
	return b, nil
}

// moneyField reads a number through its JSON literal, which CUE renders
// from its exact decimal value.
func moneyField(v cue.Value, name string) (Money, error) {
	f, err := field(v, name)
	if err != nil {
		return Money{}, err
	}
	if k := f.Kind(); k != cue.IntKind && k != cue.FloatKind {
		return Money{}, fmt.Errorf("%s: want number, got %v", name, k)
	}
	lit, err := f.MarshalJSON()
	if err != nil {
		return Money{}, fmt.Errorf("%s: %w", name, formatCUEError(err))
	}
	return ParseMoney(string(lit))
}

// formatCUEError flattens a CUE error list into one error with positions.
func formatCUEError(err error) error {
	return fmt.Errorf("cue: %s", cueerrors.Details(err, nil))
}
