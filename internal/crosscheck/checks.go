package crosscheck

import (
	"iter"

	"github.com/roach88/quarry/internal/demo"
	"github.com/roach88/quarry/internal/query"
	"github.com/roach88/quarry/internal/queryir"
	"github.com/roach88/quarry/internal/roster"
	"github.com/roach88/quarry/internal/store"
)

// Check pairs an engine pipeline with an equivalent query plan.
type Check struct {
	Name string

	// Plan must select the id column first.
	Plan queryir.Query

	// Engine returns the ids the in-memory pipeline yields, in order.
	Engine func(ds *roster.Dataset) []int
}

// highEarnerThreshold matches the threshold of the demo filters section.
var highEarnerThreshold = roster.MustMoney("50000")

// DefaultChecks returns the checks run by `quarry verify`.
func DefaultChecks() []Check {
	return []Check{
		{
			Name: "sort-method",
			Plan: orderedDetails(
				queryir.SortKey{Field: "employees.department_id"},
				queryir.SortKey{Field: "employees.salary_minor", Descending: true},
			),
			Engine: func(ds *roster.Dataset) []int {
				return detailIDs(query.ToSlice(demo.ByDepartmentThenSalaryDesc(ds)))
			},
		},
		{
			Name: "sort-query",
			Plan: orderedDetails(
				queryir.SortKey{Field: "employees.department_id", Descending: true},
				queryir.SortKey{Field: "employees.salary_minor"},
			),
			Engine: func(ds *roster.Dataset) []int {
				return detailIDs(query.ToSlice(demo.ByDepartmentDescThenSalary(ds)))
			},
		},
		{
			Name: "managers",
			Plan: queryir.Select{
				From:     "employees",
				Filter:   queryir.Equals{Field: "is_manager", Value: queryir.Bool(true)},
				Bindings: map[string]string{"id": "id"},
			},
			Engine: func(ds *roster.Dataset) []int {
				return employeeIDs(demo.Managers(ds))
			},
		},
		{
			Name: "earning-above",
			Plan: queryir.Select{
				From:     "employees",
				Filter:   queryir.Greater{Field: "salary_minor", Value: mustMinor(highEarnerThreshold)},
				Bindings: map[string]string{"id": "id"},
			},
			Engine: func(ds *roster.Dataset) []int {
				return employeeIDs(demo.EarningAbove(ds, highEarnerThreshold))
			},
		},
		{
			Name: "grouped-by-department",
			Plan: queryir.OrderBy{
				Source: queryir.Select{From: "employees", Bindings: map[string]string{"id": "id"}},
				Keys:   []queryir.SortKey{{Field: "department_id", Descending: true}},
			},
			Engine: func(ds *roster.Dataset) []int {
				var ids []int
				for g := range demo.GroupedByDepartmentDesc(ds) {
					for _, e := range g.Items {
						ids = append(ids, e.ID)
					}
				}
				return ids
			},
		},
	}
}

func orderedDetails(keys ...queryir.SortKey) queryir.Query {
	return queryir.OrderBy{
		Source: queryir.Join{
			Left:  queryir.Select{From: "employees"},
			Right: queryir.Select{From: "departments"},
			On:    queryir.FieldEquals{Left: "employees.department_id", Right: "departments.id"},
			Bindings: map[string]string{"employees.id": "id"},
		},
		Keys: keys,
	}
}

func detailIDs(rows []demo.EmployeeDetail) []int {
	ids := make([]int, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func employeeIDs(seq iter.Seq[roster.Employee]) []int {
	return query.ToSlice(query.Select(seq, func(e roster.Employee) int { return e.ID }))
}

func mustMinor(m roster.Money) queryir.Int {
	n, err := m.MinorUnits(store.SalaryScale)
	if err != nil {
		panic(err)
	}
	return queryir.Int(n)
}
