package demo

import (
	"iter"

	"golang.org/x/text/collate"

	"github.com/roach88/quarry/internal/query"
	"github.com/roach88/quarry/internal/roster"
)

// EmployeeDetail is an employee joined with its department.
type EmployeeDetail struct {
	ID             int
	FirstName      string
	LastName       string
	AnnualSalary   roster.Money
	DepartmentID   int
	DepartmentName string
}

func employeeID(e roster.Employee) int     { return e.ID }
func departmentOf(e roster.Employee) int   { return e.DepartmentID }
func departmentID(d roster.Department) int { return d.ID }
func salaryOf(d EmployeeDetail) roster.Money {
	return d.AnnualSalary
}

// JoinDetails joins employees to departments on department id.
// Employees with an unknown department are dropped.
func JoinDetails(ds *roster.Dataset) iter.Seq[EmployeeDetail] {
	return query.Join(
		query.From(ds.Employees),
		query.From(ds.Departments),
		departmentOf,
		departmentID,
		func(e roster.Employee, d roster.Department) EmployeeDetail {
			return EmployeeDetail{
				ID:             e.ID,
				FirstName:      e.FirstName,
				LastName:       e.LastName,
				AnnualSalary:   e.AnnualSalary,
				DepartmentID:   e.DepartmentID,
				DepartmentName: d.LongName,
			}
		},
	)
}

// ByDepartmentThenSalaryDesc orders joined rows by department id ascending,
// then salary descending.
func ByDepartmentThenSalaryDesc(ds *roster.Dataset) iter.Seq[EmployeeDetail] {
	return query.OrderBy(JoinDetails(ds), query.Asc(func(d EmployeeDetail) int { return d.DepartmentID })).
		ThenBy(query.KeyFunc(salaryOf, roster.Money.Cmp, query.Descending)).
		All()
}

// ByDepartmentDescThenSalary orders joined rows by department id
// descending, then salary ascending.
func ByDepartmentDescThenSalary(ds *roster.Dataset) iter.Seq[EmployeeDetail] {
	return query.OrderBy(JoinDetails(ds), query.Desc(func(d EmployeeDetail) int { return d.DepartmentID })).
		ThenBy(query.KeyFunc(salaryOf, roster.Money.Cmp, query.Ascending)).
		All()
}

// GroupedByDepartmentDesc groups employees by department, highest
// department id first. Deferred.
func GroupedByDepartmentDesc(ds *roster.Dataset) iter.Seq[query.Grouping[int, roster.Employee]] {
	sorted := query.OrderBy(query.From(ds.Employees), query.Desc(departmentOf)).All()
	return query.GroupBy(sorted, departmentOf)
}

// LookupByDepartment groups employees by department, lowest department id
// first, evaluated immediately.
func LookupByDepartment(ds *roster.Dataset) *query.Lookup[int, roster.Employee] {
	sorted := query.OrderBy(query.From(ds.Employees), query.Asc(departmentOf)).All()
	return query.ToLookup(sorted, departmentOf)
}

// ByName orders employees by last name then first name under c.
func ByName(ds *roster.Dataset, c *collate.Collator) iter.Seq[roster.Employee] {
	return query.OrderBy(query.From(ds.Employees),
		query.Collated(func(e roster.Employee) string { return e.LastName }, c, query.Ascending)).
		ThenBy(query.Collated(func(e roster.Employee) string { return e.FirstName }, c, query.Ascending)).
		All()
}

// Managers filters to managers in source order.
func Managers(ds *roster.Dataset) iter.Seq[roster.Employee] {
	return query.Where(query.From(ds.Employees), isManager)
}

// EarningAbove filters to employees whose salary exceeds threshold.
func EarningAbove(ds *roster.Dataset, threshold roster.Money) iter.Seq[roster.Employee] {
	return query.Where(query.From(ds.Employees), earnsMoreThan(threshold))
}

func isManager(e roster.Employee) bool { return e.IsManager }

func earnsMoreThan(threshold roster.Money) func(roster.Employee) bool {
	return func(e roster.Employee) bool { return e.AnnualSalary.GreaterThan(threshold) }
}

func earnsAtLeast(threshold roster.Money) func(roster.Employee) bool {
	return func(e roster.Employee) bool { return e.AnnualSalary.AtLeast(threshold) }
}

func not[T any](pred func(T) bool) func(T) bool {
	return func(v T) bool { return !pred(v) }
}

func inDepartment(id int) func(roster.Employee) bool {
	return func(e roster.Employee) bool { return e.DepartmentID == id }
}
