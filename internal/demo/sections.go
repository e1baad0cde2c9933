package demo

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/roach88/quarry/internal/query"
	"github.com/roach88/quarry/internal/roster"
)

// Section is one independent demo query with its rendering.
type Section struct {
	Name   string
	Title  string
	render func(ds *roster.Dataset) []string
}

// Lines runs the section's queries against ds.
func (s Section) Lines(ds *roster.Dataset) []string {
	return s.render(ds)
}

var sections = []Section{
	{Name: "sort-method", Title: "Sorting operators - Method syntax", render: renderSortMethod},
	{Name: "sort-query", Title: "Sorting operators - Query syntax", render: renderSortQuery},
	{Name: "group-by", Title: "Grouping operator GroupBy - Query syntax", render: renderGroupBy},
	{Name: "to-lookup", Title: "Grouping operator ToLookup - Method syntax", render: renderToLookup},
	{Name: "sort-name", Title: "Sorting operators - Collated names", render: renderSortName},
	{Name: "quantifiers", Title: "Quantifier operators", render: renderQuantifiers},
	{Name: "filters", Title: "Filter operators", render: renderFilters},
	{Name: "elements", Title: "Element operators", render: renderElements},
}

// Sections returns every section in report order.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// FindSection returns the section with the given name.
func FindSection(name string) (Section, bool) {
	for _, s := range sections {
		if s.Name == name {
			return s, true
		}
	}
	return Section{}, false
}

func detailLine(d EmployeeDetail) string {
	return fmt.Sprintf("Id: %-5dFirst Name: %-10s Last Name: %-10s Annual Salary: %-10s\tDepartment Id: %-10dDepartment Name: %s",
		d.ID, d.FirstName, d.LastName, d.AnnualSalary, d.DepartmentID, d.DepartmentName)
}

func renderSortMethod(ds *roster.Dataset) []string {
	var lines []string
	for d := range ByDepartmentThenSalaryDesc(ds) {
		lines = append(lines, detailLine(d))
	}
	return lines
}

func renderSortQuery(ds *roster.Dataset) []string {
	var lines []string
	for d := range ByDepartmentDescThenSalary(ds) {
		lines = append(lines, detailLine(d))
	}
	return lines
}

func groupLines(lines []string, g query.Grouping[int, roster.Employee]) []string {
	lines = append(lines, fmt.Sprintf("Department Id: %d", g.Key))
	for _, e := range g.Items {
		lines = append(lines, "\t Employee Fullname: "+e.FullName())
	}
	return lines
}

func renderGroupBy(ds *roster.Dataset) []string {
	var lines []string
	for g := range GroupedByDepartmentDesc(ds) {
		lines = groupLines(lines, g)
	}
	return lines
}

func renderToLookup(ds *roster.Dataset) []string {
	var lines []string
	for g := range LookupByDepartment(ds).All() {
		lines = groupLines(lines, g)
	}
	return lines
}

func renderSortName(ds *roster.Dataset) []string {
	var lines []string
	for e := range ByName(ds, collate.New(language.English)) {
		lines = append(lines, fmt.Sprintf("Last Name: %-10s First Name: %-10s Id: %d", e.LastName, e.FirstName, e.ID))
	}
	return lines
}

func renderQuantifiers(ds *roster.Dataset) []string {
	employees := query.From(ds.Employees)
	high := roster.MustMoney("200000")
	low := roster.MustMoney("20000")
	byID := query.EqualityBy(employeeID)

	lookalike := roster.Employee{ID: 3, FirstName: "Someone", LastName: "Else"}
	stranger := roster.Employee{ID: 42, FirstName: "Douglas", LastName: "Roberts"}

	distinct := query.Distinct(employees, query.EqualityBy(departmentOf))
	var deptIDs []string
	for e := range distinct {
		deptIDs = append(deptIDs, strconv.Itoa(e.DepartmentID))
	}

	return []string{
		fmt.Sprintf("All employees earn more than %s: %t", high, query.All(employees, earnsMoreThan(high))),
		fmt.Sprintf("Any employee earns more than %s: %t", high, query.Any(employees, earnsMoreThan(high))),
		fmt.Sprintf("All employees earn more than %s: %t", low, query.All(employees, earnsMoreThan(low))),
		fmt.Sprintf("Any manager in department 4: %t", query.Any(employees, isManager, inDepartment(4))),
		fmt.Sprintf("Contains employee with id %d (matched by id): %t", lookalike.ID, query.Contains(employees, lookalike, byID)),
		fmt.Sprintf("Contains employee with id %d (matched by id): %t", stranger.ID, query.Contains(employees, stranger, byID)),
		fmt.Sprintf("Departments with staff (distinct): %s", strings.Join(deptIDs, ", ")),
	}
}

func renderFilters(ds *roster.Dataset) []string {
	threshold := roster.MustMoney("50000")
	lines := []string{fmt.Sprintf("Employees earning more than %s:", threshold)}
	for e := range EarningAbove(ds, threshold) {
		lines = append(lines, fmt.Sprintf("\t Id: %-5dName: %-20s Annual Salary: %s", e.ID, e.FullName(), e.AnnualSalary))
	}

	lines = append(lines, "Managers:")
	for e := range Managers(ds) {
		lines = append(lines, fmt.Sprintf("\t Id: %-5dName: %s", e.ID, e.FullName()))
	}

	mixed := mixedSequence(ds)
	lines = append(lines,
		"OfType Employee: "+joinNames(query.ToSlice(query.Select(query.OfType[roster.Employee](query.From(mixed)), roster.Employee.FullName))),
		"OfType Department: "+joinNames(query.ToSlice(query.Select(query.OfType[roster.Department](query.From(mixed)),
			func(d roster.Department) string { return d.LongName }))),
		"OfType string: "+joinNames(query.ToSlice(query.OfType[string](query.From(mixed)))),
		fmt.Sprintf("OfType int: %v", query.ToSlice(query.OfType[int](query.From(mixed)))),
	)
	return lines
}

// mixedSequence interleaves records with unrelated values for OfType.
func mixedSequence(ds *roster.Dataset) []any {
	var mixed []any
	for i := 0; i < 2 && i < len(ds.Employees); i++ {
		mixed = append(mixed, ds.Employees[i])
	}
	mixed = append(mixed, "HR", 42)
	for i := 0; i < 2 && i < len(ds.Departments); i++ {
		mixed = append(mixed, ds.Departments[i])
	}
	mixed = append(mixed, roster.MustMoney("1.5"), nil, "Finance")
	return mixed
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}

// describe renders an accessor result, its zero value or its failure.
func describe(e roster.Employee, err error) string {
	switch {
	case err != nil:
		return "Error: " + err.Error()
	case e == roster.Employee{}:
		return "(default)"
	default:
		return fmt.Sprintf("%s (id %d)", e.FullName(), e.ID)
	}
}

func renderElements(ds *roster.Dataset) []string {
	employees := query.From(ds.Employees)
	above100k := earnsMoreThan(roster.MustMoney("100000"))
	nonManager := not(isManager)

	line := func(label string, e roster.Employee, err error) string {
		return fmt.Sprintf("%-48s %s", label+":", describe(e, err))
	}
	def := func(label string, e roster.Employee) string {
		return line(label, e, nil)
	}

	e, err := query.ElementAt(employees, 2)
	lines := []string{line("ElementAt(2)", e, err)}
	e, err = query.ElementAt(employees, 12)
	lines = append(lines, line("ElementAt(12)", e, err))
	lines = append(lines, def("ElementAtOrDefault(12)", query.ElementAtOrDefault(employees, 12)))

	e, err = query.First(employees, isManager)
	lines = append(lines, line("First(manager)", e, err))
	e, err = query.First(employees, isManager, inDepartment(4))
	lines = append(lines, line("First(manager in department 4)", e, err))
	lines = append(lines, def("FirstOrDefault(manager in department 4)", query.FirstOrDefault(employees, isManager, inDepartment(4))))

	e, err = query.Last(employees, isManager)
	lines = append(lines, line("Last(manager)", e, err))
	e, err = query.Last(employees, above100k)
	lines = append(lines, line("Last(salary > 100000)", e, err))
	lines = append(lines, def("LastOrDefault(salary > 100000)", query.LastOrDefault(employees, above100k)))

	e, err = query.Single(employees, func(e roster.Employee) bool { return e.ID == 5 })
	lines = append(lines, line("Single(id == 5)", e, err))
	e, err = query.Single(employees, nonManager, earnsAtLeast(roster.MustMoney("70000")))
	lines = append(lines, line("Single(non-manager, salary >= 70000)", e, err))
	e, err = query.Single(employees, nonManager, earnsAtLeast(roster.MustMoney("30000")))
	lines = append(lines, line("Single(non-manager, salary >= 30000)", e, err))
	e, err = query.Single(employees, above100k)
	lines = append(lines, line("Single(salary > 100000)", e, err))
	e, err = query.SingleOrDefault(employees, above100k)
	lines = append(lines, line("SingleOrDefault(salary > 100000)", e, err))
	e, err = query.SingleOrDefault(employees, isManager)
	lines = append(lines, line("SingleOrDefault(manager)", e, err))

	return lines
}
