package roster

// Sample returns the built-in dataset: 12 employees across 4 departments.
// Each call returns fresh slices.
func Sample() *Dataset {
	return &Dataset{
		Employees: []Employee{
			{ID: 1, FirstName: "Bob", LastName: "Jones", AnnualSalary: MustMoney("60000.3"), IsManager: true, DepartmentID: 1},
			{ID: 2, FirstName: "Sarah", LastName: "Jameson", AnnualSalary: MustMoney("80000.1"), IsManager: true, DepartmentID: 2},
			{ID: 3, FirstName: "Douglas", LastName: "Roberts", AnnualSalary: MustMoney("40000.2"), IsManager: false, DepartmentID: 2},
			{ID: 4, FirstName: "Jane", LastName: "Stevens", AnnualSalary: MustMoney("30000.2"), IsManager: false, DepartmentID: 1},
			{ID: 5, FirstName: "David", LastName: "Szotek", AnnualSalary: MustMoney("75000.3"), IsManager: true, DepartmentID: 3},
			{ID: 6, FirstName: "Dominik", LastName: "Foniok", AnnualSalary: MustMoney("60000.1"), IsManager: false, DepartmentID: 1},
			{ID: 7, FirstName: "Klara", LastName: "Mezes", AnnualSalary: MustMoney("80000.3"), IsManager: true, DepartmentID: 3},
			{ID: 8, FirstName: "Rostislav", LastName: "Mezes", AnnualSalary: MustMoney("35000.3"), IsManager: false, DepartmentID: 4},
			{ID: 9, FirstName: "Juliana", LastName: "Szotkova", AnnualSalary: MustMoney("90000.3"), IsManager: false, DepartmentID: 1},
			{ID: 10, FirstName: "Martin", LastName: "Cerny", AnnualSalary: MustMoney("28000.3"), IsManager: true, DepartmentID: 1},
			{ID: 11, FirstName: "Lucie", LastName: "Zajac", AnnualSalary: MustMoney("88000.3"), IsManager: true, DepartmentID: 3},
			{ID: 12, FirstName: "Marek", LastName: "Zelina", AnnualSalary: MustMoney("21000.3"), IsManager: false, DepartmentID: 2},
		},
		Departments: []Department{
			{ID: 1, ShortName: "HR", LongName: "Human Resources"},
			{ID: 2, ShortName: "FN", LongName: "Finance"},
			{ID: 3, ShortName: "TE", LongName: "Technology"},
			{ID: 4, ShortName: "SC", LongName: "Security"},
		},
	}
}
