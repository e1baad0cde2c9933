package roster

// Employee is one staff record.
type Employee struct {
	ID           int    `json:"id" yaml:"id"`
	FirstName    string `json:"first_name" yaml:"first_name"`
	LastName     string `json:"last_name" yaml:"last_name"`
	AnnualSalary Money  `json:"annual_salary" yaml:"annual_salary"`
	IsManager    bool   `json:"is_manager" yaml:"is_manager"`
	DepartmentID int    `json:"department_id" yaml:"department_id"`
}

// FullName returns "First Last".
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Department is one organisational unit.
type Department struct {
	ID        int    `json:"id" yaml:"id"`
	ShortName string `json:"short_name" yaml:"short_name"`
	LongName  string `json:"long_name" yaml:"long_name"`
}

// Dataset holds both record sequences in source order.
// Treat it as read-only once loaded.
type Dataset struct {
	Employees   []Employee   `json:"employees" yaml:"employees"`
	Departments []Department `json:"departments" yaml:"departments"`
}

// EmployeeByID returns the employee with the given id.
func (ds *Dataset) EmployeeByID(id int) (Employee, bool) {
	for _, e := range ds.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return Employee{}, false
}
