package domain

import "time"

// Employee is the core personnel record. Department is always resolved
// before an employee is persisted; DepartmentID never dangles.
type Employee struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	DateOfBirth  time.Time
	HireDate     time.Time
	PhoneNumber  *string
	Salary       float64
	DepartmentID int64
	Department   *Department
}
