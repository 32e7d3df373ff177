package dto

// DateLayout is the wire format for dateOfBirth and hireDate.
const DateLayout = "2006-01-02"

// EmployeeRequest is the create/update payload for employees.
type EmployeeRequest struct {
	FirstName   string         `json:"firstName" validate:"required,min=2,max=50"`
	LastName    string         `json:"lastName" validate:"required,min=2,max=50"`
	Email       string         `json:"email" validate:"required,email"`
	DateOfBirth string         `json:"dateOfBirth" validate:"required,datetime=2006-01-02,beforetoday"`
	HireDate    string         `json:"hireDate" validate:"required,datetime=2006-01-02"`
	PhoneNumber *string        `json:"phoneNumber,omitempty" validate:"omitempty,phone"`
	Salary      *float64       `json:"salary" validate:"required,gte=0"`
	Department  *DepartmentRef `json:"department" validate:"required"`
}

// EmployeeResponse is the external employee shape with its department summary.
type EmployeeResponse struct {
	ID          int64              `json:"id"`
	FirstName   string             `json:"firstName"`
	LastName    string             `json:"lastName"`
	Email       string             `json:"email"`
	DateOfBirth string             `json:"dateOfBirth"`
	HireDate    string             `json:"hireDate"`
	PhoneNumber *string            `json:"phoneNumber,omitempty"`
	Salary      float64            `json:"salary"`
	Department  DepartmentResponse `json:"department"`
}

// EmployeePageResponse is the paging envelope for employee listings.
type EmployeePageResponse struct {
	Content       []EmployeeResponse `json:"content"`
	Page          int                `json:"page"`
	Size          int                `json:"size"`
	TotalElements int64              `json:"totalElements"`
	TotalPages    int                `json:"totalPages"`
}
