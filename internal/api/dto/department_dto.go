package dto

// DepartmentRequest is the create/update payload for departments.
type DepartmentRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

// DepartmentResponse is the external department shape.
type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DepartmentRef names a department inside an employee payload. The id is
// populated on responses; requests resolve by name.
type DepartmentRef struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name" validate:"required"`
}
