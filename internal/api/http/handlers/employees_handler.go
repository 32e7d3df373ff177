package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/service"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

// EmployeesHandler manages employee endpoints.
type EmployeesHandler struct {
	service *service.EmployeeService
}

// NewEmployeesHandler constructs the handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{service: employeeService}
}

// List GET /api/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	req := parsePageQuery(c)
	page, err := h.service.List(c.UserContext(), req)
	if err != nil {
		return err
	}

	items := make([]dto.EmployeeResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, employeeResponse(&page.Items[i]))
	}

	totalPages := 0
	if page.Size > 0 {
		totalPages = int((page.Total + int64(page.Size) - 1) / int64(page.Size))
	}
	return c.JSON(dto.EmployeePageResponse{
		Content:       items,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.Total,
		TotalPages:    totalPages,
	})
}

// Get GET /api/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return err
	}
	emp, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(emp))
}

// Create POST /api/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	input, err := parseEmployeeBody(c)
	if err != nil {
		return err
	}
	emp, err := h.service.Create(c.UserContext(), *input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(employeeResponse(emp))
}

// Update PUT /api/employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return err
	}
	input, err := parseEmployeeBody(c)
	if err != nil {
		return err
	}
	emp, err := h.service.Update(c.UserContext(), id, *input)
	if err != nil {
		return err
	}
	return c.JSON(employeeResponse(emp))
}

// Delete DELETE /api/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseEmployeeBody(c *fiber.Ctx) (*service.EmployeeInput, error) {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	dateOfBirth, err := time.Parse(dto.DateLayout, req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid dateOfBirth", nil)
	}
	hireDate, err := time.Parse(dto.DateLayout, req.HireDate)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid hireDate", nil)
	}

	return &service.EmployeeInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		DateOfBirth:    dateOfBirth,
		HireDate:       hireDate,
		PhoneNumber:    req.PhoneNumber,
		Salary:         *req.Salary,
		DepartmentName: req.Department.Name,
	}, nil
}

// parsePageQuery reads ?page&size&sort. sort takes "field" or "field,desc"
// over the service's sortable column set.
func parsePageQuery(c *fiber.Ctx) service.PageRequest {
	req := service.PageRequest{
		Page: parseInt(c.Query("page"), 1),
		Size: parseInt(c.Query("size"), 20),
	}
	if sort := c.Query("sort"); sort != "" {
		parts := strings.SplitN(sort, ",", 2)
		req.SortBy = strings.TrimSpace(parts[0])
		if len(parts) == 2 && strings.EqualFold(strings.TrimSpace(parts[1]), "desc") {
			req.SortDesc = true
		}
	}
	return req
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func employeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:          emp.ID,
		FirstName:   emp.FirstName,
		LastName:    emp.LastName,
		Email:       emp.Email,
		DateOfBirth: emp.DateOfBirth.Format(dto.DateLayout),
		HireDate:    emp.HireDate.Format(dto.DateLayout),
		PhoneNumber: emp.PhoneNumber,
		Salary:      emp.Salary,
	}
	if emp.Department != nil {
		resp.Department = dto.DepartmentResponse{ID: emp.Department.ID, Name: emp.Department.Name}
	} else {
		resp.Department = dto.DepartmentResponse{ID: emp.DepartmentID}
	}
	return resp
}
