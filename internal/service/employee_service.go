package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

// EmployeeInput carries validated employee fields into the service. The
// handler performs field validation; the service may assume it holds.
type EmployeeInput struct {
	FirstName      string
	LastName       string
	Email          string
	DateOfBirth    time.Time
	HireDate       time.Time
	PhoneNumber    *string
	Salary         float64
	DepartmentName string
}

// PageRequest describes employee listing parameters.
type PageRequest struct {
	Page     int
	Size     int
	SortBy   string
	SortDesc bool
}

// Page bundles one page of employees with the total row count and the
// normalized paging values actually applied.
type Page struct {
	Items []domain.Employee
	Total int64
	Page  int
	Size  int
}

// Columns the listing may sort by; anything else falls back to id.
var sortableColumns = map[string]string{
	"id":        "e.id",
	"firstName": "e.first_name",
	"lastName":  "e.last_name",
	"email":     "e.email",
	"hireDate":  "e.hire_date",
	"salary":    "e.salary",
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// EmployeeService coordinates employee workflows.
type EmployeeService struct {
	employees   repository.EmployeeRepository
	departments repository.DepartmentRepository
	tx          repository.TxRunner
	logger      *zap.Logger
}

// EmployeeDependencies bundles collaborators for the employee service.
type EmployeeDependencies struct {
	EmployeeRepo   repository.EmployeeRepository
	DepartmentRepo repository.DepartmentRepository
	Tx             repository.TxRunner
	Logger         *zap.Logger
}

// NewEmployeeService constructs the service.
func NewEmployeeService(deps EmployeeDependencies) *EmployeeService {
	return &EmployeeService{
		employees:   deps.EmployeeRepo,
		departments: deps.DepartmentRepo,
		tx:          deps.Tx,
		logger:      deps.Logger,
	}
}

// List returns a page of employees with their department attached.
func (s *EmployeeService) List(ctx context.Context, req PageRequest) (*Page, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Size <= 0 {
		req.Size = defaultPageSize
	}
	if req.Size > maxPageSize {
		req.Size = maxPageSize
	}

	opts := repository.PageOptions{
		Limit:  req.Size,
		Offset: (req.Page - 1) * req.Size,
		Desc:   req.SortDesc,
	}
	if column, ok := sortableColumns[req.SortBy]; ok {
		opts.OrderColumn = column
	}

	items, total, err := s.employees.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Page{Items: items, Total: total, Page: req.Page, Size: req.Size}, nil
}

// GetByID fetches a single employee.
func (s *EmployeeService) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	emp, err := s.employees.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return nil, err
	}
	return emp, nil
}

// Create persists a new employee. Email uniqueness and department
// resolution happen in the same transaction as the insert.
func (s *EmployeeService) Create(ctx context.Context, input EmployeeInput) (*domain.Employee, error) {
	var emp *domain.Employee
	err := s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		employees := s.employees.WithTx(tx)

		exists, err := employees.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.NewConflict(fmt.Sprintf("email already exists: %s", input.Email), nil)
		}

		dept, err := s.resolveDepartment(ctx, tx, input.DepartmentName)
		if err != nil {
			return err
		}

		emp = newEmployeeFromInput(input, dept)
		return employees.Create(ctx, emp)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("employee created", zap.Int64("id", emp.ID), zap.String("email", emp.Email))
	return emp, nil
}

// Update overwrites an employee's mutable fields. The stored email address
// is immutable; submitting a different one is a conflict.
func (s *EmployeeService) Update(ctx context.Context, id int64, input EmployeeInput) (*domain.Employee, error) {
	var emp *domain.Employee
	err := s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		employees := s.employees.WithTx(tx)

		existing, err := employees.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFound("employee", map[string]any{"id": id})
			}
			return err
		}

		if input.Email != existing.Email {
			return apperrors.NewConflict(fmt.Sprintf("email can't be updated: %s", input.Email), nil)
		}

		dept, err := s.resolveDepartment(ctx, tx, input.DepartmentName)
		if err != nil {
			return err
		}

		emp = newEmployeeFromInput(input, dept)
		emp.ID = existing.ID
		emp.Email = existing.Email
		return employees.Update(ctx, emp)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("employee updated", zap.Int64("id", emp.ID))
	return emp, nil
}

// Delete permanently removes an employee.
func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("employee", map[string]any{"id": id})
		}
		return err
	}
	s.logger.Info("employee deleted", zap.Int64("id", id))
	return nil
}

func (s *EmployeeService) resolveDepartment(ctx context.Context, tx pgx.Tx, name string) (*domain.Department, error) {
	dept, err := s.departments.WithTx(tx).GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("department", map[string]any{"name": name})
		}
		return nil, err
	}
	return dept, nil
}

// newEmployeeFromInput copies every field explicitly; no reflective
// property copying, so the mapping contract is checkable by inspection.
func newEmployeeFromInput(input EmployeeInput, dept *domain.Department) *domain.Employee {
	return &domain.Employee{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		DateOfBirth:  input.DateOfBirth,
		HireDate:     input.HireDate,
		PhoneNumber:  input.PhoneNumber,
		Salary:       input.Salary,
		DepartmentID: dept.ID,
		Department:   dept,
	}
}
