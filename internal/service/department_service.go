package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

// DepartmentService coordinates department workflows.
type DepartmentService struct {
	departments repository.DepartmentRepository
	employees   repository.EmployeeRepository
	tx          repository.TxRunner
	logger      *zap.Logger
}

// DepartmentDependencies bundles collaborators for the department service.
type DepartmentDependencies struct {
	DepartmentRepo repository.DepartmentRepository
	EmployeeRepo   repository.EmployeeRepository
	Tx             repository.TxRunner
	Logger         *zap.Logger
}

// NewDepartmentService constructs the service.
func NewDepartmentService(deps DepartmentDependencies) *DepartmentService {
	return &DepartmentService{
		departments: deps.DepartmentRepo,
		employees:   deps.EmployeeRepo,
		tx:          deps.Tx,
		logger:      deps.Logger,
	}
}

// ListAll returns every department ordered by id ascending.
func (s *DepartmentService) ListAll(ctx context.Context) ([]domain.Department, error) {
	return s.departments.ListAll(ctx)
}

// GetByID fetches a single department.
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("department", map[string]any{"id": id})
		}
		return nil, err
	}
	return dept, nil
}

// Create persists a new department after checking the case-insensitive
// name-uniqueness invariant. Check and insert share one transaction.
func (s *DepartmentService) Create(ctx context.Context, name string) (*domain.Department, error) {
	dept := &domain.Department{Name: name}
	err := s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		departments := s.departments.WithTx(tx)
		existing, err := departments.GetByNameIgnoreCase(ctx, name)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		if existing != nil {
			return apperrors.NewConflict(fmt.Sprintf("department name already exists: %s", name), nil)
		}
		return departments.Create(ctx, dept)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("department created", zap.Int64("id", dept.ID), zap.String("name", dept.Name))
	return dept, nil
}

// Update renames a department. The new name may collide only with the
// department itself; a collision with any other department is a conflict.
func (s *DepartmentService) Update(ctx context.Context, id int64, name string) (*domain.Department, error) {
	dept := &domain.Department{ID: id, Name: name}
	err := s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		departments := s.departments.WithTx(tx)
		if _, err := departments.GetByID(ctx, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFound("department", map[string]any{"id": id})
			}
			return err
		}
		existing, err := departments.GetByNameIgnoreCase(ctx, name)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}
		if existing != nil && existing.ID != id {
			return apperrors.NewConflict(fmt.Sprintf("department name already exists: %s", name), nil)
		}
		return departments.Update(ctx, dept)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("department updated", zap.Int64("id", dept.ID), zap.String("name", dept.Name))
	return dept, nil
}

// Delete removes a department unless employees still reference it. The
// back-reference is a derived count, not a stored collection.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	err := s.tx.WithinTx(ctx, func(tx pgx.Tx) error {
		departments := s.departments.WithTx(tx)
		if _, err := departments.GetByID(ctx, id); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFound("department", map[string]any{"id": id})
			}
			return err
		}
		count, err := s.employees.WithTx(tx).CountByDepartment(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.NewConflict("cannot delete department with existing employees", map[string]any{"employeeCount": count})
		}
		return departments.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("department deleted", zap.Int64("id", id))
	return nil
}
