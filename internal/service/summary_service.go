package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/repository"
)

// SummaryService produces daily per-department headcount snapshots.
type SummaryService struct {
	departments repository.DepartmentRepository
	employees   repository.EmployeeRepository
	summaries   repository.DailySummaryRepository
	logger      *zap.Logger
}

// SummaryDependencies bundles collaborators for the summary service.
type SummaryDependencies struct {
	DepartmentRepo repository.DepartmentRepository
	EmployeeRepo   repository.EmployeeRepository
	SummaryRepo    repository.DailySummaryRepository
	Logger         *zap.Logger
}

// NewSummaryService constructs the service.
func NewSummaryService(deps SummaryDependencies) *SummaryService {
	return &SummaryService{
		departments: deps.DepartmentRepo,
		employees:   deps.EmployeeRepo,
		summaries:   deps.SummaryRepo,
		logger:      deps.Logger,
	}
}

// GenerateDailySummary appends one snapshot row per department, all stamped
// with the run time. Each department is its own unit of work: a failure is
// logged and the remaining departments still get their snapshot.
func (s *SummaryService) GenerateDailySummary(ctx context.Context) error {
	departments, err := s.departments.ListAll(ctx)
	if err != nil {
		return err
	}

	runAt := time.Now()
	for _, dept := range departments {
		count, err := s.employees.CountByDepartment(ctx, dept.ID)
		if err != nil {
			s.logger.Error("count employees failed",
				zap.Int64("department_id", dept.ID),
				zap.String("department", dept.Name),
				zap.Error(err))
			continue
		}

		summary := &domain.DailySummary{
			DepartmentID:  dept.ID,
			EmployeeCount: count,
			Timestamp:     runAt,
		}
		if err := s.summaries.Create(ctx, summary); err != nil {
			s.logger.Error("save daily summary failed",
				zap.Int64("department_id", dept.ID),
				zap.String("department", dept.Name),
				zap.Error(err))
			continue
		}

		s.logger.Info("department summary",
			zap.String("department", dept.Name),
			zap.Int("employee_count", count))
	}
	return nil
}
