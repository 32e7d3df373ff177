package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/repository"
)

// Seeder populates default accounts, departments and employees on first
// startup. Accounts are stored with hashed passwords and role strings;
// nothing in the request path consumes them.
type Seeder struct {
	cfg         config.SeedConfig
	accounts    repository.AccountRepository
	departments repository.DepartmentRepository
	employees   repository.EmployeeRepository
	logger      *zap.Logger
}

// NewSeeder constructs the seeder.
func NewSeeder(cfg config.SeedConfig, accounts repository.AccountRepository, departments repository.DepartmentRepository, employees repository.EmployeeRepository, logger *zap.Logger) *Seeder {
	return &Seeder{
		cfg:         cfg,
		accounts:    accounts,
		departments: departments,
		employees:   employees,
		logger:      logger,
	}
}

// Run applies the seed data. Every step is idempotent.
func (s *Seeder) Run(ctx context.Context) error {
	if !s.cfg.Enabled {
		return nil
	}

	if err := s.seedAccount(ctx, "admin", "admin123", domain.RoleAdmin); err != nil {
		return err
	}
	if err := s.seedAccount(ctx, "user", "user123", domain.RoleUser); err != nil {
		return err
	}

	deptCount, err := s.departments.Count(ctx)
	if err != nil {
		return err
	}
	if deptCount == 0 {
		for _, name := range []string{"IT", "HR", "Finance", "Operations", "Marketing"} {
			if err := s.departments.Create(ctx, &domain.Department{Name: name}); err != nil {
				return err
			}
		}
		s.logger.Info("seeded default departments")
	}

	empCount, err := s.employees.Count(ctx)
	if err != nil {
		return err
	}
	if empCount == 0 {
		if err := s.seedEmployees(ctx); err != nil {
			return err
		}
		s.logger.Info("seeded default employees")
	}
	return nil
}

func (s *Seeder) seedAccount(ctx context.Context, username, password, role string) error {
	_, err := s.accounts.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	account := &domain.Account{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return err
	}
	s.logger.Info("seeded account", zap.String("username", username), zap.String("role", role))
	return nil
}

func (s *Seeder) seedEmployees(ctx context.Context) error {
	phone := "01023456567"
	samples := []struct {
		firstName, lastName, email, department string
		salary                                 float64
		dob                                    time.Time
	}{
		{"Ahmed", "Ezz", "ahmed@gmail.com", "IT", 5000, time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"Bahaa", "Assal", "bahaa@gmail.com", "HR", 6000, time.Date(1992, 2, 2, 0, 0, 0, 0, time.UTC)},
		{"Amr", "Ramy", "amr@gmail.com", "Finance", 7000, time.Date(1991, 3, 3, 0, 0, 0, 0, time.UTC)},
		{"Mohamed", "Ayman", "mohamed@gmail.com", "Operations", 8000, time.Date(1989, 4, 4, 0, 0, 0, 0, time.UTC)},
	}

	for _, sample := range samples {
		dept, err := s.departments.GetByName(ctx, sample.department)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return err
		}
		phoneNumber := phone
		emp := &domain.Employee{
			FirstName:    sample.firstName,
			LastName:     sample.lastName,
			Email:        sample.email,
			DateOfBirth:  sample.dob,
			HireDate:     time.Now(),
			PhoneNumber:  &phoneNumber,
			Salary:       sample.salary,
			DepartmentID: dept.ID,
		}
		if err := s.employees.Create(ctx, emp); err != nil {
			return err
		}
	}
	return nil
}
