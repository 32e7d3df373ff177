package service

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util/errorutil"
)

func newEmployeeService(t *testing.T, employees *mockEmployeeRepo, departments *mockDepartmentRepo) *EmployeeService {
	t.Helper()
	return NewEmployeeService(EmployeeDependencies{
		EmployeeRepo:   employees,
		DepartmentRepo: departments,
		Tx:             mockTxRunner{},
		Logger:         zaptest.NewLogger(t),
	})
}

func sampleInput() EmployeeInput {
	phone := "01023456567"
	return EmployeeInput{
		FirstName:      "Ahmed",
		LastName:       "Ezz",
		Email:          "ahmed@x.com",
		DateOfBirth:    time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		HireDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		PhoneNumber:    &phone,
		Salary:         5000,
		DepartmentName: "IT",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	itDept := &domain.Department{ID: 1, Name: "IT"}

	tests := []struct {
		name        string
		emailTaken  bool
		deptMissing bool
		wantStatus  int
	}{
		{name: "resolvable department and fresh email"},
		{name: "duplicate email conflicts", emailTaken: true, wantStatus: 409},
		{name: "unknown department name", deptMissing: true, wantStatus: 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := false
			employees := &mockEmployeeRepo{
				existsByEmail: func(ctx context.Context, email string) (bool, error) {
					return tt.emailTaken, nil
				},
				create: func(ctx context.Context, emp *domain.Employee) error {
					created = true
					emp.ID = 10
					return nil
				},
			}
			departments := &mockDepartmentRepo{
				getByName: func(ctx context.Context, name string) (*domain.Department, error) {
					if tt.deptMissing {
						return nil, pgx.ErrNoRows
					}
					return itDept, nil
				},
			}
			svc := newEmployeeService(t, employees, departments)

			emp, err := svc.Create(context.Background(), sampleInput())
			if tt.wantStatus != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantStatus, apperrors.ToDomainError(err).HTTPStatus)
				assert.False(t, created, "no row should be persisted on failure")
				return
			}
			require.NoError(t, err)
			assert.True(t, created)
			assert.Equal(t, int64(10), emp.ID)
			assert.Equal(t, itDept.ID, emp.DepartmentID, "created record's department id must match the resolved department")
			assert.Equal(t, "ahmed@x.com", emp.Email)
		})
	}
}

func TestEmployeeService_Update(t *testing.T) {
	stored := &domain.Employee{
		ID:           10,
		FirstName:    "Ahmed",
		LastName:     "Ezz",
		Email:        "ahmed@x.com",
		Salary:       5000,
		DepartmentID: 1,
		Department:   &domain.Department{ID: 1, Name: "IT"},
	}
	hrDept := &domain.Department{ID: 2, Name: "HR"}

	t.Run("changed email conflicts", func(t *testing.T) {
		employees := &mockEmployeeRepo{
			getByID: func(ctx context.Context, id int64) (*domain.Employee, error) {
				return stored, nil
			},
		}
		svc := newEmployeeService(t, employees, &mockDepartmentRepo{})

		input := sampleInput()
		input.Email = "new@x.com"
		_, err := svc.Update(context.Background(), 10, input)
		require.Error(t, err)
		assert.Equal(t, 409, apperrors.ToDomainError(err).HTTPStatus)
	})

	t.Run("same email with new department succeeds", func(t *testing.T) {
		var updated *domain.Employee
		employees := &mockEmployeeRepo{
			getByID: func(ctx context.Context, id int64) (*domain.Employee, error) {
				return stored, nil
			},
			update: func(ctx context.Context, emp *domain.Employee) error {
				updated = emp
				return nil
			},
		}
		departments := &mockDepartmentRepo{
			getByName: func(ctx context.Context, name string) (*domain.Department, error) {
				return hrDept, nil
			},
		}
		svc := newEmployeeService(t, employees, departments)

		input := sampleInput()
		input.DepartmentName = "HR"
		input.Salary = 6000
		emp, err := svc.Update(context.Background(), 10, input)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, int64(10), emp.ID)
		assert.Equal(t, hrDept.ID, emp.DepartmentID, "stored department reference must change")
		assert.Equal(t, float64(6000), emp.Salary)
		assert.Equal(t, "ahmed@x.com", emp.Email)
	})

	t.Run("unknown employee id", func(t *testing.T) {
		employees := &mockEmployeeRepo{
			getByID: func(ctx context.Context, id int64) (*domain.Employee, error) {
				return nil, pgx.ErrNoRows
			},
		}
		svc := newEmployeeService(t, employees, &mockDepartmentRepo{})

		_, err := svc.Update(context.Background(), 99, sampleInput())
		require.Error(t, err)
		assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
	})

	t.Run("unknown department name", func(t *testing.T) {
		employees := &mockEmployeeRepo{
			getByID: func(ctx context.Context, id int64) (*domain.Employee, error) {
				return stored, nil
			},
		}
		departments := &mockDepartmentRepo{
			getByName: func(ctx context.Context, name string) (*domain.Department, error) {
				return nil, pgx.ErrNoRows
			},
		}
		svc := newEmployeeService(t, employees, departments)

		_, err := svc.Update(context.Background(), 10, sampleInput())
		require.Error(t, err)
		assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	t.Run("existing employee deletes", func(t *testing.T) {
		employees := &mockEmployeeRepo{
			deleteFn: func(ctx context.Context, id int64) error {
				return nil
			},
		}
		svc := newEmployeeService(t, employees, &mockDepartmentRepo{})
		require.NoError(t, svc.Delete(context.Background(), 10))
	})

	t.Run("unknown id", func(t *testing.T) {
		employees := &mockEmployeeRepo{
			deleteFn: func(ctx context.Context, id int64) error {
				return pgx.ErrNoRows
			},
		}
		svc := newEmployeeService(t, employees, &mockDepartmentRepo{})

		err := svc.Delete(context.Background(), 99)
		require.Error(t, err)
		assert.Equal(t, 404, apperrors.ToDomainError(err).HTTPStatus)
	})
}

func TestEmployeeService_List(t *testing.T) {
	tests := []struct {
		name     string
		req      PageRequest
		wantOpts repository.PageOptions
	}{
		{
			name:     "defaults applied",
			req:      PageRequest{},
			wantOpts: repository.PageOptions{Limit: 20, Offset: 0},
		},
		{
			name:     "explicit page and size",
			req:      PageRequest{Page: 3, Size: 10},
			wantOpts: repository.PageOptions{Limit: 10, Offset: 20},
		},
		{
			name:     "whitelisted sort column",
			req:      PageRequest{Page: 1, Size: 5, SortBy: "lastName", SortDesc: true},
			wantOpts: repository.PageOptions{Limit: 5, Offset: 0, OrderColumn: "e.last_name", Desc: true},
		},
		{
			name:     "unknown sort falls back to store default",
			req:      PageRequest{Page: 1, Size: 5, SortBy: "salary; DROP TABLE employees"},
			wantOpts: repository.PageOptions{Limit: 5, Offset: 0},
		},
		{
			name:     "oversized page capped",
			req:      PageRequest{Page: 1, Size: 500},
			wantOpts: repository.PageOptions{Limit: 100, Offset: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotOpts repository.PageOptions
			employees := &mockEmployeeRepo{
				list: func(ctx context.Context, opts repository.PageOptions) ([]domain.Employee, int64, error) {
					gotOpts = opts
					return []domain.Employee{}, 0, nil
				},
			}
			svc := newEmployeeService(t, employees, &mockDepartmentRepo{})

			_, err := svc.List(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOpts, gotOpts)
		})
	}
}
