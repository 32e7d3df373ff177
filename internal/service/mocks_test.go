package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/repository"
)

// mockTxRunner runs the callback directly; repositories in tests ignore the
// nil transaction because their WithTx returns the mock itself.
type mockTxRunner struct{}

func (mockTxRunner) WithinTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return fn(nil)
}

// mockDepartmentRepo implements repository.DepartmentRepository via function fields.
type mockDepartmentRepo struct {
	create              func(context.Context, *domain.Department) error
	update              func(context.Context, *domain.Department) error
	deleteFn            func(context.Context, int64) error
	getByID             func(context.Context, int64) (*domain.Department, error)
	getByName           func(context.Context, string) (*domain.Department, error)
	getByNameIgnoreCase func(context.Context, string) (*domain.Department, error)
	listAll             func(context.Context) ([]domain.Department, error)
	count               func(context.Context) (int64, error)
}

func (m *mockDepartmentRepo) Create(ctx context.Context, dept *domain.Department) error {
	return m.create(ctx, dept)
}

func (m *mockDepartmentRepo) Update(ctx context.Context, dept *domain.Department) error {
	return m.update(ctx, dept)
}

func (m *mockDepartmentRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockDepartmentRepo) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	return m.getByID(ctx, id)
}

func (m *mockDepartmentRepo) GetByName(ctx context.Context, name string) (*domain.Department, error) {
	return m.getByName(ctx, name)
}

func (m *mockDepartmentRepo) GetByNameIgnoreCase(ctx context.Context, name string) (*domain.Department, error) {
	return m.getByNameIgnoreCase(ctx, name)
}

func (m *mockDepartmentRepo) ListAll(ctx context.Context) ([]domain.Department, error) {
	return m.listAll(ctx)
}

func (m *mockDepartmentRepo) Count(ctx context.Context) (int64, error) {
	return m.count(ctx)
}

func (m *mockDepartmentRepo) WithTx(tx pgx.Tx) repository.DepartmentRepository {
	return m
}

// mockEmployeeRepo implements repository.EmployeeRepository via function fields.
type mockEmployeeRepo struct {
	create            func(context.Context, *domain.Employee) error
	update            func(context.Context, *domain.Employee) error
	deleteFn          func(context.Context, int64) error
	getByID           func(context.Context, int64) (*domain.Employee, error)
	list              func(context.Context, repository.PageOptions) ([]domain.Employee, int64, error)
	existsByEmail     func(context.Context, string) (bool, error)
	countByDepartment func(context.Context, int64) (int, error)
	count             func(context.Context) (int64, error)
}

func (m *mockEmployeeRepo) Create(ctx context.Context, emp *domain.Employee) error {
	return m.create(ctx, emp)
}

func (m *mockEmployeeRepo) Update(ctx context.Context, emp *domain.Employee) error {
	return m.update(ctx, emp)
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return m.getByID(ctx, id)
}

func (m *mockEmployeeRepo) List(ctx context.Context, opts repository.PageOptions) ([]domain.Employee, int64, error) {
	return m.list(ctx, opts)
}

func (m *mockEmployeeRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.existsByEmail(ctx, email)
}

func (m *mockEmployeeRepo) CountByDepartment(ctx context.Context, departmentID int64) (int, error) {
	return m.countByDepartment(ctx, departmentID)
}

func (m *mockEmployeeRepo) Count(ctx context.Context) (int64, error) {
	return m.count(ctx)
}

func (m *mockEmployeeRepo) WithTx(tx pgx.Tx) repository.EmployeeRepository {
	return m
}

// mockSummaryRepo implements repository.DailySummaryRepository via function fields.
type mockSummaryRepo struct {
	create func(context.Context, *domain.DailySummary) error
}

func (m *mockSummaryRepo) Create(ctx context.Context, summary *domain.DailySummary) error {
	return m.create(ctx, summary)
}

func (m *mockSummaryRepo) WithTx(tx pgx.Tx) repository.DailySummaryRepository {
	return m
}
