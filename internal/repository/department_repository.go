package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-service/internal/domain"
)

// DepartmentRepository manages department persistence.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	GetByName(ctx context.Context, name string) (*domain.Department, error)
	GetByNameIgnoreCase(ctx context.Context, name string) (*domain.Department, error)
	ListAll(ctx context.Context) ([]domain.Department, error)
	Count(ctx context.Context) (int64, error)
	WithTx(tx pgx.Tx) DepartmentRepository
}

type departmentRepository struct {
	q Querier
}

// NewDepartmentRepository builds a Postgres-backed repository.
func NewDepartmentRepository(pool *pgxpool.Pool) DepartmentRepository {
	return &departmentRepository{q: pool}
}

func (r *departmentRepository) WithTx(tx pgx.Tx) DepartmentRepository {
	return &departmentRepository{q: tx}
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	const query = `
        INSERT INTO departments (name)
        VALUES ($1)
        RETURNING id`
	return r.q.QueryRow(ctx, query, dept.Name).Scan(&dept.ID)
}

func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	const query = `UPDATE departments SET name=$1 WHERE id=$2`
	cmd, err := r.q.Exec(ctx, query, dept.Name, dept.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM departments WHERE id=$1`
	cmd, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	const query = `SELECT id, name FROM departments WHERE id=$1`
	var dept domain.Department
	if err := r.q.QueryRow(ctx, query, id).Scan(&dept.ID, &dept.Name); err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) GetByName(ctx context.Context, name string) (*domain.Department, error) {
	const query = `SELECT id, name FROM departments WHERE name=$1`
	var dept domain.Department
	if err := r.q.QueryRow(ctx, query, name).Scan(&dept.ID, &dept.Name); err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) GetByNameIgnoreCase(ctx context.Context, name string) (*domain.Department, error) {
	const query = `SELECT id, name FROM departments WHERE LOWER(name)=LOWER($1)`
	var dept domain.Department
	if err := r.q.QueryRow(ctx, query, name).Scan(&dept.ID, &dept.Name); err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) ListAll(ctx context.Context) ([]domain.Department, error) {
	const query = `SELECT id, name FROM departments ORDER BY id ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Department
	for rows.Next() {
		var dept domain.Department
		if err := rows.Scan(&dept.ID, &dept.Name); err != nil {
			return nil, err
		}
		result = append(result, dept)
	}
	return result, rows.Err()
}

func (r *departmentRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM departments`
	var count int64
	if err := r.q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
