package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-service/internal/domain"
)

// PageOptions describes an already-sanitized page request. OrderColumn must
// come from the service-side whitelist; it is interpolated into the query.
type PageOptions struct {
	Limit       int
	Offset      int
	OrderColumn string
	Desc        bool
}

// EmployeeRepository manages employee persistence.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, opts PageOptions) ([]domain.Employee, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CountByDepartment(ctx context.Context, departmentID int64) (int, error)
	Count(ctx context.Context) (int64, error)
	WithTx(tx pgx.Tx) EmployeeRepository
}

type employeeRepository struct {
	q Querier
}

// NewEmployeeRepository builds a Postgres-backed repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{q: pool}
}

func (r *employeeRepository) WithTx(tx pgx.Tx) EmployeeRepository {
	return &employeeRepository{q: tx}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employees (first_name, last_name, email, date_of_birth, hire_date, phone_number, salary, department_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id`
	return r.q.QueryRow(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.DateOfBirth,
		emp.HireDate,
		emp.PhoneNumber,
		emp.Salary,
		emp.DepartmentID,
	).Scan(&emp.ID)
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	const query = `
        UPDATE employees
        SET first_name=$1, last_name=$2, email=$3, date_of_birth=$4, hire_date=$5, phone_number=$6, salary=$7, department_id=$8
        WHERE id=$9`
	cmd, err := r.q.Exec(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.DateOfBirth,
		emp.HireDate,
		emp.PhoneNumber,
		emp.Salary,
		emp.DepartmentID,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM employees WHERE id=$1`
	cmd, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const employeeSelect = `
        SELECT e.id, e.first_name, e.last_name, e.email, e.date_of_birth, e.hire_date,
               e.phone_number, e.salary, e.department_id, d.name
        FROM employees e
        JOIN departments d ON d.id = e.department_id`

func (r *employeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	query := employeeSelect + ` WHERE e.id=$1`
	var emp domain.Employee
	var deptName string
	if err := r.q.QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.FirstName,
		&emp.LastName,
		&emp.Email,
		&emp.DateOfBirth,
		&emp.HireDate,
		&emp.PhoneNumber,
		&emp.Salary,
		&emp.DepartmentID,
		&deptName,
	); err != nil {
		return nil, err
	}
	emp.Department = &domain.Department{ID: emp.DepartmentID, Name: deptName}
	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context, opts PageOptions) ([]domain.Employee, int64, error) {
	var total int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return nil, 0, err
	}

	orderColumn := opts.OrderColumn
	if orderColumn == "" {
		orderColumn = "e.id"
	}
	direction := "ASC"
	if opts.Desc {
		direction = "DESC"
	}
	query := fmt.Sprintf("%s ORDER BY %s %s LIMIT $1 OFFSET $2", employeeSelect, orderColumn, direction)

	rows, err := r.q.Query(ctx, query, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		var emp domain.Employee
		var deptName string
		if err := rows.Scan(
			&emp.ID,
			&emp.FirstName,
			&emp.LastName,
			&emp.Email,
			&emp.DateOfBirth,
			&emp.HireDate,
			&emp.PhoneNumber,
			&emp.Salary,
			&emp.DepartmentID,
			&deptName,
		); err != nil {
			return nil, 0, err
		}
		emp.Department = &domain.Department{ID: emp.DepartmentID, Name: deptName}
		result = append(result, emp)
	}
	return result, total, rows.Err()
}

func (r *employeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM employees WHERE email=$1)`
	var exists bool
	if err := r.q.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *employeeRepository) CountByDepartment(ctx context.Context, departmentID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM employees WHERE department_id=$1`
	var count int
	if err := r.q.QueryRow(ctx, query, departmentID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *employeeRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM employees`
	var count int64
	if err := r.q.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
