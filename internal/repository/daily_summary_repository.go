package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-service/internal/domain"
)

// DailySummaryRepository appends snapshot rows. The table is append-only;
// no update or delete is exposed.
type DailySummaryRepository interface {
	Create(ctx context.Context, summary *domain.DailySummary) error
	WithTx(tx pgx.Tx) DailySummaryRepository
}

type dailySummaryRepository struct {
	q Querier
}

// NewDailySummaryRepository builds a Postgres-backed repository.
func NewDailySummaryRepository(pool *pgxpool.Pool) DailySummaryRepository {
	return &dailySummaryRepository{q: pool}
}

func (r *dailySummaryRepository) WithTx(tx pgx.Tx) DailySummaryRepository {
	return &dailySummaryRepository{q: tx}
}

func (r *dailySummaryRepository) Create(ctx context.Context, summary *domain.DailySummary) error {
	const query = `
        INSERT INTO daily_summaries (department_id, employee_count, snapshot_at)
        VALUES ($1,$2,$3)
        RETURNING id`
	return r.q.QueryRow(ctx, query,
		summary.DepartmentID,
		summary.EmployeeCount,
		summary.Timestamp,
	).Scan(&summary.ID)
}
