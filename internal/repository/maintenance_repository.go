package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/society-service/internal/domain"
)

// MaintenanceRepository encapsulates scheduled task persistence.
type MaintenanceRepository interface {
	Create(ctx context.Context, task *domain.MaintenanceTask) error
	Update(ctx context.Context, task *domain.MaintenanceTask) error
	GetByID(ctx context.Context, id string) (*domain.MaintenanceTask, error)
	ListAll(ctx context.Context) ([]domain.MaintenanceTask, error)
}

type maintenanceRepository struct {
	pool *pgxpool.Pool
}

// NewMaintenanceRepository instantiates the repository.
func NewMaintenanceRepository(pool *pgxpool.Pool) MaintenanceRepository {
	return &maintenanceRepository{pool: pool}
}

func (r *maintenanceRepository) Create(ctx context.Context, task *domain.MaintenanceTask) error {
	const query = `
        INSERT INTO maintenance_tasks (title, description, scheduled_date, status, created_by)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		task.Title,
		task.Description,
		task.ScheduledDate,
		task.Status,
		task.CreatedByID,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
}

func (r *maintenanceRepository) Update(ctx context.Context, task *domain.MaintenanceTask) error {
	const query = `
        UPDATE maintenance_tasks SET title=$1, description=$2, scheduled_date=$3,
            status=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		task.Title,
		task.Description,
		task.ScheduledDate,
		task.Status,
		task.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id string) (*domain.MaintenanceTask, error) {
	const query = `
        SELECT id, title, description, scheduled_date, status, created_by, created_at, updated_at
        FROM maintenance_tasks WHERE id=$1`

	var task domain.MaintenanceTask
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.ScheduledDate,
		&task.Status,
		&task.CreatedByID,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *maintenanceRepository) ListAll(ctx context.Context) ([]domain.MaintenanceTask, error) {
	const query = `
        SELECT id, title, description, scheduled_date, status, created_by, created_at, updated_at
        FROM maintenance_tasks ORDER BY scheduled_date DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.MaintenanceTask
	for rows.Next() {
		var task domain.MaintenanceTask
		if err := rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.ScheduledDate,
			&task.Status,
			&task.CreatedByID,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, task)
	}
	return result, rows.Err()
}
