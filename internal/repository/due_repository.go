package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/society-service/internal/domain"
)

// DueRepository encapsulates dues-ledger persistence.
type DueRepository interface {
	Create(ctx context.Context, due *domain.Due) error
	Update(ctx context.Context, due *domain.Due) error
	GetByID(ctx context.Context, id string) (*domain.Due, error)
	ListAll(ctx context.Context) ([]domain.Due, error)
	// CurrentForResident returns the earliest-due-date Pending/Overdue due
	// for the resident, or pgx.ErrNoRows when nothing is outstanding.
	CurrentForResident(ctx context.Context, residentID string) (*domain.Due, error)
}

type dueRepository struct {
	pool *pgxpool.Pool
}

// NewDueRepository instantiates the repository.
func NewDueRepository(pool *pgxpool.Pool) DueRepository {
	return &dueRepository{pool: pool}
}

const dueColumns = `
        d.id, d.resident_id, d.due_type, d.amount, d.due_date, d.status,
        d.paid_on, d.payment_id, d.order_id, d.notes, d.created_at, d.updated_at,
        r.id, r.name, r.login_id`

func (r *dueRepository) Create(ctx context.Context, due *domain.Due) error {
	const query = `
        INSERT INTO dues (resident_id, due_type, amount, due_date, status, notes)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		due.ResidentID,
		due.Type,
		due.Amount,
		due.DueDate,
		due.Status,
		due.Notes,
	).Scan(&due.ID, &due.CreatedAt, &due.UpdatedAt)
}

func (r *dueRepository) Update(ctx context.Context, due *domain.Due) error {
	const query = `
        UPDATE dues SET due_type=$1, amount=$2, due_date=$3, status=$4,
            paid_on=$5, payment_id=$6, order_id=$7, notes=$8, updated_at=NOW()
        WHERE id=$9`

	cmd, err := r.pool.Exec(ctx, query,
		due.Type,
		due.Amount,
		due.DueDate,
		due.Status,
		due.PaidOn,
		due.PaymentID,
		due.OrderID,
		due.Notes,
		due.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *dueRepository) GetByID(ctx context.Context, id string) (*domain.Due, error) {
	query := `
        SELECT ` + dueColumns + `
        FROM dues d JOIN residents r ON r.id = d.resident_id
        WHERE d.id=$1`

	var due domain.Due
	if err := scanDue(r.pool.QueryRow(ctx, query, id), &due); err != nil {
		return nil, err
	}
	return &due, nil
}

func (r *dueRepository) ListAll(ctx context.Context) ([]domain.Due, error) {
	query := `
        SELECT ` + dueColumns + `
        FROM dues d JOIN residents r ON r.id = d.resident_id
        ORDER BY d.due_date DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Due
	for rows.Next() {
		var due domain.Due
		if err := scanDue(rows, &due); err != nil {
			return nil, err
		}
		result = append(result, due)
	}
	return result, rows.Err()
}

func (r *dueRepository) CurrentForResident(ctx context.Context, residentID string) (*domain.Due, error) {
	query := `
        SELECT ` + dueColumns + `
        FROM dues d JOIN residents r ON r.id = d.resident_id
        WHERE d.resident_id=$1 AND d.status IN ('Pending','Overdue')
        ORDER BY d.due_date ASC
        LIMIT 1`

	var due domain.Due
	if err := scanDue(r.pool.QueryRow(ctx, query, residentID), &due); err != nil {
		return nil, err
	}
	return &due, nil
}

func scanDue(row pgx.Row, due *domain.Due) error {
	var ref domain.ResidentRef
	if err := row.Scan(
		&due.ID,
		&due.ResidentID,
		&due.Type,
		&due.Amount,
		&due.DueDate,
		&due.Status,
		&due.PaidOn,
		&due.PaymentID,
		&due.OrderID,
		&due.Notes,
		&due.CreatedAt,
		&due.UpdatedAt,
		&ref.ID,
		&ref.Name,
		&ref.LoginID,
	); err != nil {
		return err
	}
	due.Resident = &ref
	return nil
}
