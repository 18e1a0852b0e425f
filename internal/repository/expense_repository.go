package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/society-service/internal/domain"
)

// ExpenseRepository encapsulates expense-log persistence.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	ListAll(ctx context.Context) ([]domain.Expense, error)
}

type expenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository instantiates the repository.
func NewExpenseRepository(pool *pgxpool.Pool) ExpenseRepository {
	return &expenseRepository{pool: pool}
}

func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	const query = `
        INSERT INTO expenses (title, amount, category, description, spent_on, created_by)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		expense.Title,
		expense.Amount,
		expense.Category,
		expense.Description,
		expense.SpentOn,
		expense.CreatedByID,
	).Scan(&expense.ID, &expense.CreatedAt, &expense.UpdatedAt)
}

func (r *expenseRepository) ListAll(ctx context.Context) ([]domain.Expense, error) {
	const query = `
        SELECT id, title, amount, category, description, spent_on, created_by, created_at, updated_at
        FROM expenses ORDER BY spent_on DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Expense
	for rows.Next() {
		var expense domain.Expense
		if err := rows.Scan(
			&expense.ID,
			&expense.Title,
			&expense.Amount,
			&expense.Category,
			&expense.Description,
			&expense.SpentOn,
			&expense.CreatedByID,
			&expense.CreatedAt,
			&expense.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, expense)
	}
	return result, rows.Err()
}
