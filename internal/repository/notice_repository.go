package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/society-service/internal/domain"
)

// NoticeRepository encapsulates notice-board persistence.
type NoticeRepository interface {
	Create(ctx context.Context, notice *domain.Notice) error
	ListAll(ctx context.Context) ([]domain.Notice, error)
}

type noticeRepository struct {
	pool *pgxpool.Pool
}

// NewNoticeRepository instantiates the repository.
func NewNoticeRepository(pool *pgxpool.Pool) NoticeRepository {
	return &noticeRepository{pool: pool}
}

func (r *noticeRepository) Create(ctx context.Context, notice *domain.Notice) error {
	const query = `
        INSERT INTO notices (title, body, created_by)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		notice.Title,
		notice.Body,
		notice.CreatedByID,
	).Scan(&notice.ID, &notice.CreatedAt, &notice.UpdatedAt)
}

func (r *noticeRepository) ListAll(ctx context.Context) ([]domain.Notice, error) {
	const query = `
        SELECT id, title, body, created_by, created_at, updated_at
        FROM notices ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Notice
	for rows.Next() {
		var notice domain.Notice
		if err := rows.Scan(
			&notice.ID,
			&notice.Title,
			&notice.Body,
			&notice.CreatedByID,
			&notice.CreatedAt,
			&notice.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, notice)
	}
	return result, rows.Err()
}
