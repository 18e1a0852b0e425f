package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/society-service/internal/domain"
)

// PollRepository encapsulates poll and option persistence.
type PollRepository interface {
	// Create inserts the poll and its options atomically.
	Create(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id string) (*domain.Poll, error)
	ListAll(ctx context.Context) ([]domain.Poll, error)
	// IncrementVote adds one vote to the option at the given position and
	// returns pgx.ErrNoRows when the poll/position pair does not exist.
	IncrementVote(ctx context.Context, pollID string, position int) error
	Delete(ctx context.Context, id string) error
}

type pollRepository struct {
	pool *pgxpool.Pool
}

// NewPollRepository instantiates the repository.
func NewPollRepository(pool *pgxpool.Pool) PollRepository {
	return &pollRepository{pool: pool}
}

func (r *pollRepository) Create(ctx context.Context, poll *domain.Poll) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const pollQuery = `
        INSERT INTO polls (question, created_by)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`
	if err := tx.QueryRow(ctx, pollQuery, poll.Question, poll.CreatedByID).
		Scan(&poll.ID, &poll.CreatedAt, &poll.UpdatedAt); err != nil {
		return err
	}

	const optionQuery = `
        INSERT INTO poll_options (poll_id, position, text)
        VALUES ($1, $2, $3)
        RETURNING id`
	for i := range poll.Options {
		poll.Options[i].Position = i
		if err := tx.QueryRow(ctx, optionQuery, poll.ID, i, poll.Options[i].Text).
			Scan(&poll.Options[i].ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *pollRepository) GetByID(ctx context.Context, id string) (*domain.Poll, error) {
	const query = `
        SELECT p.id, p.question, p.created_by, p.created_at, p.updated_at, a.admin_id
        FROM polls p JOIN admins a ON a.id = p.created_by
        WHERE p.id=$1`

	var poll domain.Poll
	var adminLabel string
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&poll.ID,
		&poll.Question,
		&poll.CreatedByID,
		&poll.CreatedAt,
		&poll.UpdatedAt,
		&adminLabel,
	); err != nil {
		return nil, err
	}
	poll.CreatedBy = &domain.AdminRef{ID: poll.CreatedByID, AdminID: adminLabel}

	options, err := r.optionsFor(ctx, poll.ID)
	if err != nil {
		return nil, err
	}
	poll.Options = options
	return &poll, nil
}

func (r *pollRepository) ListAll(ctx context.Context) ([]domain.Poll, error) {
	const query = `
        SELECT p.id, p.question, p.created_by, p.created_at, p.updated_at, a.admin_id
        FROM polls p JOIN admins a ON a.id = p.created_by
        ORDER BY p.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var polls []domain.Poll
	for rows.Next() {
		var poll domain.Poll
		var adminLabel string
		if err := rows.Scan(
			&poll.ID,
			&poll.Question,
			&poll.CreatedByID,
			&poll.CreatedAt,
			&poll.UpdatedAt,
			&adminLabel,
		); err != nil {
			return nil, err
		}
		poll.CreatedBy = &domain.AdminRef{ID: poll.CreatedByID, AdminID: adminLabel}
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range polls {
		options, err := r.optionsFor(ctx, polls[i].ID)
		if err != nil {
			return nil, err
		}
		polls[i].Options = options
	}
	return polls, nil
}

func (r *pollRepository) IncrementVote(ctx context.Context, pollID string, position int) error {
	const query = `
        UPDATE poll_options SET votes = votes + 1
        WHERE poll_id=$1 AND position=$2`

	cmd, err := r.pool.Exec(ctx, query, pollID, position)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *pollRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM polls WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *pollRepository) optionsFor(ctx context.Context, pollID string) ([]domain.PollOption, error) {
	const query = `
        SELECT id, position, text, votes
        FROM poll_options WHERE poll_id=$1
        ORDER BY position ASC`

	rows, err := r.pool.Query(ctx, query, pollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []domain.PollOption
	for rows.Next() {
		var option domain.PollOption
		if err := rows.Scan(&option.ID, &option.Position, &option.Text, &option.Votes); err != nil {
			return nil, err
		}
		options = append(options, option)
	}
	return options, rows.Err()
}
