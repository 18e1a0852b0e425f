package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/society-service/internal/domain"
)

// ResidentRepository defines persistence access for residents.
type ResidentRepository interface {
	Create(ctx context.Context, resident *domain.Resident) error
	GetByID(ctx context.Context, id string) (*domain.Resident, error)
	GetByLoginID(ctx context.Context, loginID string) (*domain.Resident, error)
	ExistsByLoginIDOrEmail(ctx context.Context, loginID, email string) (bool, error)
	ListAll(ctx context.Context) ([]domain.Resident, error)
}

type residentRepository struct {
	pool *pgxpool.Pool
}

// NewResidentRepository returns a Postgres-backed implementation.
func NewResidentRepository(pool *pgxpool.Pool) ResidentRepository {
	return &residentRepository{pool: pool}
}

func (r *residentRepository) Create(ctx context.Context, resident *domain.Resident) error {
	const query = `
        INSERT INTO residents (name, email, login_id, phone, password_hash)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		resident.Name,
		resident.Email,
		resident.LoginID,
		resident.Phone,
		resident.PasswordHash,
	).Scan(&resident.ID, &resident.CreatedAt, &resident.UpdatedAt)
}

func (r *residentRepository) GetByID(ctx context.Context, id string) (*domain.Resident, error) {
	const query = `
        SELECT id, name, email, login_id, phone, password_hash, created_at, updated_at
        FROM residents WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *residentRepository) GetByLoginID(ctx context.Context, loginID string) (*domain.Resident, error) {
	const query = `
        SELECT id, name, email, login_id, phone, password_hash, created_at, updated_at
        FROM residents WHERE login_id=$1`
	return r.fetchSingle(ctx, query, loginID)
}

func (r *residentRepository) ExistsByLoginIDOrEmail(ctx context.Context, loginID, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM residents WHERE login_id=$1 OR email=$2)`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, loginID, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *residentRepository) ListAll(ctx context.Context) ([]domain.Resident, error) {
	const query = `
        SELECT id, name, email, login_id, phone, password_hash, created_at, updated_at
        FROM residents ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Resident
	for rows.Next() {
		var resident domain.Resident
		if err := scanResident(rows, &resident); err != nil {
			return nil, err
		}
		result = append(result, resident)
	}
	return result, rows.Err()
}

func (r *residentRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Resident, error) {
	var resident domain.Resident
	if err := scanResident(r.pool.QueryRow(ctx, query, arg), &resident); err != nil {
		return nil, err
	}
	return &resident, nil
}

func scanResident(row pgx.Row, resident *domain.Resident) error {
	return row.Scan(
		&resident.ID,
		&resident.Name,
		&resident.Email,
		&resident.LoginID,
		&resident.Phone,
		&resident.PasswordHash,
		&resident.CreatedAt,
		&resident.UpdatedAt,
	)
}
