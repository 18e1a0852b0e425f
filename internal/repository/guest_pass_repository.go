package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/society-service/internal/domain"
)

// GuestPassRepository encapsulates visitor pass persistence.
type GuestPassRepository interface {
	Create(ctx context.Context, pass *domain.GuestPass) error
	Update(ctx context.Context, pass *domain.GuestPass) error
	GetByID(ctx context.Context, id string) (*domain.GuestPass, error)
	ListByResident(ctx context.Context, residentID string) ([]domain.GuestPass, error)
	ListAll(ctx context.Context) ([]domain.GuestPass, error)
}

type guestPassRepository struct {
	pool *pgxpool.Pool
}

// NewGuestPassRepository instantiates the repository.
func NewGuestPassRepository(pool *pgxpool.Pool) GuestPassRepository {
	return &guestPassRepository{pool: pool}
}

const guestPassColumns = `
        g.id, g.resident_id, g.guest_name, g.visit_date, g.reason, g.code,
        g.status, g.handled_by, g.created_at, g.updated_at,
        r.id, r.name, r.login_id,
        a.id, a.admin_id`

func (r *guestPassRepository) Create(ctx context.Context, pass *domain.GuestPass) error {
	const query = `
        INSERT INTO guest_passes (resident_id, guest_name, visit_date, reason, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		pass.ResidentID,
		pass.GuestName,
		pass.VisitDate,
		pass.Reason,
		pass.Status,
	).Scan(&pass.ID, &pass.CreatedAt, &pass.UpdatedAt)
}

func (r *guestPassRepository) Update(ctx context.Context, pass *domain.GuestPass) error {
	const query = `
        UPDATE guest_passes SET guest_name=$1, visit_date=$2, reason=$3, code=$4,
            status=$5, handled_by=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		pass.GuestName,
		pass.VisitDate,
		pass.Reason,
		pass.Code,
		pass.Status,
		pass.HandledByID,
		pass.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *guestPassRepository) GetByID(ctx context.Context, id string) (*domain.GuestPass, error) {
	query := `
        SELECT ` + guestPassColumns + `
        FROM guest_passes g
        JOIN residents r ON r.id = g.resident_id
        LEFT JOIN admins a ON a.id = g.handled_by
        WHERE g.id=$1`

	var pass domain.GuestPass
	if err := scanGuestPass(r.pool.QueryRow(ctx, query, id), &pass); err != nil {
		return nil, err
	}
	return &pass, nil
}

func (r *guestPassRepository) ListByResident(ctx context.Context, residentID string) ([]domain.GuestPass, error) {
	query := `
        SELECT ` + guestPassColumns + `
        FROM guest_passes g
        JOIN residents r ON r.id = g.resident_id
        LEFT JOIN admins a ON a.id = g.handled_by
        WHERE g.resident_id=$1
        ORDER BY g.visit_date DESC`
	return r.list(ctx, query, residentID)
}

func (r *guestPassRepository) ListAll(ctx context.Context) ([]domain.GuestPass, error) {
	query := `
        SELECT ` + guestPassColumns + `
        FROM guest_passes g
        JOIN residents r ON r.id = g.resident_id
        LEFT JOIN admins a ON a.id = g.handled_by
        ORDER BY g.created_at DESC`
	return r.list(ctx, query)
}

func (r *guestPassRepository) list(ctx context.Context, query string, args ...any) ([]domain.GuestPass, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.GuestPass
	for rows.Next() {
		var pass domain.GuestPass
		if err := scanGuestPass(rows, &pass); err != nil {
			return nil, err
		}
		result = append(result, pass)
	}
	return result, rows.Err()
}

func scanGuestPass(row pgx.Row, pass *domain.GuestPass) error {
	var ref domain.ResidentRef
	var adminID, adminLabel *string
	if err := row.Scan(
		&pass.ID,
		&pass.ResidentID,
		&pass.GuestName,
		&pass.VisitDate,
		&pass.Reason,
		&pass.Code,
		&pass.Status,
		&pass.HandledByID,
		&pass.CreatedAt,
		&pass.UpdatedAt,
		&ref.ID,
		&ref.Name,
		&ref.LoginID,
		&adminID,
		&adminLabel,
	); err != nil {
		return err
	}
	pass.Resident = &ref
	if adminID != nil && adminLabel != nil {
		pass.HandledBy = &domain.AdminRef{ID: *adminID, AdminID: *adminLabel}
	}
	return nil
}
