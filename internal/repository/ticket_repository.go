package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/society-service/internal/domain"
)

// TicketRepository encapsulates support ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	ListByResident(ctx context.Context, residentID string) ([]domain.Ticket, error)
	ListAll(ctx context.Context) ([]domain.Ticket, error)
	Overview(ctx context.Context) (*domain.TicketOverview, error)
	ListSLABreached(ctx context.Context) ([]domain.Ticket, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates the repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `
        t.id, t.title, t.description, t.category, t.priority, t.status,
        t.resident_id, t.assigned_to, t.sla_hours, t.sla_due_at, t.resolved_at,
        t.closed_at, t.otp, t.otp_expires_at, t.otp_verified, t.created_at, t.updated_at,
        r.id, r.name, r.login_id`

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (title, description, category, priority, status, resident_id, sla_hours, sla_due_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NOW() + make_interval(hours => $7))
        RETURNING id, sla_due_at, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.Category,
		ticket.Priority,
		ticket.Status,
		ticket.ResidentID,
		ticket.SLAHours,
	).Scan(&ticket.ID, &ticket.SLADueAt, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET title=$1, description=$2, category=$3, priority=$4,
            status=$5, assigned_to=$6, resolved_at=$7, closed_at=$8,
            otp=$9, otp_expires_at=$10, otp_verified=$11, updated_at=NOW()
        WHERE id=$12`

	cmd, err := r.pool.Exec(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.Category,
		ticket.Priority,
		ticket.Status,
		ticket.AssignedTo,
		ticket.ResolvedAt,
		ticket.ClosedAt,
		ticket.OTP,
		ticket.OTPExpiresAt,
		ticket.OTPVerified,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	query := `
        SELECT ` + ticketColumns + `
        FROM tickets t JOIN residents r ON r.id = t.resident_id
        WHERE t.id=$1`

	var ticket domain.Ticket
	if err := scanTicket(r.pool.QueryRow(ctx, query, id), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) ListByResident(ctx context.Context, residentID string) ([]domain.Ticket, error) {
	query := `
        SELECT ` + ticketColumns + `
        FROM tickets t JOIN residents r ON r.id = t.resident_id
        WHERE t.resident_id=$1
        ORDER BY t.created_at DESC`
	return r.list(ctx, query, residentID)
}

func (r *ticketRepository) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	query := `
        SELECT ` + ticketColumns + `
        FROM tickets t JOIN residents r ON r.id = t.resident_id
        ORDER BY t.created_at DESC`
	return r.list(ctx, query)
}

func (r *ticketRepository) Overview(ctx context.Context) (*domain.TicketOverview, error) {
	const query = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status='Open'),
               COUNT(*) FILTER (WHERE status='Assigned'),
               COUNT(*) FILTER (WHERE status='Closed')
        FROM tickets`

	var overview domain.TicketOverview
	if err := r.pool.QueryRow(ctx, query).Scan(
		&overview.Total,
		&overview.Open,
		&overview.Assigned,
		&overview.Closed,
	); err != nil {
		return nil, err
	}
	return &overview, nil
}

func (r *ticketRepository) ListSLABreached(ctx context.Context) ([]domain.Ticket, error) {
	query := `
        SELECT ` + ticketColumns + `
        FROM tickets t JOIN residents r ON r.id = t.resident_id
        WHERE t.status <> 'Closed' AND t.sla_due_at < NOW()
        ORDER BY t.sla_due_at ASC`
	return r.list(ctx, query)
}

func (r *ticketRepository) list(ctx context.Context, query string, args ...any) ([]domain.Ticket, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := scanTicket(rows, &ticket); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

func scanTicket(row pgx.Row, ticket *domain.Ticket) error {
	var ref domain.ResidentRef
	if err := row.Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Category,
		&ticket.Priority,
		&ticket.Status,
		&ticket.ResidentID,
		&ticket.AssignedTo,
		&ticket.SLAHours,
		&ticket.SLADueAt,
		&ticket.ResolvedAt,
		&ticket.ClosedAt,
		&ticket.OTP,
		&ticket.OTPExpiresAt,
		&ticket.OTPVerified,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ref.ID,
		&ref.Name,
		&ref.LoginID,
	); err != nil {
		return err
	}
	ticket.Resident = &ref
	return nil
}
