package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/society-service/internal/domain"
)

// BookingRepository encapsulates amenity booking persistence.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByResident(ctx context.Context, residentID string) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
	// CountOverlapping counts Pending/Approved bookings for the amenity whose
	// interval overlaps [start, end) under half-open semantics: an existing
	// booking conflicts when existing.start < end AND existing.end > start.
	CountOverlapping(ctx context.Context, amenityName string, start, end time.Time) (int64, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository instantiates the repository.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

const bookingColumns = `
        b.id, b.amenity_name, b.resident_id, b.event_description,
        b.start_time, b.end_time, b.status, b.created_at, b.updated_at,
        r.id, r.name, r.login_id`

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	const query = `
        INSERT INTO bookings (amenity_name, resident_id, event_description, start_time, end_time, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		booking.AmenityName,
		booking.ResidentID,
		booking.EventDescription,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

func (r *bookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	const query = `
        UPDATE bookings SET amenity_name=$1, event_description=$2, start_time=$3,
            end_time=$4, status=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		booking.AmenityName,
		booking.EventDescription,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings b JOIN residents r ON r.id = b.resident_id
        WHERE b.id=$1`

	var booking domain.Booking
	if err := scanBooking(r.pool.QueryRow(ctx, query, id), &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListByResident(ctx context.Context, residentID string) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings b JOIN residents r ON r.id = b.resident_id
        WHERE b.resident_id=$1
        ORDER BY b.start_time DESC`
	return r.list(ctx, query, residentID)
}

func (r *bookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	query := `
        SELECT ` + bookingColumns + `
        FROM bookings b JOIN residents r ON r.id = b.resident_id
        ORDER BY b.start_time DESC`
	return r.list(ctx, query)
}

func (r *bookingRepository) CountOverlapping(ctx context.Context, amenityName string, start, end time.Time) (int64, error) {
	const query = `
        SELECT COUNT(*) FROM bookings
        WHERE amenity_name=$1
          AND status IN ('Pending','Approved')
          AND start_time < $3
          AND end_time > $2`

	var count int64
	if err := r.pool.QueryRow(ctx, query, amenityName, start, end).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *bookingRepository) list(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Booking
	for rows.Next() {
		var booking domain.Booking
		if err := scanBooking(rows, &booking); err != nil {
			return nil, err
		}
		result = append(result, booking)
	}
	return result, rows.Err()
}

func scanBooking(row pgx.Row, booking *domain.Booking) error {
	var ref domain.ResidentRef
	if err := row.Scan(
		&booking.ID,
		&booking.AmenityName,
		&booking.ResidentID,
		&booking.EventDescription,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&ref.ID,
		&ref.Name,
		&ref.LoginID,
	); err != nil {
		return err
	}
	booking.Resident = &ref
	return nil
}
