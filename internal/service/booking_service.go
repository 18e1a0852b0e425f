package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/society-service/internal/domain"
	"github.com/spec-kit/society-service/internal/events"
	"github.com/spec-kit/society-service/internal/repository"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// BookingService coordinates amenity reservations.
type BookingService struct {
	bookings   repository.BookingRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewBookingService wires the booking service.
func NewBookingService(bookings repository.BookingRepository, dispatcher events.Dispatcher) *BookingService {
	return &BookingService{bookings: bookings, dispatcher: dispatcher, now: time.Now}
}

// BookingCreateInput describes a reservation request.
type BookingCreateInput struct {
	AmenityName      string
	EventDescription string
	StartTime        time.Time
	EndTime          time.Time
}

// Amenities returns the bookable-facility catalog.
func (s *BookingService) Amenities() []domain.Amenity {
	return domain.Amenities()
}

// CreateBooking validates the slot and records a Pending reservation.
// Intervals are half-open: a booking ending exactly when another starts
// does not conflict.
func (s *BookingService) CreateBooking(ctx context.Context, residentID string, input BookingCreateInput) (*domain.Booking, error) {
	if input.AmenityName == "" {
		return nil, apperrors.NewValidationError("amenityName is required", nil)
	}
	if input.StartTime.IsZero() || input.EndTime.IsZero() {
		return nil, apperrors.NewValidationError("startTime and endTime are required", nil)
	}
	if !input.StartTime.Before(input.EndTime) {
		return nil, apperrors.NewValidationError("startTime must be before endTime", nil)
	}
	if input.StartTime.Before(s.now()) {
		return nil, apperrors.NewValidationError("startTime must be in the future", nil)
	}

	count, err := s.bookings.CountOverlapping(ctx, input.AmenityName, input.StartTime, input.EndTime)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if count > 0 {
		return nil, apperrors.NewConflict("slot already booked", map[string]any{
			"amenityName": input.AmenityName,
		})
	}

	// TODO: the check-then-insert pair is not atomic; two simultaneous
	// requests for the same slot can both pass the count. Needs an
	// exclusion constraint on (amenity_name, tstzrange(start_time, end_time)).
	booking := &domain.Booking{
		AmenityName:      input.AmenityName,
		ResidentID:       residentID,
		EventDescription: input.EventDescription,
		StartTime:        input.StartTime,
		EndTime:          input.EndTime,
		Status:           domain.BookingStatusPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventBookingRequested,
		SubjectID: booking.ID,
		Actor:     events.ResidentActor(residentID),
		Payload: events.BookingRequestedPayload{
			AmenityName: booking.AmenityName,
			StartTime:   booking.StartTime,
			EndTime:     booking.EndTime,
		},
	})
	return booking, nil
}

// ListMyBookings returns the resident's reservations.
func (s *BookingService) ListMyBookings(ctx context.Context, residentID string) ([]domain.Booking, error) {
	bookings, err := s.bookings.ListByResident(ctx, residentID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return bookings, nil
}

// ListAllBookings returns every reservation for the admin view.
func (s *BookingService) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return bookings, nil
}

// CancelBooking lets the owner withdraw a Pending or Approved reservation.
func (s *BookingService) CancelBooking(ctx context.Context, residentID, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("booking", map[string]any{"booking_id": bookingID})
		}
		return nil, apperrors.MapError(err)
	}
	if booking.ResidentID != residentID {
		return nil, apperrors.NewForbidden("access denied")
	}
	if booking.Status != domain.BookingStatusPending && booking.Status != domain.BookingStatusApproved {
		return nil, apperrors.NewValidationError("only pending or approved bookings can be cancelled", map[string]any{"status": string(booking.Status)})
	}

	old := booking.Status
	booking.Status = domain.BookingStatusCancelled
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventBookingStatusChanged,
		SubjectID: booking.ID,
		Actor:     events.ResidentActor(residentID),
		Payload:   events.BookingStatusChangedPayload{ResidentID: booking.ResidentID, OldStatus: old, NewStatus: booking.Status},
	})
	return booking, nil
}

// SetStatus is the admin decision on a reservation.
func (s *BookingService) SetStatus(ctx context.Context, adminID, bookingID string, status domain.BookingStatus) (*domain.Booking, error) {
	if !domain.ValidBookingStatus(status) {
		return nil, apperrors.NewValidationError("invalid booking status", map[string]any{"status": string(status)})
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("booking", map[string]any{"booking_id": bookingID})
		}
		return nil, apperrors.MapError(err)
	}
	if booking.Status == status {
		return booking, nil
	}

	// TODO: approving does not re-run the overlap check, so a slot freed
	// and rebooked between request and approval can end up double-approved.
	old := booking.Status
	booking.Status = status
	if err := s.bookings.Update(ctx, booking); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventBookingStatusChanged,
		SubjectID: booking.ID,
		Actor:     events.AdminActor(adminID),
		Payload:   events.BookingStatusChangedPayload{ResidentID: booking.ResidentID, OldStatus: old, NewStatus: booking.Status},
	})
	return booking, nil
}

// DeleteBooking removes a reservation outright.
func (s *BookingService) DeleteBooking(ctx context.Context, bookingID string) error {
	if _, err := s.bookings.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("booking", map[string]any{"booking_id": bookingID})
		}
		return apperrors.MapError(err)
	}
	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

func (s *BookingService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
