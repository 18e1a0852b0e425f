package dto

import (
	"time"

	"github.com/spec-kit/society-service/internal/domain"
)

// CreateBookingRequest payload.
type CreateBookingRequest struct {
	AmenityName      string    `json:"amenityName"`
	EventDescription string    `json:"eventDescription"`
	StartTime        time.Time `json:"startTime"`
	EndTime          time.Time `json:"endTime"`
}

// UpdateBookingStatusRequest payload.
type UpdateBookingStatusRequest struct {
	Status domain.BookingStatus `json:"status"`
}

// BookingResponse is the reservation shape.
type BookingResponse struct {
	ID               string               `json:"id"`
	AmenityName      string               `json:"amenityName"`
	EventDescription string               `json:"eventDescription,omitempty"`
	StartTime        time.Time            `json:"startTime"`
	EndTime          time.Time            `json:"endTime"`
	Status           domain.BookingStatus `json:"status"`
	Resident         *domain.ResidentRef  `json:"resident,omitempty"`
	CreatedAt        time.Time            `json:"createdAt"`
}

// NewBookingResponse maps a booking.
func NewBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		AmenityName:      b.AmenityName,
		EventDescription: b.EventDescription,
		StartTime:        b.StartTime,
		EndTime:          b.EndTime,
		Status:           b.Status,
		Resident:         b.Resident,
		CreatedAt:        b.CreatedAt,
	}
}

// NewBookingListResponse maps a slice of bookings.
func NewBookingListResponse(bookings []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, NewBookingResponse(&bookings[i]))
	}
	return out
}
