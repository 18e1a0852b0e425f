package events

import (
	"time"

	"github.com/spec-kit/society-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBookingRequested     EventType = "booking_requested"
	EventBookingStatusChanged EventType = "booking_status_changed"
	EventGuestPassDecided     EventType = "guest_pass_decided"
	EventTicketCloseRequested EventType = "ticket_close_requested"
	EventTicketClosed         EventType = "ticket_closed"
	EventDueRecorded          EventType = "due_recorded"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	Type       domain.SubjectType `json:"type"`
	ResidentID *string            `json:"resident_id,omitempty"`
	AdminID    *string            `json:"admin_id,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BookingRequestedPayload payload.
type BookingRequestedPayload struct {
	AmenityName string    `json:"amenity_name"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

// BookingStatusChangedPayload payload. ResidentID is the booking owner,
// who may differ from the actor when an admin decides.
type BookingStatusChangedPayload struct {
	ResidentID string               `json:"resident_id"`
	OldStatus  domain.BookingStatus `json:"old_status"`
	NewStatus  domain.BookingStatus `json:"new_status"`
}

// GuestPassDecidedPayload payload.
type GuestPassDecidedPayload struct {
	Status    domain.GuestPassStatus `json:"status"`
	GuestName string                 `json:"guest_name"`
	HasCode   bool                   `json:"has_code"`
}

// TicketCloseRequestedPayload payload. The code itself never rides on the
// event bus; delivery happens through the notifier.
type TicketCloseRequestedPayload struct {
	Title        string    `json:"title"`
	OTPExpiresAt time.Time `json:"otp_expires_at"`
}

// TicketClosedPayload payload.
type TicketClosedPayload struct {
	ClosedAt time.Time `json:"closed_at"`
}

// DueRecordedPayload payload.
type DueRecordedPayload struct {
	Amount  float64   `json:"amount"`
	DueDate time.Time `json:"due_date"`
	DueType string    `json:"due_type"`
}

// ResidentActor builds an Actor for a resident principal.
func ResidentActor(residentID string) Actor {
	return Actor{Type: domain.SubjectTypeResident, ResidentID: &residentID}
}

// AdminActor builds an Actor for an admin principal.
func AdminActor(adminID string) Actor {
	return Actor{Type: domain.SubjectTypeAdmin, AdminID: &adminID}
}
