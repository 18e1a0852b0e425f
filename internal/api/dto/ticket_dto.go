package dto

import (
	"time"

	"github.com/spec-kit/society-service/internal/domain"
)

// CreateTicketRequest payload.
type CreateTicketRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    domain.TicketCategory `json:"category"`
	Priority    domain.TicketPriority `json:"priority"`
}

// AssignTicketRequest payload.
type AssignTicketRequest struct {
	Assignee string `json:"assignee"`
}

// UpdateTicketStatusRequest payload.
type UpdateTicketStatusRequest struct {
	Status domain.TicketStatus `json:"status"`
}

// VerifyCloseRequest carries the closure code back from the owner.
type VerifyCloseRequest struct {
	OTP string `json:"otp"`
}

// TicketResponse is the support-ticket shape. The closure code itself is
// never serialized.
type TicketResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Category     domain.TicketCategory `json:"category"`
	Priority     domain.TicketPriority `json:"priority"`
	Status       domain.TicketStatus   `json:"status"`
	AssignedTo   *string               `json:"assignedTo,omitempty"`
	SLAHours     int                   `json:"slaHours"`
	SLADueAt     *time.Time            `json:"slaDueAt,omitempty"`
	ResolvedAt   *time.Time            `json:"resolvedAt,omitempty"`
	ClosedAt     *time.Time            `json:"closedAt,omitempty"`
	OTPExpiresAt *time.Time            `json:"otpExpiresAt,omitempty"`
	Resident     *domain.ResidentRef   `json:"resident,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// NewTicketResponse maps a ticket.
func NewTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		Category:     t.Category,
		Priority:     t.Priority,
		Status:       t.Status,
		AssignedTo:   t.AssignedTo,
		SLAHours:     t.SLAHours,
		SLADueAt:     t.SLADueAt,
		ResolvedAt:   t.ResolvedAt,
		ClosedAt:     t.ClosedAt,
		OTPExpiresAt: t.OTPExpiresAt,
		Resident:     t.Resident,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// NewTicketListResponse maps a slice of tickets.
func NewTicketListResponse(tickets []domain.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		out = append(out, NewTicketResponse(&tickets[i]))
	}
	return out
}
