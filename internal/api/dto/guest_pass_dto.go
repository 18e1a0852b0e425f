package dto

import (
	"time"

	"github.com/spec-kit/society-service/internal/domain"
)

// CreateGuestPassRequest payload.
type CreateGuestPassRequest struct {
	GuestName string    `json:"guestName"`
	VisitDate time.Time `json:"visitDate"`
	Reason    string    `json:"reason"`
}

// GuestPassResponse is the visitor-pass shape. Code is present only once
// approved.
type GuestPassResponse struct {
	ID        string                 `json:"id"`
	GuestName string                 `json:"guestName"`
	VisitDate time.Time              `json:"visitDate"`
	Reason    string                 `json:"reason,omitempty"`
	Code      *string                `json:"code,omitempty"`
	Status    domain.GuestPassStatus `json:"status"`
	Resident  *domain.ResidentRef    `json:"resident,omitempty"`
	HandledBy *domain.AdminRef       `json:"handledBy,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}

// NewGuestPassResponse maps a pass.
func NewGuestPassResponse(p *domain.GuestPass) GuestPassResponse {
	return GuestPassResponse{
		ID:        p.ID,
		GuestName: p.GuestName,
		VisitDate: p.VisitDate,
		Reason:    p.Reason,
		Code:      p.Code,
		Status:    p.Status,
		Resident:  p.Resident,
		HandledBy: p.HandledBy,
		CreatedAt: p.CreatedAt,
	}
}

// NewGuestPassListResponse maps a slice of passes.
func NewGuestPassListResponse(passes []domain.GuestPass) []GuestPassResponse {
	out := make([]GuestPassResponse, 0, len(passes))
	for i := range passes {
		out = append(out, NewGuestPassResponse(&passes[i]))
	}
	return out
}
