package dto

import (
	"time"

	"github.com/spec-kit/society-service/internal/domain"
)

// CreateDueRequest payload. The resident is addressed by login id.
type CreateDueRequest struct {
	ResidentLoginID string    `json:"loginId"`
	Type            string    `json:"type"`
	Amount          float64   `json:"amount"`
	DueDate         time.Time `json:"dueDate"`
	Notes           string    `json:"notes"`
}

// UpdateDueStatusRequest payload.
type UpdateDueStatusRequest struct {
	Status domain.DueStatus `json:"status"`
}

// DueResponse is the ledger-entry shape.
type DueResponse struct {
	ID        string              `json:"id"`
	Type      string              `json:"type"`
	Amount    float64             `json:"amount"`
	DueDate   time.Time           `json:"dueDate"`
	Status    domain.DueStatus    `json:"status"`
	PaidOn    *time.Time          `json:"paidOn,omitempty"`
	PaymentID *string             `json:"paymentId,omitempty"`
	OrderID   *string             `json:"orderId,omitempty"`
	Notes     string              `json:"notes,omitempty"`
	Resident  *domain.ResidentRef `json:"resident,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
}

// NewDueResponse maps a due.
func NewDueResponse(d *domain.Due) DueResponse {
	return DueResponse{
		ID:        d.ID,
		Type:      d.Type,
		Amount:    d.Amount,
		DueDate:   d.DueDate,
		Status:    d.Status,
		PaidOn:    d.PaidOn,
		PaymentID: d.PaymentID,
		OrderID:   d.OrderID,
		Notes:     d.Notes,
		Resident:  d.Resident,
		CreatedAt: d.CreatedAt,
	}
}

// NewDueListResponse maps a slice of dues.
func NewDueListResponse(dues []domain.Due) []DueResponse {
	out := make([]DueResponse, 0, len(dues))
	for i := range dues {
		out = append(out, NewDueResponse(&dues[i]))
	}
	return out
}
