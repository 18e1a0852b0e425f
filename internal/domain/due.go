package domain

import "time"

// DueStatus enumerates the dues ledger states.
type DueStatus string

const (
	DueStatusPending DueStatus = "Pending"
	DueStatusPaid    DueStatus = "Paid"
	DueStatusOverdue DueStatus = "Overdue"
)

// ValidDueStatus reports whether s is one of the enumerated ledger states.
func ValidDueStatus(s DueStatus) bool {
	switch s {
	case DueStatusPending, DueStatusPaid, DueStatusOverdue:
		return true
	}
	return false
}

// Due is a billed charge owed by a resident.
type Due struct {
	ID         string
	ResidentID string
	Type       string
	Amount     float64
	DueDate    time.Time
	Status     DueStatus
	PaidOn     *time.Time
	PaymentID  *string
	OrderID    *string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Resident *ResidentRef
}
