package domain

import "time"

// TicketStatus enumerates support ticket lifecycle states.
type TicketStatus string

const (
	TicketStatusOpen           TicketStatus = "Open"
	TicketStatusAssigned       TicketStatus = "Assigned"
	TicketStatusInProgress     TicketStatus = "In Progress"
	TicketStatusPendingClosure TicketStatus = "Pending Closure"
	TicketStatusResolved       TicketStatus = "Resolved"
	TicketStatusClosed         TicketStatus = "Closed"
)

// TicketCategory enumerates complaint categories.
type TicketCategory string

const (
	TicketCategoryMaintenance TicketCategory = "Maintenance"
	TicketCategoryElectrical  TicketCategory = "Electrical"
	TicketCategorySecurity    TicketCategory = "Security"
	TicketCategoryBilling     TicketCategory = "Billing"
	TicketCategoryAmenities   TicketCategory = "Amenities"
)

// ValidTicketCategory reports whether c is an enumerated category.
func ValidTicketCategory(c TicketCategory) bool {
	switch c {
	case TicketCategoryMaintenance, TicketCategoryElectrical, TicketCategorySecurity,
		TicketCategoryBilling, TicketCategoryAmenities:
		return true
	}
	return false
}

// TicketPriority enumerates SLA urgency levels.
type TicketPriority string

const (
	TicketPriorityP1 TicketPriority = "P1"
	TicketPriorityP2 TicketPriority = "P2"
	TicketPriorityP3 TicketPriority = "P3"
	TicketPriorityP4 TicketPriority = "P4"
)

// ValidTicketPriority reports whether p is an enumerated priority.
func ValidTicketPriority(p TicketPriority) bool {
	switch p {
	case TicketPriorityP1, TicketPriorityP2, TicketPriorityP3, TicketPriorityP4:
		return true
	}
	return false
}

// Ticket is a resident support request. While status is Pending Closure the
// record carries a short-lived numeric code the owner must echo back to
// finalize closure.
type Ticket struct {
	ID           string
	Title        string
	Description  string
	Category     TicketCategory
	Priority     TicketPriority
	Status       TicketStatus
	ResidentID   string
	AssignedTo   *string
	SLAHours     int
	SLADueAt     *time.Time
	ResolvedAt   *time.Time
	ClosedAt     *time.Time
	OTP          *string
	OTPExpiresAt *time.Time
	OTPVerified  bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Resident *ResidentRef
}

// TicketOverview aggregates counts for the admin dashboard.
type TicketOverview struct {
	Total    int64 `json:"total"`
	Open     int64 `json:"open"`
	Assigned int64 `json:"assigned"`
	Closed   int64 `json:"closed"`
}
