package domain

import "time"

// GuestPassStatus enumerates visitor pass lifecycle states.
type GuestPassStatus string

const (
	GuestPassStatusPending   GuestPassStatus = "Pending"
	GuestPassStatusApproved  GuestPassStatus = "Approved"
	GuestPassStatusRejected  GuestPassStatus = "Rejected"
	GuestPassStatusCancelled GuestPassStatus = "Cancelled"
	GuestPassStatusExpired   GuestPassStatus = "Expired"
)

// GuestPass is a resident-requested visitor authorization. A code exists
// only once an admin approves the request.
type GuestPass struct {
	ID          string
	ResidentID  string
	GuestName   string
	VisitDate   time.Time
	Reason      string
	Code        *string
	Status      GuestPassStatus
	HandledByID *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Resident  *ResidentRef
	HandledBy *AdminRef
}
