package domain

import "time"

// BookingStatus enumerates amenity booking lifecycle states.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusApproved  BookingStatus = "Approved"
	BookingStatusRejected  BookingStatus = "Rejected"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// ValidBookingStatus reports whether s is an enumerated booking state.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected, BookingStatusCancelled:
		return true
	}
	return false
}

// Booking is a reservation request for a shared amenity time slot.
type Booking struct {
	ID               string
	AmenityName      string
	ResidentID       string
	EventDescription string
	StartTime        time.Time
	EndTime          time.Time
	Status           BookingStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Resident *ResidentRef
}

// Amenity is an entry in the fixed bookable-facility catalog.
type Amenity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Amenities lists the facilities residents may book.
func Amenities() []Amenity {
	return []Amenity{
		{ID: "clubhouse", Name: "Clubhouse"},
		{ID: "pool", Name: "Swimming Pool Area"},
		{ID: "gym", Name: "Gymnasium"},
		{ID: "tennis", Name: "Tennis Court"},
	}
}
