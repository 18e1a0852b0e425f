package domain

import "time"

// Resident is the domain model for society residents.
type Resident struct {
	ID           string
	Name         string
	Email        string
	LoginID      string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Ref returns the display reference embedded in owned records.
func (r *Resident) Ref() *ResidentRef {
	if r == nil {
		return nil
	}
	return &ResidentRef{ID: r.ID, Name: r.Name, LoginID: r.LoginID}
}
