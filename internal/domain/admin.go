package domain

import "time"

// Admin is the management-staff principal.
type Admin struct {
	ID           string
	AdminID      string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Ref returns the display reference recorded on handled records.
func (a *Admin) Ref() *AdminRef {
	if a == nil {
		return nil
	}
	return &AdminRef{ID: a.ID, AdminID: a.AdminID}
}
