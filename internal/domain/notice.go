package domain

import "time"

// Notice is an admin-published announcement on the society board.
type Notice struct {
	ID          string
	Title       string
	Body        string
	CreatedByID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
