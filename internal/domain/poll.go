package domain

import "time"

// PollOption is a single choice with its running vote count.
type PollOption struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
	Text     string `json:"text"`
	Votes    int64  `json:"votes"`
}

// Poll is an admin-created ballot. Options are fixed after creation.
type Poll struct {
	ID          string
	Question    string
	Options     []PollOption
	CreatedByID string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	CreatedBy *AdminRef
}
