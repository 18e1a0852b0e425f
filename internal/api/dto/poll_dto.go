package dto

import (
	"time"

	"github.com/spec-kit/society-service/internal/domain"
)

// CreatePollRequest payload.
type CreatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// VoteRequest carries zero-based option index.
type VoteRequest struct {
	OptionIndex int `json:"optionIndex"`
}

// PollResponse is the ballot shape with running counts.
type PollResponse struct {
	ID        string              `json:"id"`
	Question  string              `json:"question"`
	Options   []domain.PollOption `json:"options"`
	CreatedAt time.Time           `json:"createdAt"`
}

// NewPollResponse maps a poll.
func NewPollResponse(p *domain.Poll) PollResponse {
	return PollResponse{
		ID:        p.ID,
		Question:  p.Question,
		Options:   p.Options,
		CreatedAt: p.CreatedAt,
	}
}

// NewPollListResponse maps a slice of polls.
func NewPollListResponse(polls []domain.Poll) []PollResponse {
	out := make([]PollResponse, 0, len(polls))
	for i := range polls {
		out = append(out, NewPollResponse(&polls[i]))
	}
	return out
}
