package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/society-service/internal/domain"
	"github.com/spec-kit/society-service/internal/repository"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// PollService manages community ballots.
type PollService struct {
	polls repository.PollRepository
}

// NewPollService wires the poll service.
func NewPollService(polls repository.PollRepository) *PollService {
	return &PollService{polls: polls}
}

// CreatePoll opens a new ballot. At least two non-empty options are required.
func (s *PollService) CreatePoll(ctx context.Context, adminID, question string, options []string) (*domain.Poll, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, apperrors.NewValidationError("question is required", nil)
	}

	cleaned := make([]domain.PollOption, 0, len(options))
	for _, opt := range options {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		cleaned = append(cleaned, domain.PollOption{Position: len(cleaned), Text: opt})
	}
	if len(cleaned) < 2 {
		return nil, apperrors.NewValidationError("at least two options are required", nil)
	}

	poll := &domain.Poll{
		Question:    question,
		Options:     cleaned,
		CreatedByID: adminID,
	}
	if err := s.polls.Create(ctx, poll); err != nil {
		return nil, apperrors.MapError(err)
	}
	return poll, nil
}

// ListPolls returns every ballot with running counts.
func (s *PollService) ListPolls(ctx context.Context) ([]domain.Poll, error) {
	polls, err := s.polls.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return polls, nil
}

// GetPoll returns one ballot with its ordered options.
func (s *PollService) GetPoll(ctx context.Context, pollID string) (*domain.Poll, error) {
	poll, err := s.polls.GetByID(ctx, pollID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("poll", map[string]any{"poll_id": pollID})
		}
		return nil, apperrors.MapError(err)
	}
	return poll, nil
}

// Vote adds one vote to the option at the given position.
func (s *PollService) Vote(ctx context.Context, pollID string, position int) (*domain.Poll, error) {
	poll, err := s.polls.GetByID(ctx, pollID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("poll", map[string]any{"poll_id": pollID})
		}
		return nil, apperrors.MapError(err)
	}
	if position < 0 || position >= len(poll.Options) {
		return nil, apperrors.NewValidationError("option index out of range", map[string]any{"optionIndex": position})
	}

	// TODO: votes are not deduplicated per resident; repeat votes count.
	if err := s.polls.IncrementVote(ctx, pollID, position); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("poll option", map[string]any{"poll_id": pollID, "optionIndex": position})
		}
		return nil, apperrors.MapError(err)
	}

	updated, err := s.polls.GetByID(ctx, pollID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return updated, nil
}

// DeletePoll removes a ballot and its options.
func (s *PollService) DeletePoll(ctx context.Context, pollID string) error {
	if err := s.polls.Delete(ctx, pollID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("poll", map[string]any{"poll_id": pollID})
		}
		return apperrors.MapError(err)
	}
	return nil
}
