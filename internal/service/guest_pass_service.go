package service

import (
	"context"
	"crypto/rand"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/society-service/internal/domain"
	"github.com/spec-kit/society-service/internal/events"
	"github.com/spec-kit/society-service/internal/repository"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

const passCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GuestPassService coordinates visitor pass requests and decisions.
type GuestPassService struct {
	passes     repository.GuestPassRepository
	dispatcher events.Dispatcher
	now        func() time.Time
}

// NewGuestPassService wires the guest pass service.
func NewGuestPassService(passes repository.GuestPassRepository, dispatcher events.Dispatcher) *GuestPassService {
	return &GuestPassService{passes: passes, dispatcher: dispatcher, now: time.Now}
}

// GuestPassCreateInput describes a resident's visitor request.
type GuestPassCreateInput struct {
	GuestName string
	VisitDate time.Time
	Reason    string
}

// RequestPass records a Pending visitor authorization.
func (s *GuestPassService) RequestPass(ctx context.Context, residentID string, input GuestPassCreateInput) (*domain.GuestPass, error) {
	if input.GuestName == "" {
		return nil, apperrors.NewValidationError("guestName is required", nil)
	}
	if input.VisitDate.IsZero() {
		return nil, apperrors.NewValidationError("visitDate is required", nil)
	}

	pass := &domain.GuestPass{
		ResidentID: residentID,
		GuestName:  input.GuestName,
		VisitDate:  input.VisitDate,
		Reason:     input.Reason,
		Status:     domain.GuestPassStatusPending,
	}
	if err := s.passes.Create(ctx, pass); err != nil {
		return nil, apperrors.MapError(err)
	}
	return pass, nil
}

// ListMyPasses returns the resident's visitor requests.
func (s *GuestPassService) ListMyPasses(ctx context.Context, residentID string) ([]domain.GuestPass, error) {
	passes, err := s.passes.ListByResident(ctx, residentID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return passes, nil
}

// ListAllPasses returns every request for the admin queue.
func (s *GuestPassService) ListAllPasses(ctx context.Context) ([]domain.GuestPass, error) {
	passes, err := s.passes.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return passes, nil
}

// Approve issues an entry code for a Pending request.
func (s *GuestPassService) Approve(ctx context.Context, adminID, passID string) (*domain.GuestPass, error) {
	pass, err := s.pendingPass(ctx, passID)
	if err != nil {
		return nil, err
	}

	code, err := generatePassCode()
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	pass.Status = domain.GuestPassStatusApproved
	pass.Code = &code
	pass.HandledByID = &adminID

	if err := s.passes.Update(ctx, pass); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishDecision(ctx, adminID, pass)
	return pass, nil
}

// Reject declines a Pending request. No code is issued.
func (s *GuestPassService) Reject(ctx context.Context, adminID, passID string) (*domain.GuestPass, error) {
	pass, err := s.pendingPass(ctx, passID)
	if err != nil {
		return nil, err
	}

	pass.Status = domain.GuestPassStatusRejected
	pass.HandledByID = &adminID

	if err := s.passes.Update(ctx, pass); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishDecision(ctx, adminID, pass)
	return pass, nil
}

// Cancel lets the owner withdraw a request that is still Pending.
func (s *GuestPassService) Cancel(ctx context.Context, residentID, passID string) (*domain.GuestPass, error) {
	pass, err := s.passes.GetByID(ctx, passID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("guest pass", map[string]any{"pass_id": passID})
		}
		return nil, apperrors.MapError(err)
	}
	if pass.ResidentID != residentID {
		return nil, apperrors.NewForbidden("access denied")
	}
	if pass.Status != domain.GuestPassStatusPending {
		return nil, apperrors.NewValidationError("only pending passes can be cancelled", map[string]any{"status": string(pass.Status)})
	}

	pass.Status = domain.GuestPassStatusCancelled
	if err := s.passes.Update(ctx, pass); err != nil {
		return nil, apperrors.MapError(err)
	}
	return pass, nil
}

func (s *GuestPassService) pendingPass(ctx context.Context, passID string) (*domain.GuestPass, error) {
	pass, err := s.passes.GetByID(ctx, passID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("guest pass", map[string]any{"pass_id": passID})
		}
		return nil, apperrors.MapError(err)
	}
	if pass.Status != domain.GuestPassStatusPending {
		return nil, apperrors.NewValidationError("pass already decided", map[string]any{"status": string(pass.Status)})
	}
	return pass, nil
}

func (s *GuestPassService) publishDecision(ctx context.Context, adminID string, pass *domain.GuestPass) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      events.EventGuestPassDecided,
		SubjectID: pass.ID,
		Actor:     events.AdminActor(adminID),
		Timestamp: s.now(),
		Payload: events.GuestPassDecidedPayload{
			Status:    pass.Status,
			GuestName: pass.GuestName,
			HasCode:   pass.Code != nil,
		},
	})
}

// generatePassCode builds an entry code of the form GP-XXXXXX.
func generatePassCode() (string, error) {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = passCodeAlphabet[int(buf[i])%len(passCodeAlphabet)]
	}
	return "GP-" + string(buf), nil
}
