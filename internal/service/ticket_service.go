package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/society-service/internal/domain"
	"github.com/spec-kit/society-service/internal/events"
	"github.com/spec-kit/society-service/internal/notify"
	"github.com/spec-kit/society-service/internal/repository"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

const defaultSLAHours = 72

// slaHoursByPriority maps urgency to resolution windows.
var slaHoursByPriority = map[domain.TicketPriority]int{
	domain.TicketPriorityP1: 4,
	domain.TicketPriorityP2: 24,
	domain.TicketPriorityP3: 72,
	domain.TicketPriorityP4: 168,
}

// TicketService coordinates support ticket workflows, including the
// code-confirmed closure handshake.
type TicketService struct {
	tickets          repository.TicketRepository
	residents        repository.ResidentRepository
	sender           notify.Sender
	dispatcher       events.Dispatcher
	otpTTL           time.Duration
	deliveryRequired bool
	logger           *zap.Logger
	now              func() time.Time
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	Tickets          repository.TicketRepository
	Residents        repository.ResidentRepository
	Sender           notify.Sender
	Dispatcher       events.Dispatcher
	OTPTTL           time.Duration
	DeliveryRequired bool
	Logger           *zap.Logger
}

// NewTicketService wires the ticket service.
func NewTicketService(deps TicketDependencies) *TicketService {
	ttl := deps.OTPTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &TicketService{
		tickets:          deps.Tickets,
		residents:        deps.Residents,
		sender:           deps.Sender,
		dispatcher:       deps.Dispatcher,
		otpTTL:           ttl,
		deliveryRequired: deps.DeliveryRequired,
		logger:           deps.Logger,
		now:              time.Now,
	}
}

// TicketCreateInput describes a resident's support request.
type TicketCreateInput struct {
	Title       string
	Description string
	Category    domain.TicketCategory
	Priority    domain.TicketPriority
}

// CreateTicket opens a support ticket with category/priority defaults and
// an SLA window derived from priority.
func (s *TicketService) CreateTicket(ctx context.Context, residentID string, input TicketCreateInput) (*domain.Ticket, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.Title == "" || input.Description == "" {
		return nil, apperrors.NewValidationError("title and description are required", nil)
	}

	if input.Category == "" {
		input.Category = domain.TicketCategoryMaintenance
	} else if !domain.ValidTicketCategory(input.Category) {
		return nil, apperrors.NewValidationError("invalid ticket category", map[string]any{"category": string(input.Category)})
	}
	if input.Priority == "" {
		input.Priority = domain.TicketPriorityP3
	} else if !domain.ValidTicketPriority(input.Priority) {
		return nil, apperrors.NewValidationError("invalid ticket priority", map[string]any{"priority": string(input.Priority)})
	}

	slaHours, ok := slaHoursByPriority[input.Priority]
	if !ok {
		slaHours = defaultSLAHours
	}

	ticket := &domain.Ticket{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    input.Priority,
		Status:      domain.TicketStatusOpen,
		ResidentID:  residentID,
		SLAHours:    slaHours,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// ListMyTickets returns the resident's tickets.
func (s *TicketService) ListMyTickets(ctx context.Context, residentID string) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListByResident(ctx, residentID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// ListAllTickets returns every ticket for the admin queue.
func (s *TicketService) ListAllTickets(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// Overview aggregates counts for the admin dashboard.
func (s *TicketService) Overview(ctx context.Context) (*domain.TicketOverview, error) {
	overview, err := s.tickets.Overview(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return overview, nil
}

// Assign routes a ticket to a named assignee and moves it to Assigned.
func (s *TicketService) Assign(ctx context.Context, ticketID, assignee string) (*domain.Ticket, error) {
	assignee = strings.TrimSpace(assignee)
	if assignee == "" {
		return nil, apperrors.NewValidationError("assignee is required", nil)
	}

	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == domain.TicketStatusClosed {
		return nil, apperrors.NewValidationError("closed tickets cannot be assigned", nil)
	}

	ticket.AssignedTo = &assignee
	if ticket.Status == domain.TicketStatusOpen {
		ticket.Status = domain.TicketStatusAssigned
	}
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// SetStatus moves a ticket between working states. The closure handshake
// states (Pending Closure, Closed) are not reachable through this path.
func (s *TicketService) SetStatus(ctx context.Context, ticketID string, status domain.TicketStatus) (*domain.Ticket, error) {
	switch status {
	case domain.TicketStatusOpen, domain.TicketStatusAssigned, domain.TicketStatusInProgress, domain.TicketStatusResolved:
	default:
		return nil, apperrors.NewValidationError("invalid ticket status for direct update", map[string]any{"status": string(status)})
	}

	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == domain.TicketStatusClosed {
		return nil, apperrors.NewValidationError("ticket already closed", nil)
	}

	ticket.Status = status
	if status == domain.TicketStatusResolved {
		now := s.now()
		ticket.ResolvedAt = &now
	}
	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

// RequestClose starts the closure handshake: generates a 6-digit code,
// moves the ticket to Pending Closure and delivers the code to the owner's
// phone. When delivery is mandatory and fails, the transition rolls back.
func (s *TicketService) RequestClose(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	switch ticket.Status {
	case domain.TicketStatusOpen, domain.TicketStatusAssigned, domain.TicketStatusInProgress:
	default:
		return nil, apperrors.NewValidationError("ticket cannot enter closure from its current state", map[string]any{"status": string(ticket.Status)})
	}

	resident, err := s.residents.GetByID(ctx, ticket.ResidentID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	code, err := generateOTP()
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	expiresAt := s.now().Add(s.otpTTL)

	prevStatus := ticket.Status
	ticket.Status = domain.TicketStatusPendingClosure
	ticket.OTP = &code
	ticket.OTPExpiresAt = &expiresAt
	ticket.OTPVerified = false

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	msg := notify.Message{
		To:        resident.Phone,
		Body:      fmt.Sprintf("Your ticket closure code is %s. It expires in %d minutes.", code, int(s.otpTTL.Minutes())),
		Channel:   notify.ChannelSMS,
		CreatedAt: s.now(),
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		s.logger.Error("closure code delivery failed",
			zap.String("ticket_id", ticket.ID),
			zap.Error(err))
		if s.deliveryRequired {
			ticket.Status = prevStatus
			ticket.OTP = nil
			ticket.OTPExpiresAt = nil
			if rbErr := s.tickets.Update(ctx, ticket); rbErr != nil {
				s.logger.Error("closure rollback failed", zap.String("ticket_id", ticket.ID), zap.Error(rbErr))
			}
			return nil, apperrors.NewUnavailable("notification", err)
		}
	}

	s.publish(ctx, events.Event{
		Type:      events.EventTicketCloseRequested,
		SubjectID: ticket.ID,
		Actor:     events.ResidentActor(ticket.ResidentID),
		Payload: events.TicketCloseRequestedPayload{
			Title:        ticket.Title,
			OTPExpiresAt: expiresAt,
		},
	})
	return ticket, nil
}

// VerifyCloseOTP completes the handshake. Only the ticket owner may confirm;
// the code must match and be inside its validity window.
func (s *TicketService) VerifyCloseOTP(ctx context.Context, residentID, ticketID, code string) (*domain.Ticket, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.ResidentID != residentID {
		return nil, apperrors.NewForbidden("access denied")
	}
	if ticket.Status != domain.TicketStatusPendingClosure || ticket.OTP == nil || ticket.OTPExpiresAt == nil {
		return nil, apperrors.NewValidationError("no closure pending for this ticket", nil)
	}
	if s.now().After(*ticket.OTPExpiresAt) {
		return nil, apperrors.NewValidationError("closure code expired", nil)
	}
	// TODO: no attempt counter; a client can retry codes until expiry.
	if strings.TrimSpace(code) != *ticket.OTP {
		return nil, apperrors.NewValidationError("incorrect closure code", nil)
	}

	now := s.now()
	ticket.Status = domain.TicketStatusClosed
	ticket.ClosedAt = &now
	ticket.OTP = nil
	ticket.OTPExpiresAt = nil
	ticket.OTPVerified = true

	if err := s.tickets.Update(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:      events.EventTicketClosed,
		SubjectID: ticket.ID,
		Actor:     events.ResidentActor(residentID),
		Payload:   events.TicketClosedPayload{ClosedAt: now},
	})
	return ticket, nil
}

// SLAAlerts lists unclosed tickets past their resolution window.
func (s *TicketService) SLAAlerts(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListSLABreached(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// GetMyTicket returns a single ticket to its owner.
func (s *TicketService) GetMyTicket(ctx context.Context, residentID, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.getTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.ResidentID != residentID {
		return nil, apperrors.NewForbidden("access denied")
	}
	return ticket, nil
}

func (s *TicketService) getTicket(ctx context.Context, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.Timestamp = s.now()
	_ = s.dispatcher.Publish(ctx, event)
}

// generateOTP returns a zero-padded 6-digit numeric code.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
