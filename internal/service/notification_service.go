package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/society-service/internal/domain"
	"github.com/spec-kit/society-service/internal/events"
	"github.com/spec-kit/society-service/internal/notify"
	"github.com/spec-kit/society-service/internal/repository"
)

// NotificationService turns domain events into resident-facing messages.
// Delivery failures here are logged, never propagated; the mandatory
// closure-code delivery happens inline in the ticket service instead.
type NotificationService struct {
	dispatcher events.Dispatcher
	sender     notify.Sender
	residents  repository.ResidentRepository
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, sender notify.Sender, residents repository.ResidentRepository, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		sender:     sender,
		residents:  residents,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventBookingStatusChanged, n.handleBookingStatusChanged)
	n.dispatcher.Subscribe(events.EventGuestPassDecided, n.handleGuestPassDecided)
	n.dispatcher.Subscribe(events.EventTicketClosed, n.handleTicketClosed)
	n.dispatcher.Subscribe(events.EventDueRecorded, n.handleDueRecorded)
}

func (n *NotificationService) handleBookingStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.BookingStatusChangedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("BookingStatusChanged",
		zap.String("booking_id", event.SubjectID),
		zap.String("new_status", string(payload.NewStatus)))

	if payload.NewStatus == domain.BookingStatusApproved || payload.NewStatus == domain.BookingStatusRejected {
		n.notifyResident(ctx, event, payload.ResidentID, fmt.Sprintf("Your amenity booking was %s.", payload.NewStatus))
	}
	return nil
}

func (n *NotificationService) handleGuestPassDecided(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.GuestPassDecidedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("GuestPassDecided",
		zap.String("pass_id", event.SubjectID),
		zap.String("status", string(payload.Status)))
	return nil
}

func (n *NotificationService) handleTicketClosed(ctx context.Context, event events.Event) error {
	n.logger.Info("TicketClosed", zap.String("ticket_id", event.SubjectID))
	if event.Actor.ResidentID != nil {
		n.notifyResident(ctx, event, *event.Actor.ResidentID, "Your support ticket has been closed. Thank you for confirming.")
	}
	return nil
}

func (n *NotificationService) handleDueRecorded(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.DueRecordedPayload)
	if !ok {
		return nil
	}
	n.logger.Info("DueRecorded",
		zap.String("due_id", event.SubjectID),
		zap.Float64("amount", payload.Amount))
	return nil
}

// notifyResident sends an informational SMS to the given resident.
func (n *NotificationService) notifyResident(ctx context.Context, event events.Event, residentID, body string) {
	if residentID == "" {
		return
	}
	resident, err := n.residents.GetByID(ctx, residentID)
	if err != nil {
		n.logger.Warn("resident lookup for notification failed",
			zap.String("resident_id", residentID),
			zap.Error(err))
		return
	}
	if resident.Phone == "" {
		return
	}
	msg := notify.Message{
		To:        resident.Phone,
		Body:      body,
		Channel:   notify.ChannelSMS,
		CreatedAt: event.Timestamp,
	}
	if err := n.sender.Send(ctx, msg); err != nil {
		n.logger.Warn("notification delivery failed",
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
	}
}
