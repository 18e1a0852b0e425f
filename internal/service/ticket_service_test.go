package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/society-service/internal/domain"
	"github.com/spec-kit/society-service/internal/events"
)

func newTicketServiceForTest(sender *captureSender) (*TicketService, *fakeTicketRepo, *fakeResidentRepo) {
	tickets := newFakeTicketRepo()
	residents := newFakeResidentRepo()
	svc := NewTicketService(TicketDependencies{
		Tickets:          tickets,
		Residents:        residents,
		Sender:           sender,
		Dispatcher:       events.NewInMemoryDispatcher(),
		OTPTTL:           10 * time.Minute,
		DeliveryRequired: true,
		Logger:           zap.NewNop(),
	})
	return svc, tickets, residents
}

func seedResident(t *testing.T, residents *fakeResidentRepo) *domain.Resident {
	t.Helper()
	r := &domain.Resident{Name: "Asha", LoginID: "asha01", Email: "asha@example.com", Phone: "+911234567890"}
	if err := residents.Create(context.Background(), r); err != nil {
		t.Fatalf("seed resident: %v", err)
	}
	return r
}

func TestCreateTicketDefaults(t *testing.T) {
	svc, _, residents := newTicketServiceForTest(&captureSender{})
	resident := seedResident(t, residents)

	ticket, err := svc.CreateTicket(context.Background(), resident.ID, TicketCreateInput{
		Title:       "Leaking pipe",
		Description: "Kitchen pipe leaks under the sink",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ticket.Category != domain.TicketCategoryMaintenance {
		t.Errorf("category = %q, want Maintenance", ticket.Category)
	}
	if ticket.Priority != domain.TicketPriorityP3 {
		t.Errorf("priority = %q, want P3", ticket.Priority)
	}
	if ticket.SLAHours != 72 {
		t.Errorf("slaHours = %d, want 72", ticket.SLAHours)
	}
	if ticket.Status != domain.TicketStatusOpen {
		t.Errorf("status = %q, want Open", ticket.Status)
	}
}

func TestCreateTicketPrioritySLA(t *testing.T) {
	svc, _, residents := newTicketServiceForTest(&captureSender{})
	resident := seedResident(t, residents)

	ticket, err := svc.CreateTicket(context.Background(), resident.ID, TicketCreateInput{
		Title:       "Sparking socket",
		Description: "Socket in hallway sparks",
		Category:    domain.TicketCategoryElectrical,
		Priority:    domain.TicketPriorityP1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if ticket.SLAHours != 4 {
		t.Errorf("slaHours = %d, want 4 for P1", ticket.SLAHours)
	}
}

func TestRequestCloseDeliversOTP(t *testing.T) {
	sender := &captureSender{}
	svc, repo, residents := newTicketServiceForTest(sender)
	resident := seedResident(t, residents)
	ctx := context.Background()

	ticket, err := svc.CreateTicket(ctx, resident.ID, TicketCreateInput{Title: "Noise", Description: "Late night noise"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.RequestClose(ctx, ticket.ID)
	if err != nil {
		t.Fatalf("request close: %v", err)
	}
	if updated.Status != domain.TicketStatusPendingClosure {
		t.Fatalf("status = %q, want Pending Closure", updated.Status)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d messages, want 1", len(sender.sent))
	}
	if sender.sent[0].To != resident.Phone {
		t.Errorf("message to %q, want %q", sender.sent[0].To, resident.Phone)
	}

	stored, _ := repo.GetByID(ctx, ticket.ID)
	if stored.OTP == nil || len(*stored.OTP) != 6 {
		t.Fatalf("stored OTP = %v, want 6 digits", stored.OTP)
	}
	if !strings.Contains(sender.sent[0].Body, *stored.OTP) {
		t.Errorf("message body does not carry the code")
	}
}

func TestRequestCloseRollsBackOnDeliveryFailure(t *testing.T) {
	sender := &captureSender{failure: errDeliveryDown}
	svc, repo, residents := newTicketServiceForTest(sender)
	resident := seedResident(t, residents)
	ctx := context.Background()

	ticket, err := svc.CreateTicket(ctx, resident.ID, TicketCreateInput{Title: "Noise", Description: "Late night noise"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.RequestClose(ctx, ticket.ID)
	if code := domainErrCode(t, err); code != "UNAVAILABLE" {
		t.Fatalf("code = %q, want UNAVAILABLE", code)
	}

	stored, _ := repo.GetByID(ctx, ticket.ID)
	if stored.Status != domain.TicketStatusOpen {
		t.Errorf("status = %q, want Open after rollback", stored.Status)
	}
	if stored.OTP != nil {
		t.Errorf("OTP still stored after rollback")
	}
}

func TestRequestClosePrecondition(t *testing.T) {
	svc, repo, residents := newTicketServiceForTest(&captureSender{})
	resident := seedResident(t, residents)
	ctx := context.Background()

	ticket, err := svc.CreateTicket(ctx, resident.ID, TicketCreateInput{Title: "Noise", Description: "Late night noise"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	stored, _ := repo.GetByID(ctx, ticket.ID)
	stored.Status = domain.TicketStatusResolved
	if err := repo.Update(ctx, stored); err != nil {
		t.Fatalf("update: %v", err)
	}

	_, err = svc.RequestClose(ctx, ticket.ID)
	if code := domainErrCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("code = %q, want VALIDATION_FAILED", code)
	}
}

func TestVerifyCloseOTP(t *testing.T) {
	sender := &captureSender{}
	svc, repo, residents := newTicketServiceForTest(sender)
	resident := seedResident(t, residents)
	other := &domain.Resident{Name: "Ravi", LoginID: "ravi02", Email: "ravi@example.com"}
	_ = residents.Create(context.Background(), other)
	ctx := context.Background()

	ticket, err := svc.CreateTicket(ctx, resident.ID, TicketCreateInput{Title: "Lift stuck", Description: "Lift stuck at floor 3"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.RequestClose(ctx, ticket.ID); err != nil {
		t.Fatalf("request close: %v", err)
	}
	stored, _ := repo.GetByID(ctx, ticket.ID)
	code := *stored.OTP

	// Only the owner may confirm.
	_, err = svc.VerifyCloseOTP(ctx, other.ID, ticket.ID, code)
	if got := domainErrCode(t, err); got != "FORBIDDEN" {
		t.Fatalf("non-owner code = %q, want FORBIDDEN", got)
	}

	// Wrong code.
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	_, err = svc.VerifyCloseOTP(ctx, resident.ID, ticket.ID, wrong)
	if got := domainErrCode(t, err); got != "VALIDATION_FAILED" {
		t.Fatalf("wrong code = %q, want VALIDATION_FAILED", got)
	}

	// Correct code closes the ticket and clears the secret.
	closed, err := svc.VerifyCloseOTP(ctx, resident.ID, ticket.ID, code)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if closed.Status != domain.TicketStatusClosed {
		t.Errorf("status = %q, want Closed", closed.Status)
	}
	if closed.ClosedAt == nil {
		t.Errorf("closedAt not stamped")
	}
	if closed.OTP != nil || closed.OTPExpiresAt != nil {
		t.Errorf("OTP fields not cleared")
	}
	if !closed.OTPVerified {
		t.Errorf("otpVerified = false, want true")
	}

	// Second confirmation has nothing pending.
	_, err = svc.VerifyCloseOTP(ctx, resident.ID, ticket.ID, code)
	if got := domainErrCode(t, err); got != "VALIDATION_FAILED" {
		t.Fatalf("replay code = %q, want VALIDATION_FAILED", got)
	}
}

func TestVerifyCloseOTPExpiry(t *testing.T) {
	sender := &captureSender{}
	svc, repo, residents := newTicketServiceForTest(sender)
	resident := seedResident(t, residents)
	ctx := context.Background()

	ticket, err := svc.CreateTicket(ctx, resident.ID, TicketCreateInput{Title: "Gate light", Description: "Gate light flickers"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.RequestClose(ctx, ticket.ID); err != nil {
		t.Fatalf("request close: %v", err)
	}
	stored, _ := repo.GetByID(ctx, ticket.ID)
	code := *stored.OTP

	svc.now = func() time.Time { return time.Now().Add(11 * time.Minute) }

	_, err = svc.VerifyCloseOTP(ctx, resident.ID, ticket.ID, code)
	if got := domainErrCode(t, err); got != "VALIDATION_FAILED" {
		t.Fatalf("expired code = %q, want VALIDATION_FAILED", got)
	}
}

func TestAssignMovesOpenToAssigned(t *testing.T) {
	svc, _, residents := newTicketServiceForTest(&captureSender{})
	resident := seedResident(t, residents)
	ctx := context.Background()

	ticket, err := svc.CreateTicket(ctx, resident.ID, TicketCreateInput{Title: "Door", Description: "Main door hinge broken"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	assigned, err := svc.Assign(ctx, ticket.ID, "electrician-team")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if assigned.Status != domain.TicketStatusAssigned {
		t.Errorf("status = %q, want Assigned", assigned.Status)
	}
	if assigned.AssignedTo == nil || *assigned.AssignedTo != "electrician-team" {
		t.Errorf("assignedTo = %v, want electrician-team", assigned.AssignedTo)
	}
}

func TestGetMyTicketOwnership(t *testing.T) {
	svc, _, residents := newTicketServiceForTest(&captureSender{})
	resident := seedResident(t, residents)
	ctx := context.Background()

	ticket, err := svc.CreateTicket(ctx, resident.ID, TicketCreateInput{Title: "Lift", Description: "Lift stuck on floor 3"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetMyTicket(ctx, resident.ID, ticket.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != ticket.ID {
		t.Errorf("id = %q, want %q", got.ID, ticket.ID)
	}

	_, err = svc.GetMyTicket(ctx, "res-other", ticket.ID)
	if code := domainErrCode(t, err); code != "FORBIDDEN" {
		t.Fatalf("code = %q, want FORBIDDEN", code)
	}

	_, err = svc.GetMyTicket(ctx, resident.ID, "missing")
	if code := domainErrCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("code = %q, want NOT_FOUND", code)
	}
}
