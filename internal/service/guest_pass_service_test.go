package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/spec-kit/society-service/internal/domain"
	"github.com/spec-kit/society-service/internal/events"
)

var passCodePattern = regexp.MustCompile(`^GP-[A-Z0-9]{6}$`)

func newGuestPassServiceForTest() *GuestPassService {
	return NewGuestPassService(newFakeGuestPassRepo(), events.NewInMemoryDispatcher())
}

func requestPass(t *testing.T, svc *GuestPassService, residentID string) *domain.GuestPass {
	t.Helper()
	pass, err := svc.RequestPass(context.Background(), residentID, GuestPassCreateInput{
		GuestName: "Uncle Sam",
		VisitDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Reason:    "family visit",
	})
	if err != nil {
		t.Fatalf("request pass: %v", err)
	}
	return pass
}

func TestApproveIssuesCode(t *testing.T) {
	svc := newGuestPassServiceForTest()
	ctx := context.Background()
	pass := requestPass(t, svc, "res-1")

	if pass.Code != nil {
		t.Fatalf("fresh request already has a code")
	}

	approved, err := svc.Approve(ctx, "adm-1", pass.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != domain.GuestPassStatusApproved {
		t.Errorf("status = %q, want Approved", approved.Status)
	}
	if approved.Code == nil || !passCodePattern.MatchString(*approved.Code) {
		t.Errorf("code = %v, want GP-XXXXXX", approved.Code)
	}
	if approved.HandledByID == nil || *approved.HandledByID != "adm-1" {
		t.Errorf("handledBy = %v, want adm-1", approved.HandledByID)
	}

	// A decided pass cannot be decided again.
	_, err = svc.Reject(ctx, "adm-1", pass.ID)
	if code := domainErrCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("re-decide code = %q, want VALIDATION_FAILED", code)
	}
}

func TestRejectIssuesNoCode(t *testing.T) {
	svc := newGuestPassServiceForTest()
	pass := requestPass(t, svc, "res-1")

	rejected, err := svc.Reject(context.Background(), "adm-1", pass.ID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != domain.GuestPassStatusRejected {
		t.Errorf("status = %q, want Rejected", rejected.Status)
	}
	if rejected.Code != nil {
		t.Errorf("rejected pass carries a code")
	}
}

func TestCancelOwnPendingOnly(t *testing.T) {
	svc := newGuestPassServiceForTest()
	ctx := context.Background()
	pass := requestPass(t, svc, "res-1")

	_, err := svc.Cancel(ctx, "res-2", pass.ID)
	if code := domainErrCode(t, err); code != "FORBIDDEN" {
		t.Fatalf("non-owner code = %q, want FORBIDDEN", code)
	}

	cancelled, err := svc.Cancel(ctx, "res-1", pass.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != domain.GuestPassStatusCancelled {
		t.Errorf("status = %q, want Cancelled", cancelled.Status)
	}

	_, err = svc.Cancel(ctx, "res-1", pass.ID)
	if code := domainErrCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("cancel decided code = %q, want VALIDATION_FAILED", code)
	}
}

func TestRequestPassValidation(t *testing.T) {
	svc := newGuestPassServiceForTest()

	_, err := svc.RequestPass(context.Background(), "res-1", GuestPassCreateInput{
		VisitDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	if code := domainErrCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("missing guest name code = %q, want VALIDATION_FAILED", code)
	}
}
