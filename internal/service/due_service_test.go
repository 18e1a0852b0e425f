package service

import (
	"context"
	"testing"
	"time"

	"github.com/spec-kit/society-service/internal/domain"
	"github.com/spec-kit/society-service/internal/events"
)

func newDueServiceForTest(t *testing.T) (*DueService, *fakeDueRepo, *domain.Resident) {
	t.Helper()
	dues := newFakeDueRepo()
	residents := newFakeResidentRepo()
	resident := &domain.Resident{Name: "Meera", LoginID: "meera03", Email: "meera@example.com"}
	if err := residents.Create(context.Background(), resident); err != nil {
		t.Fatalf("seed resident: %v", err)
	}
	return NewDueService(dues, residents, events.NewInMemoryDispatcher()), dues, resident
}

func TestCreateDueByLoginID(t *testing.T) {
	svc, _, resident := newDueServiceForTest(t)
	ctx := context.Background()

	due, err := svc.CreateDue(ctx, "adm-1", DueCreateInput{
		ResidentLoginID: resident.LoginID,
		Type:            "Maintenance",
		Amount:          1500,
		DueDate:         time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if due.ResidentID != resident.ID {
		t.Errorf("residentID = %q, want %q", due.ResidentID, resident.ID)
	}
	if due.Status != domain.DueStatusPending {
		t.Errorf("status = %q, want Pending", due.Status)
	}

	_, err = svc.CreateDue(ctx, "adm-1", DueCreateInput{
		ResidentLoginID: "unknown",
		Type:            "Maintenance",
		Amount:          1500,
		DueDate:         time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	if code := domainErrCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("unknown resident code = %q, want NOT_FOUND", code)
	}

	_, err = svc.CreateDue(ctx, "adm-1", DueCreateInput{
		ResidentLoginID: resident.LoginID,
		Type:            "Maintenance",
		Amount:          -5,
		DueDate:         time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	if code := domainErrCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("negative amount code = %q, want VALIDATION_FAILED", code)
	}
}

func TestSetStatusPaidStampsAndIsIdempotent(t *testing.T) {
	svc, _, resident := newDueServiceForTest(t)
	ctx := context.Background()

	due, err := svc.CreateDue(ctx, "adm-1", DueCreateInput{
		ResidentLoginID: resident.LoginID,
		Type:            "Water",
		Amount:          300,
		DueDate:         time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	paid, err := svc.SetStatus(ctx, due.ID, domain.DueStatusPaid)
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if paid.PaidOn == nil {
		t.Fatalf("paidOn not stamped")
	}
	firstPaidOn := *paid.PaidOn

	again, err := svc.SetStatus(ctx, due.ID, domain.DueStatusPaid)
	if err != nil {
		t.Fatalf("mark paid twice: %v", err)
	}
	if again.PaidOn == nil || !again.PaidOn.Equal(firstPaidOn) {
		t.Errorf("repeat mark-paid changed paidOn")
	}

	_, err = svc.SetStatus(ctx, due.ID, domain.DueStatus("Waived"))
	if code := domainErrCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("bad status code = %q, want VALIDATION_FAILED", code)
	}
}

func TestCurrentDueSynthesizesWhenClear(t *testing.T) {
	svc, _, resident := newDueServiceForTest(t)
	ctx := context.Background()

	due, err := svc.CurrentDue(ctx, resident.ID)
	if err != nil {
		t.Fatalf("current due: %v", err)
	}
	if due.Amount != 0 || due.Status != domain.DueStatusPaid {
		t.Errorf("synthetic due = {amount: %v, status: %q}, want zero Paid", due.Amount, due.Status)
	}
}

func TestCurrentDuePicksEarliestOutstanding(t *testing.T) {
	svc, _, resident := newDueServiceForTest(t)
	ctx := context.Background()

	later, err := svc.CreateDue(ctx, "adm-1", DueCreateInput{
		ResidentLoginID: resident.LoginID,
		Type:            "Maintenance",
		Amount:          1500,
		DueDate:         time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	earlier, err := svc.CreateDue(ctx, "adm-1", DueCreateInput{
		ResidentLoginID: resident.LoginID,
		Type:            "Water",
		Amount:          300,
		DueDate:         time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	current, err := svc.CurrentDue(ctx, resident.ID)
	if err != nil {
		t.Fatalf("current due: %v", err)
	}
	if current.ID != earlier.ID {
		t.Fatalf("current = %q, want earliest %q", current.ID, earlier.ID)
	}

	if _, err := svc.SetStatus(ctx, earlier.ID, domain.DueStatusPaid); err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	current, err = svc.CurrentDue(ctx, resident.ID)
	if err != nil {
		t.Fatalf("current due: %v", err)
	}
	if current.ID != later.ID {
		t.Fatalf("current = %q, want %q after earliest paid", current.ID, later.ID)
	}
}
