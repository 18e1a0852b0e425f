package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/society-service/internal/domain"
	"github.com/spec-kit/society-service/internal/events"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

func newBookingServiceForTest() (*BookingService, *fakeBookingRepo) {
	repo := newFakeBookingRepo()
	svc := NewBookingService(repo, events.NewInMemoryDispatcher())
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }
	return svc, repo
}

func slot(h, m int) time.Time {
	return time.Date(2026, 3, 2, h, m, 0, 0, time.UTC)
}

func domainErrCode(t *testing.T, err error) string {
	t.Helper()
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError, got %v", err)
	}
	return de.Code
}

func TestCreateBookingOverlap(t *testing.T) {
	svc, _ := newBookingServiceForTest()
	ctx := context.Background()

	first, err := svc.CreateBooking(ctx, "res-1", BookingCreateInput{
		AmenityName: "Gymnasium",
		StartTime:   slot(10, 0),
		EndTime:     slot(11, 0),
	})
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if first.Status != domain.BookingStatusPending {
		t.Fatalf("status = %q, want Pending", first.Status)
	}

	// Straddles the first slot's tail.
	_, err = svc.CreateBooking(ctx, "res-2", BookingCreateInput{
		AmenityName: "Gymnasium",
		StartTime:   slot(10, 30),
		EndTime:     slot(11, 30),
	})
	if code := domainErrCode(t, err); code != "CONFLICT" {
		t.Fatalf("overlapping booking code = %q, want CONFLICT", code)
	}

	// Fully inside the first slot.
	_, err = svc.CreateBooking(ctx, "res-2", BookingCreateInput{
		AmenityName: "Gymnasium",
		StartTime:   slot(10, 15),
		EndTime:     slot(10, 45),
	})
	if code := domainErrCode(t, err); code != "CONFLICT" {
		t.Fatalf("nested booking code = %q, want CONFLICT", code)
	}

	// Adjacent slots share a boundary instant and must not conflict.
	if _, err := svc.CreateBooking(ctx, "res-2", BookingCreateInput{
		AmenityName: "Gymnasium",
		StartTime:   slot(11, 0),
		EndTime:     slot(12, 0),
	}); err != nil {
		t.Fatalf("adjacent booking rejected: %v", err)
	}

	// Same slot, different amenity.
	if _, err := svc.CreateBooking(ctx, "res-2", BookingCreateInput{
		AmenityName: "Clubhouse",
		StartTime:   slot(10, 0),
		EndTime:     slot(11, 0),
	}); err != nil {
		t.Fatalf("different amenity rejected: %v", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc, _ := newBookingServiceForTest()
	ctx := context.Background()

	cases := []struct {
		name  string
		input BookingCreateInput
	}{
		{"missing amenity", BookingCreateInput{StartTime: slot(10, 0), EndTime: slot(11, 0)}},
		{"missing times", BookingCreateInput{AmenityName: "Gymnasium"}},
		{"start after end", BookingCreateInput{AmenityName: "Gymnasium", StartTime: slot(11, 0), EndTime: slot(10, 0)}},
		{"zero-length slot", BookingCreateInput{AmenityName: "Gymnasium", StartTime: slot(10, 0), EndTime: slot(10, 0)}},
		{"past start", BookingCreateInput{
			AmenityName: "Gymnasium",
			StartTime:   time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
			EndTime:     time.Date(2026, 2, 1, 11, 0, 0, 0, time.UTC),
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBooking(ctx, "res-1", tc.input)
			if code := domainErrCode(t, err); code != "VALIDATION_FAILED" {
				t.Fatalf("code = %q, want VALIDATION_FAILED", code)
			}
		})
	}
}

func TestCancelledBookingFreesSlot(t *testing.T) {
	svc, _ := newBookingServiceForTest()
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "res-1", BookingCreateInput{
		AmenityName: "Tennis Court",
		StartTime:   slot(9, 0),
		EndTime:     slot(10, 0),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.CancelBooking(ctx, "res-1", booking.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := svc.CreateBooking(ctx, "res-2", BookingCreateInput{
		AmenityName: "Tennis Court",
		StartTime:   slot(9, 0),
		EndTime:     slot(10, 0),
	}); err != nil {
		t.Fatalf("rebooking freed slot failed: %v", err)
	}
}

func TestCancelBookingOwnership(t *testing.T) {
	svc, _ := newBookingServiceForTest()
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "res-1", BookingCreateInput{
		AmenityName: "Swimming Pool Area",
		StartTime:   slot(14, 0),
		EndTime:     slot(15, 0),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.CancelBooking(ctx, "res-2", booking.ID)
	if code := domainErrCode(t, err); code != "FORBIDDEN" {
		t.Fatalf("code = %q, want FORBIDDEN", code)
	}
}

func TestAdminSetStatus(t *testing.T) {
	svc, repo := newBookingServiceForTest()
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "res-1", BookingCreateInput{
		AmenityName: "Clubhouse",
		StartTime:   slot(18, 0),
		EndTime:     slot(20, 0),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.SetStatus(ctx, "adm-1", booking.ID, domain.BookingStatusApproved)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if updated.Status != domain.BookingStatusApproved {
		t.Fatalf("status = %q, want Approved", updated.Status)
	}

	stored, _ := repo.GetByID(ctx, booking.ID)
	if stored.Status != domain.BookingStatusApproved {
		t.Fatalf("stored status = %q, want Approved", stored.Status)
	}

	_, err = svc.SetStatus(ctx, "adm-1", booking.ID, domain.BookingStatus("Bogus"))
	if code := domainErrCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("code = %q, want VALIDATION_FAILED", code)
	}

	_, err = svc.SetStatus(ctx, "adm-1", "missing", domain.BookingStatusRejected)
	if code := domainErrCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("code = %q, want NOT_FOUND", code)
	}
}

func TestDeleteBooking(t *testing.T) {
	svc, repo := newBookingServiceForTest()
	ctx := context.Background()

	booking, err := svc.CreateBooking(ctx, "res-1", BookingCreateInput{
		AmenityName: "Gymnasium",
		StartTime:   slot(7, 0),
		EndTime:     slot(8, 0),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeleteBooking(ctx, booking.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, booking.ID); err == nil {
		t.Fatal("booking still present after delete")
	}

	err = svc.DeleteBooking(ctx, "missing")
	if code := domainErrCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("code = %q, want NOT_FOUND", code)
	}
}
