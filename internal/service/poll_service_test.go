package service

import (
	"context"
	"testing"
)

func TestCreatePollRequiresTwoOptions(t *testing.T) {
	svc := NewPollService(newFakePollRepo())
	ctx := context.Background()

	_, err := svc.CreatePoll(ctx, "adm-1", "Paint color?", []string{"Blue", "  ", ""})
	if code := domainErrCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("single option code = %q, want VALIDATION_FAILED", code)
	}

	poll, err := svc.CreatePoll(ctx, "adm-1", "Paint color?", []string{"Blue", "Green"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(poll.Options) != 2 {
		t.Fatalf("options = %d, want 2", len(poll.Options))
	}
	if poll.Options[0].Position != 0 || poll.Options[1].Position != 1 {
		t.Errorf("option positions not sequential: %+v", poll.Options)
	}
}

func TestVoteBounds(t *testing.T) {
	svc := NewPollService(newFakePollRepo())
	ctx := context.Background()

	poll, err := svc.CreatePoll(ctx, "adm-1", "New gym hours?", []string{"6-10", "7-11"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Vote(ctx, poll.ID, 1)
	if err != nil {
		t.Fatalf("vote: %v", err)
	}
	if updated.Options[1].Votes != 1 {
		t.Errorf("votes = %d, want 1", updated.Options[1].Votes)
	}

	_, err = svc.Vote(ctx, poll.ID, 2)
	if code := domainErrCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("out-of-range code = %q, want VALIDATION_FAILED", code)
	}
	_, err = svc.Vote(ctx, poll.ID, -1)
	if code := domainErrCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("negative index code = %q, want VALIDATION_FAILED", code)
	}
	_, err = svc.Vote(ctx, "missing", 0)
	if code := domainErrCode(t, err); code != "NOT_FOUND" {
		t.Fatalf("missing poll code = %q, want NOT_FOUND", code)
	}
}

func TestDeletePoll(t *testing.T) {
	svc := NewPollService(newFakePollRepo())
	ctx := context.Background()

	poll, err := svc.CreatePoll(ctx, "adm-1", "Festival budget?", []string{"50k", "75k"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.DeletePoll(ctx, poll.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.DeletePoll(ctx, poll.ID); err == nil {
		t.Fatalf("second delete succeeded, want NOT_FOUND")
	}
}
