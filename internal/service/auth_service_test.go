package service

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/society-service/internal/auth"
)

func newAuthServiceForTest() (*AuthService, *fakeResidentRepo, *fakeAdminRepo) {
	residents := newFakeResidentRepo()
	admins := newFakeAdminRepo()
	tokens := auth.NewTokenManager("test-secret", 60)
	svc := NewAuthService(residents, admins, tokens, bcrypt.MinCost, zap.NewNop())
	return svc, residents, admins
}

func TestRegisterResident(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()
	ctx := context.Background()

	resident, session, err := svc.RegisterResident(ctx, SignupInput{
		Name:     "Asha",
		Email:    "Asha@Example.com",
		LoginID:  "asha01",
		Phone:    "+911234567890",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resident.Email != "asha@example.com" {
		t.Errorf("email = %q, want lowercased", resident.Email)
	}
	if session.Token == "" {
		t.Errorf("no token issued")
	}

	// Duplicate login id is a conflict.
	_, _, err = svc.RegisterResident(ctx, SignupInput{
		Name:     "Other",
		Email:    "other@example.com",
		LoginID:  "asha01",
		Password: "secret2",
	})
	if code := domainErrCode(t, err); code != "CONFLICT" {
		t.Fatalf("duplicate code = %q, want CONFLICT", code)
	}

	// Short password.
	_, _, err = svc.RegisterResident(ctx, SignupInput{
		Name:     "Tiny",
		Email:    "tiny@example.com",
		LoginID:  "tiny01",
		Password: "abc",
	})
	if code := domainErrCode(t, err); code != "VALIDATION_FAILED" {
		t.Fatalf("short password code = %q, want VALIDATION_FAILED", code)
	}
}

func TestLoginResident(t *testing.T) {
	svc, _, _ := newAuthServiceForTest()
	ctx := context.Background()

	if _, _, err := svc.RegisterResident(ctx, SignupInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		LoginID:  "asha01",
		Password: "secret1",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	resident, session, err := svc.LoginResident(ctx, "asha01", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resident.LoginID != "asha01" || session.Token == "" {
		t.Errorf("login returned resident %q, token %q", resident.LoginID, session.Token)
	}

	_, _, err = svc.LoginResident(ctx, "asha01", "wrong")
	if code := domainErrCode(t, err); code != "UNAUTHORIZED" {
		t.Fatalf("bad password code = %q, want UNAUTHORIZED", code)
	}

	// Unknown login id looks identical to a bad password.
	_, _, err = svc.LoginResident(ctx, "ghost", "secret1")
	if code := domainErrCode(t, err); code != "UNAUTHORIZED" {
		t.Fatalf("unknown login code = %q, want UNAUTHORIZED", code)
	}
}

func TestEnsureDefaultAdmin(t *testing.T) {
	svc, _, admins := newAuthServiceForTest()
	ctx := context.Background()

	if err := svc.EnsureDefaultAdmin(ctx, "admin", "Admin@123"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if len(admins.admins) != 1 {
		t.Fatalf("admins = %d, want 1", len(admins.admins))
	}

	// Second call must not duplicate.
	if err := svc.EnsureDefaultAdmin(ctx, "admin", "Admin@123"); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	if len(admins.admins) != 1 {
		t.Fatalf("admins = %d after reseed, want 1", len(admins.admins))
	}

	admin, session, err := svc.LoginAdmin(ctx, "admin", "Admin@123")
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if admin.AdminID != "admin" || session.Token == "" {
		t.Errorf("admin login returned %q, token %q", admin.AdminID, session.Token)
	}
}
