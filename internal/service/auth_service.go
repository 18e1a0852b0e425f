package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/society-service/internal/auth"
	"github.com/spec-kit/society-service/internal/domain"
	"github.com/spec-kit/society-service/internal/repository"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// Session is an issued token with its expiry.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService handles resident signup and resident/admin login.
type AuthService struct {
	residents  repository.ResidentRepository
	admins     repository.AdminRepository
	tokens     *auth.TokenManager
	bcryptCost int
	logger     *zap.Logger
}

// NewAuthService wires the auth service.
func NewAuthService(residents repository.ResidentRepository, admins repository.AdminRepository, tokens *auth.TokenManager, bcryptCost int, logger *zap.Logger) *AuthService {
	return &AuthService{residents: residents, admins: admins, tokens: tokens, bcryptCost: bcryptCost, logger: logger}
}

// SignupInput describes resident registration payload.
type SignupInput struct {
	Name     string
	Email    string
	LoginID  string
	Phone    string
	Password string
}

// RegisterResident creates a resident account and returns it with a session.
func (s *AuthService) RegisterResident(ctx context.Context, input SignupInput) (*domain.Resident, *Session, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.LoginID = strings.TrimSpace(input.LoginID)
	input.Phone = strings.TrimSpace(input.Phone)

	if input.Name == "" || input.Email == "" || input.LoginID == "" || input.Password == "" {
		return nil, nil, apperrors.NewValidationError("name, email, loginId and password are required", nil)
	}
	if len(input.Password) < 6 {
		return nil, nil, apperrors.NewValidationError("password must be at least 6 characters", nil)
	}

	exists, err := s.residents.ExistsByLoginIDOrEmail(ctx, input.LoginID, input.Email)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	if exists {
		return nil, nil, apperrors.NewConflict("login id or email already registered", map[string]any{"loginId": input.LoginID})
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}

	resident := &domain.Resident{
		Name:         input.Name,
		Email:        input.Email,
		LoginID:      input.LoginID,
		Phone:        input.Phone,
		PasswordHash: hash,
	}
	if err := s.residents.Create(ctx, resident); err != nil {
		return nil, nil, apperrors.MapError(err)
	}

	session, err := s.issueSession(resident.ID, domain.SubjectTypeResident)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info("resident registered", zap.String("resident_id", resident.ID))
	return resident, session, nil
}

// LoginResident authenticates by login id and password.
func (s *AuthService) LoginResident(ctx context.Context, loginID, password string) (*domain.Resident, *Session, error) {
	loginID = strings.TrimSpace(loginID)
	if loginID == "" || password == "" {
		return nil, nil, apperrors.NewValidationError("loginId and password are required", nil)
	}

	resident, err := s.residents.GetByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, nil, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(resident.PasswordHash, password); err != nil {
		return nil, nil, apperrors.NewUnauthorized("invalid credentials")
	}

	session, err := s.issueSession(resident.ID, domain.SubjectTypeResident)
	if err != nil {
		return nil, nil, err
	}
	return resident, session, nil
}

// LoginAdmin authenticates a management account.
func (s *AuthService) LoginAdmin(ctx context.Context, adminID, password string) (*domain.Admin, *Session, error) {
	adminID = strings.TrimSpace(adminID)
	if adminID == "" || password == "" {
		return nil, nil, apperrors.NewValidationError("adminId and password are required", nil)
	}

	admin, err := s.admins.GetByAdminID(ctx, adminID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, nil, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, nil, apperrors.NewUnauthorized("invalid credentials")
	}

	session, err := s.issueSession(admin.ID, domain.SubjectTypeAdmin)
	if err != nil {
		return nil, nil, err
	}
	return admin, session, nil
}

// EnsureDefaultAdmin seeds the bootstrap admin account when it is missing.
// Safe to call on every startup.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context, adminID, password string) error {
	if adminID == "" || password == "" {
		return nil
	}
	_, err := s.admins.GetByAdminID(ctx, adminID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return err
	}
	admin := &domain.Admin{AdminID: adminID, PasswordHash: hash}
	if err := s.admins.Create(ctx, admin); err != nil {
		return err
	}
	s.logger.Info("default admin seeded", zap.String("admin_id", adminID))
	return nil
}

// ListResidents returns all registered residents.
func (s *AuthService) ListResidents(ctx context.Context) ([]domain.Resident, error) {
	residents, err := s.residents.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return residents, nil
}

func (s *AuthService) issueSession(subjectID string, subject domain.SubjectType) (*Session, error) {
	token, expiresAt, err := s.tokens.GenerateToken(subjectID, subject)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}
