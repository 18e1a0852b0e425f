package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/society-service/internal/api/dto"
	"github.com/spec-kit/society-service/internal/service"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// AuthHandler exposes signup/login and the profile endpoint.
type AuthHandler struct {
	auth *service.AuthService
	dues *service.DueService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, dueService *service.DueService) *AuthHandler {
	return &AuthHandler{auth: authService, dues: dueService}
}

// Signup handles POST /auth/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	resident, session, err := h.auth.RegisterResident(c.Context(), service.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		LoginID:  req.LoginID,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return dataResponse(c, http.StatusCreated, dto.AuthResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Role:      "resident",
		User: map[string]any{
			"id":      resident.ID,
			"name":    resident.Name,
			"loginId": resident.LoginID,
		},
	})
}

// Login handles POST /auth/login. The role field selects the account
// collection; anything other than "admin" is treated as a resident login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	if req.Role == "admin" {
		admin, session, err := h.auth.LoginAdmin(c.Context(), req.LoginID, req.Password)
		if err != nil {
			return err
		}
		return dataResponse(c, http.StatusOK, dto.AuthResponse{
			Token:     session.Token,
			ExpiresAt: session.ExpiresAt,
			Role:      "admin",
			User: map[string]any{
				"id":      admin.ID,
				"adminId": admin.AdminID,
			},
		})
	}

	resident, session, err := h.auth.LoginResident(c.Context(), req.LoginID, req.Password)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.AuthResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Role:      "resident",
		User: map[string]any{
			"id":      resident.ID,
			"name":    resident.Name,
			"loginId": resident.LoginID,
		},
	})
}

// Profile handles GET /user/profile.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewResidentResponse(resident))
}

// CurrentDue handles GET /user/dues.
func (h *AuthHandler) CurrentDue(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}
	due, err := h.dues.CurrentDue(c.Context(), resident.ID)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewDueResponse(due))
}

// ListResidents handles GET /admin/residents.
func (h *AuthHandler) ListResidents(c *fiber.Ctx) error {
	residents, err := h.auth.ListResidents(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewResidentListResponse(residents))
}
