package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/society-service/internal/auth"
	"github.com/spec-kit/society-service/internal/domain"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// residentFrom extracts the authenticated resident from the request.
func residentFrom(c *fiber.Ctx) (*domain.Resident, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Resident == nil {
		return nil, apperrors.NewUnauthorized("resident authentication required")
	}
	return principal.Resident, nil
}

// adminFrom extracts the authenticated admin from the request.
func adminFrom(c *fiber.Ctx) (*domain.Admin, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Admin == nil {
		return nil, apperrors.NewUnauthorized("admin authentication required")
	}
	return principal.Admin, nil
}

func dataResponse(c *fiber.Ctx, status int, payload any) error {
	return c.Status(status).JSON(fiber.Map{"data": payload})
}
