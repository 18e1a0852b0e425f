package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/society-service/internal/domain"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// RequireResident ensures a resident is authenticated.
func RequireResident() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.SubjectType != domain.SubjectTypeResident || principal.Resident == nil {
			return apperrors.NewForbidden("resident account required")
		}
		return c.Next()
	}
}

// RequireAdmin ensures an admin is authenticated.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.SubjectType != domain.SubjectTypeAdmin || principal.Admin == nil {
			return apperrors.NewForbidden("admin account required")
		}
		return c.Next()
	}
}

// RequireAnyRole ensures the caller is authenticated (resident or admin).
func RequireAnyRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := PrincipalFromContext(c); !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		return c.Next()
	}
}
