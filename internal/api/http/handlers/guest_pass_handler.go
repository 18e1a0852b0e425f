package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/society-service/internal/api/dto"
	"github.com/spec-kit/society-service/internal/service"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// GuestPassHandler exposes visitor pass endpoints.
type GuestPassHandler struct {
	passes *service.GuestPassService
}

// NewGuestPassHandler constructs handler.
func NewGuestPassHandler(passService *service.GuestPassService) *GuestPassHandler {
	return &GuestPassHandler{passes: passService}
}

// Request handles POST /guestpass/request.
func (h *GuestPassHandler) Request(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}

	var req dto.CreateGuestPassRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	pass, err := h.passes.RequestPass(c.Context(), resident.ID, service.GuestPassCreateInput{
		GuestName: req.GuestName,
		VisitDate: req.VisitDate,
		Reason:    req.Reason,
	})
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusCreated, dto.NewGuestPassResponse(pass))
}

// ListMine handles GET /guestpass/my.
func (h *GuestPassHandler) ListMine(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}
	passes, err := h.passes.ListMyPasses(c.Context(), resident.ID)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewGuestPassListResponse(passes))
}

// Cancel handles PATCH /guestpass/:id/cancel.
func (h *GuestPassHandler) Cancel(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}
	pass, err := h.passes.Cancel(c.Context(), resident.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewGuestPassResponse(pass))
}

// ListAll handles GET /guestpass/all.
func (h *GuestPassHandler) ListAll(c *fiber.Ctx) error {
	passes, err := h.passes.ListAllPasses(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewGuestPassListResponse(passes))
}

// Approve handles PATCH /guestpass/:id/approve.
func (h *GuestPassHandler) Approve(c *fiber.Ctx) error {
	admin, err := adminFrom(c)
	if err != nil {
		return err
	}
	pass, err := h.passes.Approve(c.Context(), admin.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewGuestPassResponse(pass))
}

// Reject handles PATCH /guestpass/:id/reject.
func (h *GuestPassHandler) Reject(c *fiber.Ctx) error {
	admin, err := adminFrom(c)
	if err != nil {
		return err
	}
	pass, err := h.passes.Reject(c.Context(), admin.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewGuestPassResponse(pass))
}
