package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/society-service/internal/api/dto"
	"github.com/spec-kit/society-service/internal/service"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// DuesHandler exposes the admin dues ledger.
type DuesHandler struct {
	dues *service.DueService
}

// NewDuesHandler constructs handler.
func NewDuesHandler(dueService *service.DueService) *DuesHandler {
	return &DuesHandler{dues: dueService}
}

// Create handles POST /admin/dues.
func (h *DuesHandler) Create(c *fiber.Ctx) error {
	admin, err := adminFrom(c)
	if err != nil {
		return err
	}

	var req dto.CreateDueRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	due, err := h.dues.CreateDue(c.Context(), admin.ID, service.DueCreateInput{
		ResidentLoginID: req.ResidentLoginID,
		Type:            req.Type,
		Amount:          req.Amount,
		DueDate:         req.DueDate,
		Notes:           req.Notes,
	})
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusCreated, dto.NewDueResponse(due))
}

// List handles GET /admin/all-dues.
func (h *DuesHandler) List(c *fiber.Ctx) error {
	dues, err := h.dues.ListDues(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewDueListResponse(dues))
}

// UpdateStatus handles PATCH /admin/dues/:id/status.
func (h *DuesHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateDueStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	due, err := h.dues.SetStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewDueResponse(due))
}
