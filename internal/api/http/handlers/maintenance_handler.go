package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/society-service/internal/api/dto"
	"github.com/spec-kit/society-service/internal/service"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// MaintenanceHandler exposes scheduled-work endpoints and the cost
// forecast proxy.
type MaintenanceHandler struct {
	maintenance *service.MaintenanceService
}

// NewMaintenanceHandler constructs handler.
func NewMaintenanceHandler(maintenanceService *service.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenanceService}
}

// Create handles POST /maintenance.
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	admin, err := adminFrom(c)
	if err != nil {
		return err
	}

	var req dto.CreateMaintenanceTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	task, err := h.maintenance.CreateTask(c.Context(), admin.ID, service.MaintenanceTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		ScheduledDate: req.ScheduledDate,
		Status:        req.Status,
	})
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusCreated, dto.NewMaintenanceTaskResponse(task))
}

// List handles GET /maintenance.
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	tasks, err := h.maintenance.ListTasks(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewMaintenanceTaskListResponse(tasks))
}

// UpdateStatus handles PATCH /maintenance/:id/status.
func (h *MaintenanceHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateMaintenanceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	task, err := h.maintenance.SetStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewMaintenanceTaskResponse(task))
}

// Forecast handles POST /admin/maintenance-forecast. The body is relayed
// to the prediction service as-is.
func (h *MaintenanceHandler) Forecast(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 || !json.Valid(body) {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	out, err := h.maintenance.ForecastCost(c.Context(), json.RawMessage(body))
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, out)
}
