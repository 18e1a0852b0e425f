package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/society-service/internal/api/dto"
	"github.com/spec-kit/society-service/internal/service"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// AdminTicketsHandler exposes the admin ticket queue.
type AdminTicketsHandler struct {
	tickets *service.TicketService
}

// NewAdminTicketsHandler constructs handler.
func NewAdminTicketsHandler(ticketService *service.TicketService) *AdminTicketsHandler {
	return &AdminTicketsHandler{tickets: ticketService}
}

// List handles GET /admin/tickets.
func (h *AdminTicketsHandler) List(c *fiber.Ctx) error {
	tickets, err := h.tickets.ListAllTickets(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewTicketListResponse(tickets))
}

// Overview handles GET /admin/tickets/overview.
func (h *AdminTicketsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.tickets.Overview(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, overview)
}

// SLAAlerts handles GET /admin/tickets/sla-alerts.
func (h *AdminTicketsHandler) SLAAlerts(c *fiber.Ctx) error {
	tickets, err := h.tickets.SLAAlerts(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewTicketListResponse(tickets))
}

// Assign handles PATCH /admin/tickets/:id/assign.
func (h *AdminTicketsHandler) Assign(c *fiber.Ctx) error {
	var req dto.AssignTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.tickets.Assign(c.Context(), c.Params("id"), req.Assignee)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewTicketResponse(ticket))
}

// UpdateStatus handles PATCH /admin/tickets/:id/status.
func (h *AdminTicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateTicketStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.tickets.SetStatus(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewTicketResponse(ticket))
}

// RequestClose handles POST /admin/tickets/:id/request-close.
func (h *AdminTicketsHandler) RequestClose(c *fiber.Ctx) error {
	ticket, err := h.tickets.RequestClose(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewTicketResponse(ticket))
}
