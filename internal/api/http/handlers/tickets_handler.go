package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/society-service/internal/api/dto"
	"github.com/spec-kit/society-service/internal/service"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// TicketsHandler exposes resident-facing support ticket endpoints.
type TicketsHandler struct {
	tickets *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{tickets: ticketService}
}

// Create handles POST /tickets.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}

	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.tickets.CreateTicket(c.Context(), resident.ID, service.TicketCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
	})
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusCreated, dto.NewTicketResponse(ticket))
}

// ListMine handles GET /tickets/user and its alias GET /tickets/my.
func (h *TicketsHandler) ListMine(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}
	tickets, err := h.tickets.ListMyTickets(c.Context(), resident.ID)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewTicketListResponse(tickets))
}

// Get handles GET /tickets/:id.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}
	ticket, err := h.tickets.GetMyTicket(c.Context(), resident.ID, c.Params("id"))
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewTicketResponse(ticket))
}

// VerifyClose handles POST /tickets/:id/verify-close-otp.
func (h *TicketsHandler) VerifyClose(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}

	var req dto.VerifyCloseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.tickets.VerifyCloseOTP(c.Context(), resident.ID, c.Params("id"), req.OTP)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewTicketResponse(ticket))
}
