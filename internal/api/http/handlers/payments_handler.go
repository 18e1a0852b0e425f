package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/society-service/internal/api/dto"
	"github.com/spec-kit/society-service/internal/service"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// PaymentsHandler exposes the online dues payment flow.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(paymentService *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: paymentService}
}

// CreateOrder handles POST /payment/create-order.
func (h *PaymentsHandler) CreateOrder(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.DueID == "" {
		return apperrors.NewValidationError("dueId is required", nil)
	}

	order, err := h.payments.CreateOrder(c.Context(), resident.ID, req.DueID)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusCreated, order)
}

// Verify handles POST /payment/verify-payment.
func (h *PaymentsHandler) Verify(c *fiber.Ctx) error {
	resident, err := residentFrom(c)
	if err != nil {
		return err
	}

	var req dto.VerifyPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.DueID == "" {
		return apperrors.NewValidationError("dueId is required", nil)
	}

	due, err := h.payments.VerifyPayment(c.Context(), resident.ID, req.DueID, req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewDueResponse(due))
}
