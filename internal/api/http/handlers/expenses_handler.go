package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/society-service/internal/api/dto"
	"github.com/spec-kit/society-service/internal/service"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// ExpensesHandler exposes the spending ledger.
type ExpensesHandler struct {
	expenses *service.ExpenseService
}

// NewExpensesHandler constructs handler.
func NewExpensesHandler(expenseService *service.ExpenseService) *ExpensesHandler {
	return &ExpensesHandler{expenses: expenseService}
}

// Create handles POST /expenses.
func (h *ExpensesHandler) Create(c *fiber.Ctx) error {
	admin, err := adminFrom(c)
	if err != nil {
		return err
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	expense, err := h.expenses.RecordExpense(c.Context(), admin.ID, service.ExpenseInput{
		Title:       req.Title,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		SpentOn:     req.SpentOn,
	})
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusCreated, dto.NewExpenseResponse(expense))
}

// List handles GET /expenses.
func (h *ExpensesHandler) List(c *fiber.Ctx) error {
	expenses, err := h.expenses.ListExpenses(c.Context())
	if err != nil {
		return err
	}
	return dataResponse(c, http.StatusOK, dto.NewExpenseListResponse(expenses))
}
