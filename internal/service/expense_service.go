package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/society-service/internal/domain"
	"github.com/spec-kit/society-service/internal/repository"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// ExpenseService records society spending.
type ExpenseService struct {
	expenses repository.ExpenseRepository
}

// NewExpenseService wires the expense service.
func NewExpenseService(expenses repository.ExpenseRepository) *ExpenseService {
	return &ExpenseService{expenses: expenses}
}

// ExpenseInput describes a logged outlay.
type ExpenseInput struct {
	Title       string
	Amount      float64
	Category    domain.ExpenseCategory
	Description string
	SpentOn     time.Time
}

// RecordExpense logs an outlay against the society ledger.
func (s *ExpenseService) RecordExpense(ctx context.Context, adminID string, input ExpenseInput) (*domain.Expense, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, apperrors.NewValidationError("title is required", nil)
	}
	if input.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount must be positive", nil)
	}
	if input.Category == "" {
		input.Category = domain.ExpenseCategoryOther
	} else if !domain.ValidExpenseCategory(input.Category) {
		return nil, apperrors.NewValidationError("invalid expense category", map[string]any{"category": string(input.Category)})
	}
	if input.SpentOn.IsZero() {
		input.SpentOn = time.Now()
	}

	expense := &domain.Expense{
		Title:       input.Title,
		Amount:      input.Amount,
		Category:    input.Category,
		Description: strings.TrimSpace(input.Description),
		SpentOn:     input.SpentOn,
		CreatedByID: adminID,
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, apperrors.MapError(err)
	}
	return expense, nil
}

// ListExpenses returns the spending ledger.
func (s *ExpenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.expenses.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return expenses, nil
}
