package domain

import "time"

// ExpenseCategory enumerates society spending buckets.
type ExpenseCategory string

const (
	ExpenseCategoryUtilities     ExpenseCategory = "Utilities"
	ExpenseCategoryMaintenance   ExpenseCategory = "Maintenance"
	ExpenseCategoryStaffSalaries ExpenseCategory = "Staff Salaries"
	ExpenseCategorySupplies      ExpenseCategory = "Supplies"
	ExpenseCategoryOther         ExpenseCategory = "Other"
)

// ValidExpenseCategory reports whether c is an enumerated category.
func ValidExpenseCategory(c ExpenseCategory) bool {
	switch c {
	case ExpenseCategoryUtilities, ExpenseCategoryMaintenance, ExpenseCategoryStaffSalaries,
		ExpenseCategorySupplies, ExpenseCategoryOther:
		return true
	}
	return false
}

// Expense is an admin-logged society outlay.
type Expense struct {
	ID          string
	Title       string
	Amount      float64
	Category    ExpenseCategory
	Description string
	SpentOn     time.Time
	CreatedByID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
