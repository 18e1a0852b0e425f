package dto

import (
	"time"

	"github.com/spec-kit/society-service/internal/domain"
)

// CreateNoticeRequest payload.
type CreateNoticeRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NoticeResponse is the board-entry shape.
type NoticeResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewNoticeResponse maps a notice.
func NewNoticeResponse(n *domain.Notice) NoticeResponse {
	return NoticeResponse{ID: n.ID, Title: n.Title, Body: n.Body, CreatedAt: n.CreatedAt}
}

// NewNoticeListResponse maps a slice of notices.
func NewNoticeListResponse(notices []domain.Notice) []NoticeResponse {
	out := make([]NoticeResponse, 0, len(notices))
	for i := range notices {
		out = append(out, NewNoticeResponse(&notices[i]))
	}
	return out
}

// CreateMaintenanceTaskRequest payload.
type CreateMaintenanceTaskRequest struct {
	Title         string                   `json:"title"`
	Description   string                   `json:"description"`
	ScheduledDate time.Time                `json:"scheduledDate"`
	Status        domain.MaintenanceStatus `json:"status"`
}

// UpdateMaintenanceStatusRequest payload.
type UpdateMaintenanceStatusRequest struct {
	Status domain.MaintenanceStatus `json:"status"`
}

// MaintenanceTaskResponse is the scheduled-work shape.
type MaintenanceTaskResponse struct {
	ID            string                   `json:"id"`
	Title         string                   `json:"title"`
	Description   string                   `json:"description,omitempty"`
	ScheduledDate time.Time                `json:"scheduledDate"`
	Status        domain.MaintenanceStatus `json:"status"`
	CreatedAt     time.Time                `json:"createdAt"`
}

// NewMaintenanceTaskResponse maps a task.
func NewMaintenanceTaskResponse(t *domain.MaintenanceTask) MaintenanceTaskResponse {
	return MaintenanceTaskResponse{
		ID:            t.ID,
		Title:         t.Title,
		Description:   t.Description,
		ScheduledDate: t.ScheduledDate,
		Status:        t.Status,
		CreatedAt:     t.CreatedAt,
	}
}

// NewMaintenanceTaskListResponse maps a slice of tasks.
func NewMaintenanceTaskListResponse(tasks []domain.MaintenanceTask) []MaintenanceTaskResponse {
	out := make([]MaintenanceTaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, NewMaintenanceTaskResponse(&tasks[i]))
	}
	return out
}

// CreateExpenseRequest payload.
type CreateExpenseRequest struct {
	Title       string                 `json:"title"`
	Amount      float64                `json:"amount"`
	Category    domain.ExpenseCategory `json:"category"`
	Description string                 `json:"description"`
	SpentOn     time.Time              `json:"date"`
}

// ExpenseResponse is the spending-ledger shape.
type ExpenseResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Amount      float64                `json:"amount"`
	Category    domain.ExpenseCategory `json:"category"`
	Description string                 `json:"description,omitempty"`
	SpentOn     time.Time              `json:"spentOn"`
	CreatedAt   time.Time              `json:"createdAt"`
}

// NewExpenseResponse maps an expense.
func NewExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Title:       e.Title,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		SpentOn:     e.SpentOn,
		CreatedAt:   e.CreatedAt,
	}
}

// NewExpenseListResponse maps a slice of expenses.
func NewExpenseListResponse(expenses []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, NewExpenseResponse(&expenses[i]))
	}
	return out
}

// CreateOrderRequest payload.
type CreateOrderRequest struct {
	DueID string `json:"dueId"`
}

// VerifyPaymentRequest payload.
type VerifyPaymentRequest struct {
	DueID     string `json:"dueId"`
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

// UploadResponse returns the public path of a stored image.
type UploadResponse struct {
	ImageURL string `json:"imageUrl"`
}
