package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/society-service/internal/domain"
	"github.com/spec-kit/society-service/internal/payment"
	"github.com/spec-kit/society-service/internal/repository"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// PaymentService drives the online dues payment flow: order creation at
// the gateway, then signature verification before the due is marked Paid.
type PaymentService struct {
	gateway *payment.Client
	dues    repository.DueRepository
	svc     *DueService
}

// NewPaymentService wires the payment service.
func NewPaymentService(gateway *payment.Client, dues repository.DueRepository, svc *DueService) *PaymentService {
	return &PaymentService{gateway: gateway, dues: dues, svc: svc}
}

// CreateOrder registers a gateway order for the resident's due. The order
// id is stamped on the due so verification can match it back.
func (s *PaymentService) CreateOrder(ctx context.Context, residentID, dueID string) (*payment.Order, error) {
	if !s.gateway.Configured() {
		return nil, apperrors.NewUnavailable("payment", errors.New("gateway credentials not configured"))
	}

	due, err := s.dues.GetByID(ctx, dueID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("due", map[string]any{"due_id": dueID})
		}
		return nil, apperrors.MapError(err)
	}
	if due.ResidentID != residentID {
		return nil, apperrors.NewForbidden("access denied")
	}
	if due.Status == domain.DueStatusPaid {
		return nil, apperrors.NewValidationError("due already paid", nil)
	}

	order, err := s.gateway.CreateOrder(ctx, due.Amount, fmt.Sprintf("due-%s", due.ID))
	if err != nil {
		return nil, apperrors.NewUnavailable("payment", err)
	}

	due.OrderID = &order.ID
	if err := s.dues.Update(ctx, due); err != nil {
		return nil, apperrors.MapError(err)
	}
	return order, nil
}

// VerifyPayment checks the gateway signature and, when valid, marks the
// due Paid with the payment reference.
func (s *PaymentService) VerifyPayment(ctx context.Context, residentID, dueID, orderID, paymentID, signature string) (*domain.Due, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return nil, apperrors.NewValidationError("orderId, paymentId and signature are required", nil)
	}

	due, err := s.dues.GetByID(ctx, dueID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("due", map[string]any{"due_id": dueID})
		}
		return nil, apperrors.MapError(err)
	}
	if due.ResidentID != residentID {
		return nil, apperrors.NewForbidden("access denied")
	}
	if due.OrderID == nil || *due.OrderID != orderID {
		return nil, apperrors.NewValidationError("order does not match this due", nil)
	}
	if !s.gateway.VerifySignature(orderID, paymentID, signature) {
		return nil, apperrors.NewValidationError("payment signature verification failed", nil)
	}

	return s.svc.MarkPaidWithPayment(ctx, dueID, orderID, paymentID)
}
