package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/society-service/internal/domain"
	"github.com/spec-kit/society-service/internal/events"
	"github.com/spec-kit/society-service/internal/repository"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// DueService manages the resident dues ledger.
type DueService struct {
	dues       repository.DueRepository
	residents  repository.ResidentRepository
	dispatcher events.Dispatcher
}

// NewDueService wires the dues service.
func NewDueService(dues repository.DueRepository, residents repository.ResidentRepository, dispatcher events.Dispatcher) *DueService {
	return &DueService{dues: dues, residents: residents, dispatcher: dispatcher}
}

// DueCreateInput describes an admin-recorded charge. The resident is
// addressed by login id, not internal id.
type DueCreateInput struct {
	ResidentLoginID string
	Type            string
	Amount          float64
	DueDate         time.Time
	Notes           string
}

// CreateDue records a charge against a resident.
func (s *DueService) CreateDue(ctx context.Context, adminID string, input DueCreateInput) (*domain.Due, error) {
	if input.ResidentLoginID == "" {
		return nil, apperrors.NewValidationError("loginId is required", nil)
	}
	if input.Type == "" {
		input.Type = "Maintenance"
	}
	if input.Amount <= 0 {
		return nil, apperrors.NewValidationError("amount must be positive", nil)
	}
	if input.DueDate.IsZero() {
		return nil, apperrors.NewValidationError("dueDate is required", nil)
	}

	resident, err := s.residents.GetByLoginID(ctx, input.ResidentLoginID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("resident", map[string]any{"loginId": input.ResidentLoginID})
		}
		return nil, apperrors.MapError(err)
	}

	due := &domain.Due{
		ResidentID: resident.ID,
		Type:       input.Type,
		Amount:     input.Amount,
		DueDate:    input.DueDate,
		Status:     domain.DueStatusPending,
		Notes:      input.Notes,
	}
	if err := s.dues.Create(ctx, due); err != nil {
		return nil, apperrors.MapError(err)
	}
	due.Resident = resident.Ref()

	s.publish(ctx, events.Event{
		Type:      events.EventDueRecorded,
		SubjectID: due.ID,
		Actor:     events.AdminActor(adminID),
		Payload: events.DueRecordedPayload{
			Amount:  due.Amount,
			DueDate: due.DueDate,
			DueType: due.Type,
		},
	})
	return due, nil
}

// ListDues returns the full ledger for the admin view.
func (s *DueService) ListDues(ctx context.Context) ([]domain.Due, error) {
	dues, err := s.dues.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return dues, nil
}

// SetStatus moves a due between ledger states. Marking Paid stamps the
// payment date; marking an already Paid due Paid again is a no-op.
func (s *DueService) SetStatus(ctx context.Context, dueID string, status domain.DueStatus) (*domain.Due, error) {
	if !domain.ValidDueStatus(status) {
		return nil, apperrors.NewValidationError("invalid due status", map[string]any{"status": string(status)})
	}

	due, err := s.dues.GetByID(ctx, dueID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("due", map[string]any{"due_id": dueID})
		}
		return nil, apperrors.MapError(err)
	}

	if status == domain.DueStatusPaid {
		if due.Status == domain.DueStatusPaid {
			return due, nil
		}
		now := time.Now()
		due.PaidOn = &now
	} else {
		due.PaidOn = nil
		due.PaymentID = nil
		due.OrderID = nil
	}
	due.Status = status

	if err := s.dues.Update(ctx, due); err != nil {
		return nil, apperrors.MapError(err)
	}
	return due, nil
}

// MarkPaidWithPayment stamps a verified gateway payment onto the due.
func (s *DueService) MarkPaidWithPayment(ctx context.Context, dueID, orderID, paymentID string) (*domain.Due, error) {
	due, err := s.dues.GetByID(ctx, dueID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("due", map[string]any{"due_id": dueID})
		}
		return nil, apperrors.MapError(err)
	}
	if due.Status == domain.DueStatusPaid {
		return due, nil
	}

	now := time.Now()
	due.Status = domain.DueStatusPaid
	due.PaidOn = &now
	due.OrderID = &orderID
	due.PaymentID = &paymentID

	if err := s.dues.Update(ctx, due); err != nil {
		return nil, apperrors.MapError(err)
	}
	return due, nil
}

// CurrentDue returns the resident's earliest outstanding due. When nothing
// is outstanding a synthetic zero-amount Paid entry is returned so the
// dashboard always has something to render.
func (s *DueService) CurrentDue(ctx context.Context, residentID string) (*domain.Due, error) {
	due, err := s.dues.CurrentForResident(ctx, residentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.Due{
				ResidentID: residentID,
				Amount:     0,
				Status:     domain.DueStatusPaid,
			}, nil
		}
		return nil, apperrors.MapError(err)
	}
	return due, nil
}

// GetDue fetches one due by id.
func (s *DueService) GetDue(ctx context.Context, dueID string) (*domain.Due, error) {
	due, err := s.dues.GetByID(ctx, dueID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("due", map[string]any{"due_id": dueID})
		}
		return nil, apperrors.MapError(err)
	}
	return due, nil
}

func (s *DueService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
