package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/society-service/internal/config"
	"github.com/spec-kit/society-service/internal/domain"
	"github.com/spec-kit/society-service/internal/repository"
	apperrors "github.com/spec-kit/society-service/pkg/util"
)

// MaintenanceService manages scheduled facility work and proxies cost
// forecasts to the prediction service.
type MaintenanceService struct {
	tasks    repository.MaintenanceRepository
	forecast config.MLConfig
	http     *http.Client
}

// NewMaintenanceService wires the maintenance service.
func NewMaintenanceService(tasks repository.MaintenanceRepository, forecast config.MLConfig) *MaintenanceService {
	timeout := time.Duration(forecast.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MaintenanceService{
		tasks:    tasks,
		forecast: forecast,
		http:     &http.Client{Timeout: timeout},
	}
}

// MaintenanceTaskInput describes a scheduled work item. Status is
// optional and defaults to Pending.
type MaintenanceTaskInput struct {
	Title         string
	Description   string
	ScheduledDate time.Time
	Status        domain.MaintenanceStatus
}

// CreateTask schedules a work item.
func (s *MaintenanceService) CreateTask(ctx context.Context, adminID string, input MaintenanceTaskInput) (*domain.MaintenanceTask, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, apperrors.NewValidationError("title is required", nil)
	}
	if input.ScheduledDate.IsZero() {
		return nil, apperrors.NewValidationError("scheduledDate is required", nil)
	}
	if input.Status == "" {
		input.Status = domain.MaintenanceStatusPending
	} else if !domain.ValidMaintenanceStatus(input.Status) {
		return nil, apperrors.NewValidationError("invalid maintenance status", map[string]any{"status": string(input.Status)})
	}

	task := &domain.MaintenanceTask{
		Title:         input.Title,
		Description:   strings.TrimSpace(input.Description),
		ScheduledDate: input.ScheduledDate,
		Status:        input.Status,
		CreatedByID:   adminID,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, apperrors.MapError(err)
	}
	return task, nil
}

// ListTasks returns all scheduled work.
func (s *MaintenanceService) ListTasks(ctx context.Context) ([]domain.MaintenanceTask, error) {
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tasks, nil
}

// SetStatus moves a task between work states.
func (s *MaintenanceService) SetStatus(ctx context.Context, taskID string, status domain.MaintenanceStatus) (*domain.MaintenanceTask, error) {
	if !domain.ValidMaintenanceStatus(status) {
		return nil, apperrors.NewValidationError("invalid task status", map[string]any{"status": string(status)})
	}

	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("maintenance task", map[string]any{"task_id": taskID})
		}
		return nil, apperrors.MapError(err)
	}

	task.Status = status
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, apperrors.MapError(err)
	}
	return task, nil
}

// ForecastCost proxies the request body to the prediction service and
// relays its JSON response untouched.
func (s *MaintenanceService) ForecastCost(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.forecast.ForecastURL, bytes.NewReader(payload))
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, apperrors.NewUnavailable("forecast", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewUnavailable("forecast", fmt.Errorf("forecast service returned status %d", resp.StatusCode))
	}

	var out json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, apperrors.NewUnavailable("forecast", err)
	}
	return out, nil
}
