package domain

import "time"

// MaintenanceStatus enumerates scheduled task states.
type MaintenanceStatus string

const (
	MaintenanceStatusPending    MaintenanceStatus = "Pending"
	MaintenanceStatusInProgress MaintenanceStatus = "In Progress"
	MaintenanceStatusCompleted  MaintenanceStatus = "Completed"
)

// ValidMaintenanceStatus reports whether s is an enumerated task state.
func ValidMaintenanceStatus(s MaintenanceStatus) bool {
	switch s {
	case MaintenanceStatusPending, MaintenanceStatusInProgress, MaintenanceStatusCompleted:
		return true
	}
	return false
}

// MaintenanceTask is an admin-scheduled facility work item.
type MaintenanceTask struct {
	ID            string
	Title         string
	Description   string
	ScheduledDate time.Time
	Status        MaintenanceStatus
	CreatedByID   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
