package dto

import (
	"time"

	"github.com/spec-kit/society-service/internal/domain"
)

// SignupRequest payload.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	LoginID  string `json:"loginId"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// LoginRequest payload. Role selects the account collection.
type LoginRequest struct {
	LoginID  string `json:"loginId"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// AuthResponse returns the issued session with the principal.
type AuthResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	Role      string         `json:"role"`
	User      map[string]any `json:"user"`
}

// ResidentResponse is the public resident shape.
type ResidentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	LoginID   string    `json:"loginId"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewResidentResponse maps a resident, omitting credential fields.
func NewResidentResponse(r *domain.Resident) ResidentResponse {
	return ResidentResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		LoginID:   r.LoginID,
		Phone:     r.Phone,
		CreatedAt: r.CreatedAt,
	}
}

// NewResidentListResponse maps a slice of residents.
func NewResidentListResponse(residents []domain.Resident) []ResidentResponse {
	out := make([]ResidentResponse, 0, len(residents))
	for i := range residents {
		out = append(out, NewResidentResponse(&residents[i]))
	}
	return out
}
