package dto

import "github.com/spec-kit/event-dashboard/internal/domain"

// LoginRequest payload for sign in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest payload for new identities.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// IdentityResponse is the profile shape returned to the dashboard shell.
type IdentityResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department *string `json:"department,omitempty"`
	IsPremium  bool    `json:"is_premium"`
}

// SessionResponse reports the current session state for the navigation shell.
type SessionResponse struct {
	State           string            `json:"state"`
	IsAuthenticated bool              `json:"is_authenticated"`
	IsLoading       bool              `json:"is_loading"`
	Identity        *IdentityResponse `json:"identity,omitempty"`
}

// NewIdentityResponse maps a domain identity, which may be nil.
func NewIdentityResponse(identity *domain.Identity) *IdentityResponse {
	if identity == nil {
		return nil
	}
	return &IdentityResponse{
		ID:         identity.ID,
		Name:       identity.Name,
		Email:      identity.Email,
		Role:       string(identity.Role),
		Department: identity.Department,
		IsPremium:  identity.IsPremium,
	}
}
