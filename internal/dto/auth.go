package dto

import (
	"time"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

// LoginRequest carries credentials plus the tenant slug from the login URL.
// Slug is empty for the landing page and "superadmin" for the operator login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Slug     string `json:"slug"`
}

// LoginResponse returns the access token and the resolved session.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Session   SessionResponse `json:"session"`
}

// RefreshResponse returns a renewed access token.
type RefreshResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ChangePasswordRequest carries a password change for the authenticated user.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// SessionResponse is the resolved session: principal, tenant and the effective
// permission matrix. Churches is present only for super-admin sessions.
type SessionResponse struct {
	User        UserResponse                           `json:"user"`
	Church      ChurchResponse                         `json:"church"`
	Permissions map[domain.UserRole]domain.ModuleFlags `json:"permissions"`
	Churches    []ChurchResponse                       `json:"churches,omitempty"`
}

// ToSessionResponse converts a domain.Session to DTO.
func ToSessionResponse(s *domain.Session) SessionResponse {
	resp := SessionResponse{
		User:        ToUserResponse(&s.User),
		Church:      ToChurchResponse(&s.Church),
		Permissions: s.Permissions,
	}
	if len(s.Churches) > 0 {
		resp.Churches = make([]ChurchResponse, len(s.Churches))
		for i, c := range s.Churches {
			resp.Churches[i] = ToChurchResponse(&c)
		}
	}
	return resp
}
