package dto

import (
	"time"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// CreateUserRequest adds a staff account to a church.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin pastor secretary treasurer"`
}

// UpdateUserRequest patches a staff account. Nil fields are left unchanged.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=3,max=100"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin pastor secretary treasurer"`
	IsActive *bool   `json:"isActive"`
	Password *string `json:"password" binding:"omitempty,min=8"`
}

// UserResponse is the API shape for a user. The password hash never leaves
// the domain layer.
type UserResponse struct {
	UserID    string    `json:"userId"`
	ChurchID  string    `json:"churchId,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	RoleLabel string    `json:"roleLabel"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToUserResponse converts a domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		ChurchID:  u.ChurchID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		RoleLabel: u.Role.Label(),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ToListUsersResponse converts a slice of users to DTOs.
func ToListUsersResponse(users []domain.User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = ToUserResponse(&u)
	}
	return resp
}
