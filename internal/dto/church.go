package dto

import (
	"time"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// RegisterChurchRequest creates a church together with its first admin user.
type RegisterChurchRequest struct {
	Name          string `json:"name" binding:"required,min=3,max=100"`
	Slug          string `json:"slug" binding:"required,min=3,max=50,lowercase,excludesall= "`
	CNPJ          string `json:"cnpj" binding:"omitempty,cnpj"`
	City          string `json:"city" binding:"required,max=100"`
	State         string `json:"state" binding:"required,len=2,uppercase"`
	Address       string `json:"address" binding:"max=200"`
	Phone         string `json:"phone" binding:"max=20"`
	Pastor        string `json:"pastor" binding:"max=100"`
	Plan          string `json:"plan" binding:"omitempty,oneof=free basic premium enterprise"`
	AdminName     string `json:"adminName" binding:"required,min=3,max=100"`
	AdminEmail    string `json:"adminEmail" binding:"required,email"`
	AdminPassword string `json:"adminPassword" binding:"required,min=8"`
}

// UpdateChurchStatusRequest toggles a tenant active/inactive.
// Version enforces optimistic concurrency against concurrent toggles.
type UpdateChurchStatusRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
	Version  int64 `json:"version" binding:"required,min=1"`
}

// ChurchResponse is the API shape for a church.
type ChurchResponse struct {
	ChurchID     string    `json:"churchId"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	CNPJ         string    `json:"cnpj,omitempty"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Pastor       string    `json:"pastor,omitempty"`
	AdminName    string    `json:"adminName,omitempty"`
	AdminEmail   string    `json:"adminEmail,omitempty"`
	Plan         string    `json:"plan"`
	IsActive     bool      `json:"isActive"`
	MembersCount int       `json:"membersCount"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int64     `json:"version"`
}

// ToChurchResponse converts a domain.Church to DTO.
func ToChurchResponse(c *domain.Church) ChurchResponse {
	return ChurchResponse{
		ChurchID:     c.ChurchID,
		Name:         c.Name,
		Slug:         c.Slug,
		CNPJ:         c.CNPJ,
		City:         c.City,
		State:        c.State,
		Address:      c.Address,
		Phone:        c.Phone,
		Pastor:       c.Pastor,
		AdminName:    c.AdminName,
		AdminEmail:   c.AdminEmail,
		Plan:         string(c.Plan),
		IsActive:     c.IsActive,
		MembersCount: c.MembersCount,
		CreatedAt:    c.CreatedAt,
		Version:      c.Version,
	}
}

// ToListChurchesResponse converts a slice of churches to DTOs.
func ToListChurchesResponse(churches []domain.Church) []ChurchResponse {
	resp := make([]ChurchResponse, len(churches))
	for i, c := range churches {
		resp[i] = ToChurchResponse(&c)
	}
	return resp
}

// RegisterChurchResponse returns the new tenant and its admin account.
type RegisterChurchResponse struct {
	Church ChurchResponse `json:"church"`
	Admin  UserResponse   `json:"admin"`
}
