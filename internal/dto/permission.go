package dto

import (
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// UpdatePermissionRequest replaces the module flags for one role in a church.
type UpdatePermissionRequest struct {
	Modules map[string]bool `json:"modules" binding:"required,min=1"`
}

// RolePermissionResponse is one matrix row with the role's display label.
type RolePermissionResponse struct {
	Role      string             `json:"role"`
	RoleLabel string             `json:"roleLabel"`
	Modules   domain.ModuleFlags `json:"modules"`
}

// PermissionMatrixResponse is the effective matrix for a church, one row per
// tenant role in display order.
type PermissionMatrixResponse struct {
	ChurchID string                   `json:"churchID"`
	Roles    []RolePermissionResponse `json:"roles"`
}

// ToPermissionMatrixResponse converts a domain matrix to DTO, filling absent
// roles with empty flags so every tenant role always appears.
func ToPermissionMatrixResponse(churchID string, matrix domain.PermissionMatrix) PermissionMatrixResponse {
	resp := PermissionMatrixResponse{
		ChurchID: churchID,
		Roles:    make([]RolePermissionResponse, 0, len(domain.TenantRoles)),
	}
	for _, role := range domain.TenantRoles {
		flags := matrix[role]
		if flags == nil {
			flags = domain.ModuleFlags{}
		}
		resp.Roles = append(resp.Roles, RolePermissionResponse{
			Role:      string(role),
			RoleLabel: role.Label(),
			Modules:   flags,
		})
	}
	return resp
}
