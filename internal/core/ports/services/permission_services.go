package services

import (
	"context"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// PermissionSvcFacade manages the per-church permission matrix.
type PermissionSvcFacade interface {
	// GetMatrix returns the effective matrix: stored rows overlaid on the
	// hard-coded defaults, so every tenant role always resolves.
	GetMatrix(ctx context.Context, churchID string) (domain.PermissionMatrix, error)

	// UpdateRolePermission replaces the module flags for one role. The admin
	// role's settings flag is force-set true regardless of input, and the
	// stored state is returned only after persistence succeeds.
	UpdateRolePermission(ctx context.Context, churchID string, role domain.UserRole, flags domain.ModuleFlags, requestingUserID string) (domain.ModuleFlags, error)
}
