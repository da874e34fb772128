package repositories

import (
	"context"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// PermissionRepositoryFacade defines operations for stored permission matrix rows.
type PermissionRepositoryFacade interface {
	// FindMatrixByChurchID retrieves every stored row for a church, keyed by role.
	// Churches with no stored rows return an empty matrix; the service layer
	// decides the default fallback.
	FindMatrixByChurchID(ctx context.Context, churchID string) (domain.PermissionMatrix, error)

	// UpsertRolePermission writes the full replacement module flags for one
	// (church, role) row.
	UpsertRolePermission(ctx context.Context, perm domain.RolePermission) error
}
