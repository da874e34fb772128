package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portsrepo "github.com/igrejaapp/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
)

// permissionService implements PermissionSvcFacade over stored matrix rows.
type permissionService struct {
	BaseService
	permissionRepo portsrepo.PermissionRepositoryFacade
}

// NewPermissionService creates a new permission service with the provided dependencies
func NewPermissionService(permissionRepo portsrepo.PermissionRepositoryFacade) portssvc.PermissionSvcFacade {
	return &permissionService{permissionRepo: permissionRepo}
}

var _ portssvc.PermissionSvcFacade = (*permissionService)(nil)

// GetMatrix returns the effective matrix for a church: stored rows overlaid on
// the hard-coded defaults so every tenant role always resolves, even for a
// church that never edited its matrix.
func (s *permissionService) GetMatrix(ctx context.Context, churchID string) (domain.PermissionMatrix, error) {
	stored, err := s.permissionRepo.FindMatrixByChurchID(ctx, churchID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load permission matrix",
			slog.String("church_id", churchID))
		return nil, err
	}

	matrix := domain.DefaultPermissionMatrix()
	for role, flags := range stored {
		matrix[role] = flags
	}
	return matrix, nil
}

// UpdateRolePermission replaces the module flags for one role. The stored state
// is returned only after persistence succeeds; on failure the caller keeps
// seeing the previous matrix.
func (s *permissionService) UpdateRolePermission(ctx context.Context, churchID string, role domain.UserRole, flags domain.ModuleFlags, requestingUserID string) (domain.ModuleFlags, error) {
	if !role.Valid() || role == domain.RoleSuperAdmin {
		return nil, fmt.Errorf("invalid role %q: %w", role, apperrors.ErrValidation)
	}

	sanitized := domain.SanitizeRoleModules(role, flags)

	now := time.Now()
	perm := domain.RolePermission{
		ChurchID: churchID,
		Role:     role,
		Modules:  sanitized,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requestingUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requestingUserID,
		},
	}

	if err := s.permissionRepo.UpsertRolePermission(ctx, perm); err != nil {
		s.LogError(ctx, err, "Failed to persist role permission",
			slog.String("church_id", churchID),
			slog.String("role", string(role)))
		return nil, err
	}

	s.LogInfo(ctx, "Role permission updated",
		slog.String("church_id", churchID),
		slog.String("role", string(role)))
	return sanitized, nil
}
