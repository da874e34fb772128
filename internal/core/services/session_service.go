package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portsrepo "github.com/igrejaapp/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
	"github.com/igrejaapp/igreja_backend/internal/utils"
)

// sessionService implements SessionSvcFacade: it resolves full sessions from an
// authenticated user id and runs the login flow with its slug cross-check.
type sessionService struct {
	BaseService
	userService       portssvc.UserSvcFacade
	churchRepo        portsrepo.ChurchReader
	permissionService portssvc.PermissionSvcFacade
}

// NewSessionService creates a new session service with the provided dependencies
func NewSessionService(
	userService portssvc.UserSvcFacade,
	churchRepo portsrepo.ChurchReader,
	permissionService portssvc.PermissionSvcFacade,
) portssvc.SessionSvcFacade {
	return &sessionService{
		userService:       userService,
		churchRepo:        churchRepo,
		permissionService: permissionService,
	}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

// ResolveSession builds the full session for an authenticated user id. Every
// failure returns a nil session; no partially resolved state escapes.
func (s *sessionService) ResolveSession(ctx context.Context, userID string) (*domain.Session, error) {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, err
	}
	if !user.IsActive || user.DeletedAt != nil {
		return nil, apperrors.ErrProfileNotFound
	}

	if user.IsSuperAdmin() {
		churches, err := s.churchRepo.ListChurches(ctx)
		if err != nil {
			s.LogError(ctx, err, "Failed to list churches for super-admin session")
			return nil, err
		}
		return &domain.Session{
			User:        *user,
			Church:      domain.SystemChurch(),
			Permissions: domain.DefaultPermissionMatrix(),
			Churches:    churches,
		}, nil
	}

	church, err := s.churchRepo.FindChurchByID(ctx, user.ChurchID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "User references a missing church",
				slog.String("user_id", userID),
				slog.String("church_id", user.ChurchID))
		}
		return nil, err
	}
	if !church.IsActive {
		return nil, apperrors.ErrChurchInactive
	}

	matrix, err := s.permissionService.GetMatrix(ctx, church.ChurchID)
	if err != nil {
		return nil, err
	}

	return &domain.Session{
		User:        *user,
		Church:      *church,
		Permissions: matrix,
	}, nil
}

// Login verifies credentials and cross-checks the tenant slug. Once credentials
// have been accepted, any rejection revokes the stored refresh token so an
// authenticated-but-unauthorized state never survives the request.
func (s *sessionService) Login(ctx context.Context, email, password, slug string) (*domain.Session, error) {
	user, err := s.userService.AuthenticateUser(ctx, email, password)
	if err != nil {
		return nil, err
	}

	reject := func(cause error) (*domain.Session, error) {
		if revokeErr := s.userService.ClearRefreshToken(ctx, user.UserID); revokeErr != nil {
			s.LogError(ctx, revokeErr, "Failed to revoke refresh token on login rejection",
				slog.String("user_id", user.UserID))
		}
		return nil, cause
	}

	if slug != "" && slug != domain.SystemChurchSlug && !user.IsSuperAdmin() {
		church, err := s.churchRepo.FindChurchBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return reject(apperrors.ErrNotFound)
			}
			return nil, err
		}
		if !church.IsActive {
			return reject(apperrors.ErrChurchInactive)
		}
		if church.ChurchID != user.ChurchID {
			s.LogInfo(ctx, "Cross-tenant login rejected",
				slog.String("user_id", user.UserID),
				slog.String("slug", slug))
			return reject(apperrors.ErrCrossChurchAccess)
		}
	}
	if slug == domain.SystemChurchSlug && !user.IsSuperAdmin() {
		return reject(apperrors.ErrCrossChurchAccess)
	}

	session, err := s.ResolveSession(ctx, user.UserID)
	if err != nil {
		return reject(err)
	}

	s.LogInfo(ctx, "Login succeeded",
		slog.String("user_id", user.UserID),
		slog.String("church_id", session.Church.ChurchID))
	return session, nil
}

// ChangePassword verifies the current password before storing the new hash.
func (s *sessionService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if _, err := s.userService.UpdateUser(ctx, userID, dto.UpdateUserRequest{Password: &newPassword}, userID); err != nil {
		return fmt.Errorf("failed to store new password: %w", err)
	}
	return nil
}
