package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portsrepo "github.com/igrejaapp/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
	"github.com/igrejaapp/igreja_backend/internal/utils"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service with the provided dependencies
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// requireChurchAdmin checks that the requesting user is an admin of the target
// church, or a super admin.
func (s *userService) requireChurchAdmin(ctx context.Context, requestingUserID, churchID string) (*domain.User, error) {
	requester, err := s.userRepo.FindUserByID(ctx, requestingUserID)
	if err != nil {
		return nil, err
	}
	if requester.IsSuperAdmin() {
		return requester, nil
	}
	if requester.Role != domain.RoleAdmin || requester.ChurchID != churchID {
		return nil, apperrors.ErrForbidden
	}
	return requester, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID",
				slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by email")
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListChurchUsers(ctx context.Context, churchID string) ([]domain.User, error) {
	users, err := s.userRepo.ListUsersByChurchID(ctx, churchID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list church users",
			slog.String("church_id", churchID))
		return nil, err
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// CreateUser adds a staff account to a church. Only a church admin (or super
// admin) may create accounts, and the super_admin role is never assignable.
func (s *userService) CreateUser(ctx context.Context, churchID string, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	if _, err := s.requireChurchAdmin(ctx, creatorUserID, churchID); err != nil {
		return nil, err
	}

	role := domain.UserRole(req.Role)
	if !role.Valid() || role == domain.RoleSuperAdmin {
		return nil, fmt.Errorf("invalid role %q: %w", req.Role, apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password for new user")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		ChurchID:     churchID,
		Name:         utils.NormalizeName(req.Name),
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user",
			slog.String("church_id", churchID))
		return nil, err
	}

	s.LogInfo(ctx, "User created",
		slog.String("user_id", user.UserID),
		slog.String("church_id", churchID),
		slog.String("role", string(role)))
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	requester, err := s.requireChurchAdmin(ctx, requestingUserID, user.ChurchID)
	if err != nil {
		// A user may still change their own name.
		if errors.Is(err, apperrors.ErrForbidden) && userID == requestingUserID && req.Role == nil && req.IsActive == nil {
			requester = user
		} else {
			return nil, err
		}
	}

	if req.Name != nil {
		user.Name = utils.NormalizeName(*req.Name)
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		if !role.Valid() || role == domain.RoleSuperAdmin {
			return nil, fmt.Errorf("invalid role %q: %w", *req.Role, apperrors.ErrValidation)
		}
		user.Role = role
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	user.LastUpdatedAt = time.Now()
	user.LastUpdatedBy = requester.UserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user",
			slog.String("user_id", userID))
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := s.requireChurchAdmin(ctx, requestingUserID, user.ChurchID); err != nil {
		return err
	}
	if userID == requestingUserID {
		return fmt.Errorf("cannot delete own account: %w", apperrors.ErrValidation)
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now(), requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to soft-delete user",
			slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}

// AuthenticateUser verifies credentials. Unknown email and wrong password
// return the same error so the response leaks nothing.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to look up user for authentication")
		return nil, err
	}
	if !user.IsActive || user.DeletedAt != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *userService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, refreshTokenHash, refreshTokenExpiryTime); err != nil {
		s.LogError(ctx, err, "Failed to update refresh token",
			slog.String("user_id", userID))
		return err
	}
	return nil
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token",
			slog.String("user_id", userID))
		return err
	}
	return nil
}
