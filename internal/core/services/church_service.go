package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portsrepo "github.com/igrejaapp/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
	"github.com/igrejaapp/igreja_backend/internal/utils"
)

// churchService implements the ChurchSvcFacade interface
type churchService struct {
	BaseService
	churchRepo  portsrepo.ChurchRepositoryWithTx
	userService portssvc.UserSvcFacade
}

// NewChurchService creates a new church service with the provided dependencies
func NewChurchService(churchRepo portsrepo.ChurchRepositoryWithTx, userService portssvc.UserSvcFacade) portssvc.ChurchSvcFacade {
	return &churchService{
		churchRepo:  churchRepo,
		userService: userService,
	}
}

var _ portssvc.ChurchSvcFacade = (*churchService)(nil)

// requireSuperAdmin verifies the requesting user holds the super_admin role.
func (s *churchService) requireSuperAdmin(ctx context.Context, requestingUserID string) error {
	user, err := s.userService.GetUserByID(ctx, requestingUserID)
	if err != nil {
		return err
	}
	if !user.IsSuperAdmin() {
		return apperrors.ErrForbidden
	}
	return nil
}

func (s *churchService) FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error) {
	church, err := s.churchRepo.FindChurchByID(ctx, churchID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find church by ID",
				slog.String("church_id", churchID))
		}
		return nil, err
	}
	return church, nil
}

func (s *churchService) FindChurchBySlug(ctx context.Context, slug string) (*domain.Church, error) {
	church, err := s.churchRepo.FindChurchBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find church by slug",
				slog.String("slug", slug))
		}
		return nil, err
	}
	return church, nil
}

// ListChurches retrieves every tenant for the super-admin control plane.
func (s *churchService) ListChurches(ctx context.Context, requestingUserID string) ([]domain.Church, error) {
	if err := s.requireSuperAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}
	churches, err := s.churchRepo.ListChurches(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list churches")
		return nil, err
	}
	if churches == nil {
		return []domain.Church{}, nil
	}
	return churches, nil
}

// RegisterChurch provisions a church together with its admin account in one
// transaction. A duplicate slug surfaces as ErrDuplicate with neither row kept.
func (s *churchService) RegisterChurch(ctx context.Context, req dto.RegisterChurchRequest) (*domain.Church, *domain.User, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if slug == domain.SystemChurchSlug {
		return nil, nil, apperrors.NewValidationFailedError("slug is reserved", nil)
	}
	if req.CNPJ != "" && !utils.IsValidCNPJ(req.CNPJ) {
		return nil, nil, apperrors.NewValidationFailedError("invalid CNPJ", nil)
	}

	plan := domain.PlanType(req.Plan)
	if req.Plan == "" {
		plan = domain.PlanFree
	}

	hash, err := utils.HashPassword(req.AdminPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash admin password for new church")
		return nil, nil, err
	}

	now := time.Now()
	churchID := uuid.NewString()
	adminID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     adminID,
		LastUpdatedAt: now,
		LastUpdatedBy: adminID,
	}

	church := domain.Church{
		ChurchID:    churchID,
		Name:        strings.TrimSpace(req.Name),
		Slug:        slug,
		CNPJ:        utils.FormatCNPJ(req.CNPJ),
		City:        req.City,
		State:       req.State,
		Address:     req.Address,
		Phone:       req.Phone,
		Pastor:      utils.NormalizeName(req.Pastor),
		AdminName:   utils.NormalizeName(req.AdminName),
		AdminEmail:  req.AdminEmail,
		Plan:        plan,
		IsActive:    true,
		AuditFields: audit,
		Version:     1,
	}
	admin := domain.User{
		UserID:       adminID,
		ChurchID:     churchID,
		Name:         utils.NormalizeName(req.AdminName),
		Email:        req.AdminEmail,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
		AuditFields:  audit,
	}

	if err := s.churchRepo.RegisterChurch(ctx, church, admin); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogInfo(ctx, "Church registration rejected for duplicate slug or email",
				slog.String("slug", slug))
		} else {
			s.LogError(ctx, err, "Failed to register church",
				slog.String("slug", slug))
		}
		return nil, nil, err
	}

	s.LogInfo(ctx, "Church registered",
		slog.String("church_id", churchID),
		slog.String("slug", slug))
	return &church, &admin, nil
}

// SetChurchStatus flips the active flag with an optimistic version check.
func (s *churchService) SetChurchStatus(ctx context.Context, churchID string, isActive bool, expectedVersion int64, requestingUserID string) (*domain.Church, error) {
	if err := s.requireSuperAdmin(ctx, requestingUserID); err != nil {
		return nil, err
	}

	church, err := s.churchRepo.FindChurchByID(ctx, churchID)
	if err != nil {
		return nil, err
	}
	if church.Version != expectedVersion {
		return nil, apperrors.NewConflictError("church " + churchID + " was modified concurrently")
	}
	if church.IsActive == isActive {
		return church, nil
	}

	if err := s.churchRepo.UpdateChurchStatus(ctx, church, isActive, requestingUserID); err != nil {
		s.LogError(ctx, err, "Failed to update church status",
			slog.String("church_id", churchID))
		return nil, err
	}

	s.LogInfo(ctx, "Church status updated",
		slog.String("church_id", churchID),
		slog.Bool("is_active", isActive))
	return s.churchRepo.FindChurchByID(ctx, churchID)
}

// DeleteChurch removes a tenant and every row scoped to it. Administrative
// escape hatch; normal flow deactivates instead.
func (s *churchService) DeleteChurch(ctx context.Context, churchID string, requestingUserID string) error {
	if err := s.requireSuperAdmin(ctx, requestingUserID); err != nil {
		return err
	}

	if _, err := s.churchRepo.FindChurchByID(ctx, churchID); err != nil {
		return err
	}

	if err := s.churchRepo.DeleteChurchCascade(ctx, churchID); err != nil {
		s.LogError(ctx, err, "Failed to cascade-delete church",
			slog.String("church_id", churchID))
		return err
	}

	s.LogInfo(ctx, "Church deleted", slog.String("church_id", churchID))
	return nil
}
