package services

import (
	"context"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	"github.com/igrejaapp/igreja_backend/internal/dto"
)

// ChurchReaderSvc defines read operations for church data.
type ChurchReaderSvc interface {
	// FindChurchByID retrieves a specific church by its ID.
	FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error)

	// FindChurchBySlug retrieves a church by its unique URL slug.
	FindChurchBySlug(ctx context.Context, slug string) (*domain.Church, error)

	// ListChurches retrieves all churches for the super-admin control plane.
	ListChurches(ctx context.Context, requestingUserID string) ([]domain.Church, error)
}

// ChurchLifecycleSvc defines tenant lifecycle operations.
type ChurchLifecycleSvc interface {
	// RegisterChurch provisions a new church with its administrator account in
	// one transaction. A duplicate slug fails all-or-nothing.
	RegisterChurch(ctx context.Context, req dto.RegisterChurchRequest) (*domain.Church, *domain.User, error)

	// SetChurchStatus activates or deactivates a church (super admin only).
	// expectedVersion must match the stored row or the update is rejected.
	SetChurchStatus(ctx context.Context, churchID string, isActive bool, expectedVersion int64, requestingUserID string) (*domain.Church, error)

	// DeleteChurch cascade-deletes a church and all its data (super admin only).
	DeleteChurch(ctx context.Context, churchID string, requestingUserID string) error
}

// ChurchSvcFacade combines all church-related service interfaces.
type ChurchSvcFacade interface {
	ChurchReaderSvc
	ChurchLifecycleSvc
}
