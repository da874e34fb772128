package repositories

import (
	"context"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// ChurchReader defines read operations for church (tenant) data.
type ChurchReader interface {
	// FindChurchByID retrieves a specific church by its ID.
	FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error)

	// FindChurchBySlug retrieves a church by its unique URL slug.
	FindChurchBySlug(ctx context.Context, slug string) (*domain.Church, error)

	// ListChurches retrieves all churches with derived member counts,
	// for the super-admin control plane.
	ListChurches(ctx context.Context) ([]domain.Church, error)
}

// ChurchWriter defines write operations for church data.
type ChurchWriter interface {
	// RegisterChurch persists a new church together with its administrator user
	// in a single transaction. Either both rows exist afterwards or neither does.
	RegisterChurch(ctx context.Context, church domain.Church, admin domain.User) error

	// UpdateChurchStatus flips the active flag with an optimistic version check.
	UpdateChurchStatus(ctx context.Context, church *domain.Church, isActive bool, updatedByUserID string) error

	// DeleteChurchCascade removes a church and every row scoped to it.
	// Administrative escape hatch; normal flow deactivates instead.
	DeleteChurchCascade(ctx context.Context, churchID string) error
}

// ChurchRepositoryFacade combines all church-related repository interfaces.
type ChurchRepositoryFacade interface {
	ChurchReader
	ChurchWriter
}

// ChurchRepositoryWithTx extends ChurchRepositoryFacade with transaction capabilities.
type ChurchRepositoryWithTx interface {
	ChurchRepositoryFacade
	TransactionManager
}
