package repositories

import (
	"context"
	"time"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// VisitorRepositoryFacade defines operations for the visitor log.
type VisitorRepositoryFacade interface {
	// SaveVisitor persists a visitor entry.
	SaveVisitor(ctx context.Context, visitor domain.Visitor) error

	// ListVisitorsByChurchID retrieves a church's visitors, optionally filtered
	// to a single session date.
	ListVisitorsByChurchID(ctx context.Context, churchID string, sessionDate *time.Time) ([]domain.Visitor, error)
}
