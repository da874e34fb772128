package services

import (
	"context"
	"time"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	"github.com/igrejaapp/igreja_backend/internal/dto"
)

// VisitorSvcFacade manages the visitor log.
type VisitorSvcFacade interface {
	// AddVisitor logs a visitor against a room and session date.
	AddVisitor(ctx context.Context, churchID string, req dto.AddVisitorRequest) (*domain.Visitor, error)

	// ListVisitors retrieves a church's visitors, optionally for one session date.
	ListVisitors(ctx context.Context, churchID string, sessionDate *time.Time) ([]domain.Visitor, error)
}
