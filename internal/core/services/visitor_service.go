package services

import (
	"context"
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

// visitorService implements the VisitorSvcFacade interface
type visitorService struct {
	BaseService
	visitorRepo portsrepo.VisitorRepositoryFacade
	roomRepo    portsrepo.RoomReader
}

// NewVisitorService creates a new visitor service with the provided dependencies
func NewVisitorService(visitorRepo portsrepo.VisitorRepositoryFacade, roomRepo portsrepo.RoomReader) portssvc.VisitorSvcFacade {
	return &visitorService{
		visitorRepo: visitorRepo,
		roomRepo:    roomRepo,
	}
}

var _ portssvc.VisitorSvcFacade = (*visitorService)(nil)

// AddVisitor logs a walk-in. The room name is denormalized onto the entry so
// the log survives later room renames.
func (s *visitorService) AddVisitor(ctx context.Context, churchID string, req dto.AddVisitorRequest) (*domain.Visitor, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if room.ChurchID != churchID {
		return nil, apperrors.ErrNotFound
	}

	sessionDate, err := time.Parse(dto.DateLayout, req.SessionDate)
	if err != nil {
		return nil, apperrors.NewValidationFailedError("invalid session date", err)
	}

	visitor := domain.Visitor{
		VisitorID:    uuid.NewString(),
		ChurchID:     churchID,
		RoomID:       room.RoomID,
		RoomName:     room.Name,
		SessionDate:  sessionDate,
		Name:         utils.NormalizeName(req.Name),
		Address:      req.Address,
		Phone:        req.Phone,
		RegisteredAt: time.Now(),
	}

	if err := s.visitorRepo.SaveVisitor(ctx, visitor); err != nil {
		s.LogError(ctx, err, "Failed to save visitor",
			slog.String("church_id", churchID))
		return nil, err
	}

	s.LogInfo(ctx, "Visitor logged",
		slog.String("visitor_id", visitor.VisitorID),
		slog.String("room_id", room.RoomID))
	return &visitor, nil
}

func (s *visitorService) ListVisitors(ctx context.Context, churchID string, sessionDate *time.Time) ([]domain.Visitor, error) {
	visitors, err := s.visitorRepo.ListVisitorsByChurchID(ctx, churchID, sessionDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to list visitors",
			slog.String("church_id", churchID))
		return nil, err
	}
	if visitors == nil {
		return []domain.Visitor{}, nil
	}
	return visitors, nil
}
