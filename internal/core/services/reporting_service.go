package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portsrepo "github.com/igrejaapp/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
)

// reportingService implements the ReportingSvcFacade interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepositoryFacade
}

// NewReportingService creates a new reporting service with the provided dependencies
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GetFinancialSummary aggregates transactions in [from, to]. A zero from
// defaults to the start of the current year, a zero to defaults to now.
func (s *reportingService) GetFinancialSummary(ctx context.Context, churchID string, from, to time.Time) (*domain.FinancialSummary, error) {
	now := time.Now()
	if from.IsZero() {
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	if to.IsZero() {
		to = now
	}

	summary, err := s.reportingRepo.GetFinancialSummary(ctx, churchID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to build financial summary",
			slog.String("church_id", churchID))
		return nil, err
	}
	return summary, nil
}

// GetMonthlyAttendance aggregates attendance per month over the last months.
func (s *reportingService) GetMonthlyAttendance(ctx context.Context, churchID string, months int) ([]domain.MonthlyAttendance, error) {
	if months <= 0 || months > 24 {
		months = 6
	}
	data, err := s.reportingRepo.GetMonthlyAttendance(ctx, churchID, months)
	if err != nil {
		s.LogError(ctx, err, "Failed to build monthly attendance report",
			slog.String("church_id", churchID))
		return nil, err
	}
	if data == nil {
		return []domain.MonthlyAttendance{}, nil
	}
	return data, nil
}

// GetRoomAttendance aggregates attendance per room.
func (s *reportingService) GetRoomAttendance(ctx context.Context, churchID string) ([]domain.RoomAttendance, error) {
	data, err := s.reportingRepo.GetRoomAttendance(ctx, churchID)
	if err != nil {
		s.LogError(ctx, err, "Failed to build room attendance report",
			slog.String("church_id", churchID))
		return nil, err
	}
	if data == nil {
		return []domain.RoomAttendance{}, nil
	}
	return data, nil
}
