package services

import (
	"context"
	"time"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// ReportingSvcFacade serves the reports module aggregations.
type ReportingSvcFacade interface {
	// GetFinancialSummary aggregates a church's transactions in [from, to].
	GetFinancialSummary(ctx context.Context, churchID string, from, to time.Time) (*domain.FinancialSummary, error)

	// GetMonthlyAttendance aggregates attendance per month over the last months.
	GetMonthlyAttendance(ctx context.Context, churchID string, months int) ([]domain.MonthlyAttendance, error)

	// GetRoomAttendance aggregates attendance per room.
	GetRoomAttendance(ctx context.Context, churchID string) ([]domain.RoomAttendance, error)
}
