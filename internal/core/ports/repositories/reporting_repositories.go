package repositories

import (
	"context"
	"time"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// ReportingRepositoryFacade defines read-only aggregation queries for the
// reports module. All queries are scoped by church.
type ReportingRepositoryFacade interface {
	// GetFinancialSummary aggregates transactions in [from, to].
	GetFinancialSummary(ctx context.Context, churchID string, from, to time.Time) (*domain.FinancialSummary, error)

	// GetMonthlyAttendance aggregates attendance per month over the last months.
	GetMonthlyAttendance(ctx context.Context, churchID string, months int) ([]domain.MonthlyAttendance, error)

	// GetRoomAttendance aggregates attendance per room.
	GetRoomAttendance(ctx context.Context, churchID string) ([]domain.RoomAttendance, error)
}
