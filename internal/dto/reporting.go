package dto

import (
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

// ReportPeriodParams bounds a report query by date.
type ReportPeriodParams struct {
	FromDate string `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
}

// FinancialSummaryResponse is the finance report for a period.
type FinancialSummaryResponse struct {
	Summary domain.FinancialSummary `json:"summary"`
}

// AttendanceReportResponse is the attendance report for a period.
type AttendanceReportResponse struct {
	Monthly []domain.MonthlyAttendance `json:"monthly"`
	ByRoom  []domain.RoomAttendance    `json:"byRoom"`
}
