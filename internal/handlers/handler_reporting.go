package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
)

// reportingHandler handles HTTP requests for the relatorios module.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the relatorios module routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	relatorios := rg.Group("/relatorios")
	{
		relatorios.GET("/financeiro", h.financialSummary)
		relatorios.GET("/chamada", h.attendanceReport)
	}
}

// financialSummary godoc
// @Summary Financial summary report
// @Description Aggregates income, expenses and per-category totals for the period.
// @Tags reporting
// @Produce json
// @Param fromDate query string false "Period start (YYYY-MM-DD)"
// @Param toDate query string false "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/relatorios/financeiro [get]
func (h *reportingHandler) financialSummary(c *gin.Context) {
	churchID, _, ok := requireSession(c)
	if !ok {
		return
	}

	var params dto.ReportPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var from, to time.Time
	if params.FromDate != "" {
		from, _ = time.Parse(dto.DateLayout, params.FromDate)
	}
	if params.ToDate != "" {
		to, _ = time.Parse(dto.DateLayout, params.ToDate)
	}

	summary, err := h.reportingService.GetFinancialSummary(c.Request.Context(), churchID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FinancialSummaryResponse{Summary: *summary})
}

// attendanceReport godoc
// @Summary Attendance report
// @Description Returns monthly attendance totals and a per-room breakdown.
// @Tags reporting
// @Produce json
// @Param months query int false "How many months back (default 6, max 24)"
// @Success 200 {object} dto.AttendanceReportResponse
// @Security BearerAuth
// @Router /churches/{slug}/relatorios/chamada [get]
func (h *reportingHandler) attendanceReport(c *gin.Context) {
	churchID, _, ok := requireSession(c)
	if !ok {
		return
	}

	months, _ := parseQueryInt(c, "months")

	monthly, err := h.reportingService.GetMonthlyAttendance(c.Request.Context(), churchID, months)
	if err != nil {
		respondError(c, err)
		return
	}

	byRoom, err := h.reportingService.GetRoomAttendance(c.Request.Context(), churchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AttendanceReportResponse{Monthly: monthly, ByRoom: byRoom})
}
