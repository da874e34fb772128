package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
	"github.com/igrejaapp/igreja_backend/internal/middleware"
)

// dashboardHandler serves the dashboard module overview.
type dashboardHandler struct {
	reportingService  portssvc.ReportingSvcFacade
	attendanceService portssvc.AttendanceSvcFacade
}

func newDashboardHandler(services *portssvc.ServiceContainer) *dashboardHandler {
	return &dashboardHandler{
		reportingService:  services.Reporting,
		attendanceService: services.Attendance,
	}
}

// registerDashboardRoutes registers the dashboard module routes.
func registerDashboardRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newDashboardHandler(services)
	rg.GET("/dashboard", h.overview)
}

// overview godoc
// @Summary Dashboard overview
// @Description Returns member counts, recent attendance sessions and the monthly attendance series.
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/dashboard [get]
func (h *dashboardHandler) overview(c *gin.Context) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := session.Church.ChurchID

	monthly, err := h.reportingService.GetMonthlyAttendance(c.Request.Context(), churchID, 6)
	if err != nil {
		respondError(c, err)
		return
	}
	recent, err := h.attendanceService.ListSessions(c.Request.Context(), churchID, 5, 0)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"church":            dto.ToChurchResponse(&session.Church),
		"membersCount":      session.Church.MembersCount,
		"monthlyAttendance": monthly,
		"recentSessions":    dto.ToListAttendanceSessionsResponse(recent),
	})
}
