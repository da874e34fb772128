package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
)

// attendanceHandler handles HTTP requests for the chamada module, including
// the visitor log.
type attendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
	visitorService    portssvc.VisitorSvcFacade
}

func newAttendanceHandler(as portssvc.AttendanceSvcFacade, vs portssvc.VisitorSvcFacade) *attendanceHandler {
	return &attendanceHandler{
		attendanceService: as,
		visitorService:    vs,
	}
}

// registerAttendanceRoutes registers the chamada module routes.
func registerAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade, visitorService portssvc.VisitorSvcFacade) {
	h := newAttendanceHandler(attendanceService, visitorService)

	chamada := rg.Group("/chamada")
	{
		chamada.GET("", h.listSessions)
		chamada.GET("/:id", h.getSession)
		chamada.POST("", h.createSession)
		chamada.GET("/visitantes", h.listVisitors)
		chamada.POST("/visitantes", h.addVisitor)
	}
}

// createSession godoc
// @Summary Record an attendance session
// @Description Submits a finalized chamada for a room on a date. Totals are derived server-side.
// @Tags attendance
// @Accept json
// @Produce json
// @Param session body dto.CreateAttendanceSessionRequest true "Session marks"
// @Success 201 {object} dto.AttendanceSessionResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/chamada [post]
func (h *attendanceHandler) createSession(c *gin.Context) {
	churchID, userID, ok := requireSession(c)
	if !ok {
		return
	}

	var req dto.CreateAttendanceSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	session, err := h.attendanceService.CreateSession(c.Request.Context(), churchID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAttendanceSessionResponse(session))
}

// getSession godoc
// @Summary Get an attendance session with its records
// @Tags attendance
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.AttendanceSessionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/chamada/{id} [get]
func (h *attendanceHandler) getSession(c *gin.Context) {
	churchID, _, ok := requireSession(c)
	if !ok {
		return
	}

	session, err := h.attendanceService.GetSession(c.Request.Context(), churchID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceSessionResponse(session))
}

// listSessions godoc
// @Summary List attendance sessions
// @Tags attendance
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.AttendanceSessionResponse
// @Security BearerAuth
// @Router /churches/{slug}/chamada [get]
func (h *attendanceHandler) listSessions(c *gin.Context) {
	churchID, _, ok := requireSession(c)
	if !ok {
		return
	}

	limit := 50
	offset := 0
	if v, err := parseQueryInt(c, "limit"); err == nil && v > 0 {
		limit = v
	}
	if v, err := parseQueryInt(c, "offset"); err == nil && v > 0 {
		offset = v
	}

	sessions, err := h.attendanceService.ListSessions(c.Request.Context(), churchID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListAttendanceSessionsResponse(sessions))
}

// addVisitor godoc
// @Summary Log a visitor
// @Tags attendance
// @Accept json
// @Produce json
// @Param visitor body dto.AddVisitorRequest true "Visitor details"
// @Success 201 {object} dto.VisitorResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/chamada/visitantes [post]
func (h *attendanceHandler) addVisitor(c *gin.Context) {
	churchID, _, ok := requireSession(c)
	if !ok {
		return
	}

	var req dto.AddVisitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	visitor, err := h.visitorService.AddVisitor(c.Request.Context(), churchID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToVisitorResponse(visitor))
}

// listVisitors godoc
// @Summary List visitors
// @Tags attendance
// @Produce json
// @Param sessionDate query string false "Filter by session date (2006-01-02)"
// @Success 200 {array} dto.VisitorResponse
// @Security BearerAuth
// @Router /churches/{slug}/chamada/visitantes [get]
func (h *attendanceHandler) listVisitors(c *gin.Context) {
	churchID, _, ok := requireSession(c)
	if !ok {
		return
	}

	var params dto.ListVisitorsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	var sessionDate *time.Time
	if params.SessionDate != "" {
		parsed, err := time.Parse(dto.DateLayout, params.SessionDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid session date"})
			return
		}
		sessionDate = &parsed
	}

	visitors, err := h.visitorService.ListVisitors(c.Request.Context(), churchID, sessionDate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListVisitorsResponse(visitors))
}
