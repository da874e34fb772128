package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
	"github.com/igrejaapp/igreja_backend/internal/middleware"
)

// memberHandler handles HTTP requests for the membros module.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: ms}
}

// registerMemberRoutes registers all member roster routes.
func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	members := rg.Group("/membros")
	{
		members.GET("", h.listMembers)
		members.GET("/:id", h.getMember)
		members.POST("", h.createMember)
		members.PUT("/:id", h.updateMember)
		members.DELETE("/:id", h.deleteMember)
	}
}

// requireSession pulls the guard-resolved session or aborts with 401.
func requireSession(c *gin.Context) (churchID, userID string, ok bool) {
	session, found := middleware.GetSessionFromContext(c)
	if !found {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return "", "", false
	}
	return session.Church.ChurchID, session.User.UserID, true
}

// listMembers godoc
// @Summary List members
// @Tags members
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.MemberResponse
// @Security BearerAuth
// @Router /churches/{slug}/membros [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	churchID, _, ok := requireSession(c)
	if !ok {
		return
	}

	var params dto.ListMembersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	members, err := h.memberService.ListMembers(c.Request.Context(), churchID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}

// getMember godoc
// @Summary Get a member by ID
// @Tags members
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} dto.MemberResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/membros/{id} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	churchID, _, ok := requireSession(c)
	if !ok {
		return
	}

	member, err := h.memberService.GetMemberByID(c.Request.Context(), churchID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// createMember godoc
// @Summary Register a member
// @Tags members
// @Accept json
// @Produce json
// @Param member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/membros [post]
func (h *memberHandler) createMember(c *gin.Context) {
	churchID, userID, ok := requireSession(c)
	if !ok {
		return
	}

	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), churchID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger := middleware.GetLoggerFromContext(c)
	logger.Info("Member created", slog.String("member_id", member.MemberID))
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

// updateMember godoc
// @Summary Update a member
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param member body dto.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/membros/{id} [put]
func (h *memberHandler) updateMember(c *gin.Context) {
	churchID, userID, ok := requireSession(c)
	if !ok {
		return
	}

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), churchID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

// deleteMember godoc
// @Summary Remove a member
// @Tags members
// @Param id path string true "Member ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/membros/{id} [delete]
func (h *memberHandler) deleteMember(c *gin.Context) {
	churchID, _, ok := requireSession(c)
	if !ok {
		return
	}

	if err := h.memberService.DeleteMember(c.Request.Context(), churchID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
