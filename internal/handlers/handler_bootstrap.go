package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
	"github.com/igrejaapp/igreja_backend/internal/middleware"
)

// bootstrapHandler serves the initial workspace load after session resolution.
type bootstrapHandler struct {
	memberService portssvc.MemberSvcFacade
	roomService   portssvc.RoomSvcFacade
	userService   portssvc.UserSvcFacade
}

func newBootstrapHandler(services *portssvc.ServiceContainer) *bootstrapHandler {
	return &bootstrapHandler{
		memberService: services.Member,
		roomService:   services.Room,
		userService:   services.User,
	}
}

// registerBootstrapRoutes registers the workspace bootstrap endpoint. It sits
// behind church access but outside the module guard: every role that can enter
// the church may load the workspace.
func registerBootstrapRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newBootstrapHandler(services)
	rg.GET("/bootstrap", h.bootstrap)
}

// bootstrap godoc
// @Summary Load the church workspace dataset
// @Description Returns the church, members, rooms and staff in one round trip.
// @Tags bootstrap
// @Produce json
// @Success 200 {object} dto.BootstrapResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/bootstrap [get]
func (h *bootstrapHandler) bootstrap(c *gin.Context) {
	session, ok := middleware.GetSessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	churchID := session.Church.ChurchID

	members, err := h.memberService.ListMembers(c.Request.Context(), churchID, 200, 0)
	if err != nil {
		respondError(c, err)
		return
	}
	rooms, err := h.roomService.ListRooms(c.Request.Context(), churchID)
	if err != nil {
		respondError(c, err)
		return
	}
	users, err := h.userService.ListChurchUsers(c.Request.Context(), churchID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BootstrapResponse{
		Church:  dto.ToChurchResponse(&session.Church),
		Members: dto.ToListMembersResponse(members),
		Rooms:   dto.ToListRoomsResponse(rooms),
		Users:   dto.ToListUsersResponse(users),
	})
}
