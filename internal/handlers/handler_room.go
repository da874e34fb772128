package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
)

// roomHandler handles HTTP requests for room management. Rooms live under the
// chamada module since sessions are always taken per room.
type roomHandler struct {
	roomService portssvc.RoomSvcFacade
}

func newRoomHandler(rs portssvc.RoomSvcFacade) *roomHandler {
	return &roomHandler{roomService: rs}
}

// registerRoomRoutes registers the room management routes.
func registerRoomRoutes(rg *gin.RouterGroup, roomService portssvc.RoomSvcFacade) {
	h := newRoomHandler(roomService)

	salas := rg.Group("/chamada/salas")
	{
		salas.GET("", h.listRooms)
		salas.POST("", h.createRoom)
		salas.PUT("/:id", h.updateRoom)
		salas.DELETE("/:id", h.deleteRoom)
	}
}

// listRooms godoc
// @Summary List a church's rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} dto.RoomResponse
// @Security BearerAuth
// @Router /churches/{slug}/chamada/salas [get]
func (h *roomHandler) listRooms(c *gin.Context) {
	churchID, _, ok := requireSession(c)
	if !ok {
		return
	}

	rooms, err := h.roomService.ListRooms(c.Request.Context(), churchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListRoomsResponse(rooms))
}

// createRoom godoc
// @Summary Create a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param room body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/chamada/salas [post]
func (h *roomHandler) createRoom(c *gin.Context) {
	churchID, userID, ok := requireSession(c)
	if !ok {
		return
	}

	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	room, err := h.roomService.CreateRoom(c.Request.Context(), churchID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

// updateRoom godoc
// @Summary Update a room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param room body dto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/chamada/salas/{id} [put]
func (h *roomHandler) updateRoom(c *gin.Context) {
	churchID, userID, ok := requireSession(c)
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	room, err := h.roomService.UpdateRoom(c.Request.Context(), churchID, c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRoomResponse(room))
}

// deleteRoom godoc
// @Summary Delete a room
// @Description Fails with 409 naming the active member count when members are still assigned.
// @Tags rooms
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/chamada/salas/{id} [delete]
func (h *roomHandler) deleteRoom(c *gin.Context) {
	churchID, _, ok := requireSession(c)
	if !ok {
		return
	}

	if err := h.roomService.DeleteRoom(c.Request.Context(), churchID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
