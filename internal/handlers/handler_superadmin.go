package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
	"github.com/igrejaapp/igreja_backend/internal/middleware"
)

// superAdminHandler handles the tenant control plane. The service layer
// enforces the super-admin role on every operation.
type superAdminHandler struct {
	churchService portssvc.ChurchSvcFacade
	userService   portssvc.UserSvcFacade
}

func newSuperAdminHandler(cs portssvc.ChurchSvcFacade, us portssvc.UserSvcFacade) *superAdminHandler {
	return &superAdminHandler{churchService: cs, userService: us}
}

// registerSuperAdminRoutes registers the control plane routes.
func registerSuperAdminRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newSuperAdminHandler(services.Church, services.User)

	superadmin := rg.Group("/superadmin")
	{
		superadmin.GET("/churches", h.listChurches)
		superadmin.PATCH("/churches/:id/status", h.updateChurchStatus)
		superadmin.DELETE("/churches/:id", h.deleteChurch)
		superadmin.POST("/churches/:id/usuarios", h.createChurchUser)
	}
}

// listChurches godoc
// @Summary List all churches
// @Tags superadmin
// @Produce json
// @Success 200 {array} dto.ChurchResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /superadmin/churches [get]
func (h *superAdminHandler) listChurches(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	churches, err := h.churchService.ListChurches(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListChurchesResponse(churches))
}

// updateChurchStatus godoc
// @Summary Activate or deactivate a church
// @Description Rejects the update when the given version no longer matches the stored row.
// @Tags superadmin
// @Accept json
// @Produce json
// @Param id path string true "Church ID"
// @Param status body dto.UpdateChurchStatusRequest true "Desired status and expected version"
// @Success 200 {object} dto.ChurchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /superadmin/churches/{id}/status [patch]
func (h *superAdminHandler) updateChurchStatus(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateChurchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	church, err := h.churchService.SetChurchStatus(c.Request.Context(), c.Param("id"), *req.IsActive, req.Version, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToChurchResponse(church))
}

// deleteChurch godoc
// @Summary Delete a church and all its data
// @Tags superadmin
// @Param id path string true "Church ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /superadmin/churches/{id} [delete]
func (h *superAdminHandler) deleteChurch(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.churchService.DeleteChurch(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// createChurchUser godoc
// @Summary Create a staff account in any church
// @Tags superadmin
// @Accept json
// @Produce json
// @Param id path string true "Church ID"
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /superadmin/churches/{id}/usuarios [post]
func (h *superAdminHandler) createChurchUser(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}
