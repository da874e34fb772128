package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
)

// settingsHandler handles HTTP requests for the configuracoes module: staff
// accounts and the permission matrix.
type settingsHandler struct {
	userService       portssvc.UserSvcFacade
	permissionService portssvc.PermissionSvcFacade
}

func newSettingsHandler(services *portssvc.ServiceContainer) *settingsHandler {
	return &settingsHandler{
		userService:       services.User,
		permissionService: services.Permission,
	}
}

// registerSettingsRoutes registers the configuracoes module routes.
func registerSettingsRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newSettingsHandler(services)

	configuracoes := rg.Group("/configuracoes")
	{
		configuracoes.GET("/usuarios", h.listUsers)
		configuracoes.POST("/usuarios", h.createUser)
		configuracoes.PUT("/usuarios/:id", h.updateUser)
		configuracoes.DELETE("/usuarios/:id", h.deleteUser)

		configuracoes.GET("/permissoes", h.getPermissionMatrix)
		configuracoes.PUT("/permissoes/:role", h.updateRolePermission)
	}
}

// listUsers godoc
// @Summary List a church's staff accounts
// @Tags settings
// @Produce json
// @Success 200 {array} dto.UserResponse
// @Security BearerAuth
// @Router /churches/{slug}/configuracoes/usuarios [get]
func (h *settingsHandler) listUsers(c *gin.Context) {
	churchID, _, ok := requireSession(c)
	if !ok {
		return
	}

	users, err := h.userService.ListChurchUsers(c.Request.Context(), churchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// createUser godoc
// @Summary Create a staff account
// @Tags settings
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/configuracoes/usuarios [post]
func (h *settingsHandler) createUser(c *gin.Context) {
	churchID, userID, ok := requireSession(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), churchID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// updateUser godoc
// @Summary Update a staff account
// @Tags settings
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/configuracoes/usuarios/{id} [put]
func (h *settingsHandler) updateUser(c *gin.Context) {
	_, userID, ok := requireSession(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// deleteUser godoc
// @Summary Delete a staff account
// @Tags settings
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/configuracoes/usuarios/{id} [delete]
func (h *settingsHandler) deleteUser(c *gin.Context) {
	_, userID, ok := requireSession(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// getPermissionMatrix godoc
// @Summary Get the effective permission matrix
// @Tags settings
// @Produce json
// @Success 200 {object} dto.PermissionMatrixResponse
// @Security BearerAuth
// @Router /churches/{slug}/configuracoes/permissoes [get]
func (h *settingsHandler) getPermissionMatrix(c *gin.Context) {
	churchID, _, ok := requireSession(c)
	if !ok {
		return
	}

	matrix, err := h.permissionService.GetMatrix(c.Request.Context(), churchID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPermissionMatrixResponse(churchID, matrix))
}

// updateRolePermission godoc
// @Summary Replace the module flags for one role
// @Description Unknown module keys are ignored; the module set is a closed enum.
// @Tags settings
// @Accept json
// @Produce json
// @Param role path string true "Role (admin, pastor, secretary, treasurer)"
// @Param permissions body dto.UpdatePermissionRequest true "Module flags"
// @Success 200 {object} dto.RolePermissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /churches/{slug}/configuracoes/permissoes/{role} [put]
func (h *settingsHandler) updateRolePermission(c *gin.Context) {
	churchID, userID, ok := requireSession(c)
	if !ok {
		return
	}

	var req dto.UpdatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	// Unknown keys are dropped rather than rejected; the guard only ever
	// consults the closed module enum, so they could never grant access.
	flags := make(domain.ModuleFlags, len(req.Modules))
	for key, allowed := range req.Modules {
		if module, known := domain.ParseModule(key); known {
			flags[module] = allowed
		}
	}

	role := domain.UserRole(c.Param("role"))
	stored, err := h.permissionService.UpdateRolePermission(c.Request.Context(), churchID, role, flags, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.RolePermissionResponse{
		Role:      string(role),
		RoleLabel: role.Label(),
		Modules:   stored,
	})
}
