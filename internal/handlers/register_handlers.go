package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/middleware"
	"github.com/igrejaapp/igreja_backend/internal/platform/config"
	"github.com/igrejaapp/igreja_backend/internal/utils"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Setup API v1 routes with the guard chain, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// registerCustomValidators wires the Brazilian document checks into the binding
// layer so `binding:"cpf"` and `binding:"cnpj"` tags work on DTOs.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return utils.IsValidCPF(fl.Field().String())
	})
	_ = v.RegisterValidation("cnpj", func(fl validator.FieldLevel) bool {
		return utils.IsValidCNPJ(fl.Field().String())
	})
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	// Super-admin control plane. Authorization is enforced in the services.
	registerSuperAdminRoutes(v1, services)

	// Tenant namespace behind the full guard chain: auth, then church access,
	// then per-module matrix check on everything below the slug.
	church := v1.Group("/churches/:slug",
		middleware.ChurchAccessMiddleware(services.Session, services.Church))

	registerBootstrapRoutes(church, services)

	guarded := church.Group("", middleware.ModuleAccessMiddleware())
	registerDashboardRoutes(guarded, services)
	registerMemberRoutes(guarded, services.Member)
	registerAttendanceRoutes(guarded, services.Attendance, services.Visitor)
	registerRoomRoutes(guarded, services.Room)
	registerReportingRoutes(guarded, services.Reporting)
	registerFinancialRoutes(guarded, services.Financial)
	registerSettingsRoutes(guarded, services)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// parseQueryInt reads an integer query parameter.
func parseQueryInt(c *gin.Context, name string) (int, error) {
	return strconv.Atoi(c.Query(name))
}

// respondError maps service failures onto HTTP status codes uniformly.
func respondError(c *gin.Context, err error) {
	var roomInUse *apperrors.RoomInUseError
	switch {
	case errors.As(err, &roomInUse):
		c.JSON(http.StatusConflict, ErrorResponse{Error: roomInUse.Error()})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrProfileNotFound):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Profile not found"})
	case errors.Is(err, apperrors.ErrChurchInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": "Church is inactive", "code": "church_inactive"})
	case errors.Is(err, apperrors.ErrCrossChurchAccess):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Access to another church is not allowed"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Resource not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
