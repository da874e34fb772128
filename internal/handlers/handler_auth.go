package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
	"github.com/igrejaapp/igreja_backend/internal/dto"
	"github.com/igrejaapp/igreja_backend/internal/middleware"
	"github.com/igrejaapp/igreja_backend/internal/platform/config"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	sessionService portssvc.SessionSvcFacade
	tokenService   portssvc.TokenSvcFacade
	churchService  portssvc.ChurchSvcFacade
	cfg            *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		sessionService: services.Session,
		tokenService:   services.Token,
		churchService:  services.Church,
		cfg:            cfg,
	}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewAuthHandler(services, cfg)

	// Rate limit: 5 requests per minute per IP on credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.Login)
		auth.POST("/register-church", limitMiddleware, h.RegisterChurch)
		auth.POST("/refresh", h.Refresh)
	}

	authed := r.Group("/api/v1/auth", middleware.AuthMiddleware(cfg.JWTSecret))
	{
		authed.GET("/session", h.Session)
		authed.POST("/logout", h.Logout)
		authed.POST("/change-password", h.ChangePassword)
	}
}

// setRefreshCookie writes the HTTP-only refresh cookie. The value carries the
// user id alongside the raw token so the refresh endpoint can look up the
// stored hash without a body.
func (h *AuthHandler) setRefreshCookie(c *gin.Context, userID, rawToken string, maxAge int) {
	c.SetCookie(
		h.cfg.RefreshTokenCookieName,
		userID+"."+rawToken,
		maxAge,
		h.cfg.RefreshTokenCookiePath,
		"",
		h.cfg.IsProduction,
		true,
	)
}

// Login godoc
// @Summary User login
// @Description Authenticates a user against a church slug and returns a JWT plus the resolved session.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	session, err := h.sessionService.Login(c.Request.Context(), req.Email, req.Password, req.Slug)
	if err != nil {
		respondError(c, err)
		return
	}

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), &session.User)
	if err != nil {
		respondError(c, err)
		return
	}

	refreshToken, _, err := h.tokenService.IssueRefreshToken(c.Request.Context(), &session.User)
	if err != nil {
		respondError(c, err)
		return
	}
	h.setRefreshCookie(c, session.User.UserID, refreshToken, int(h.cfg.RefreshTokenExpiryDuration.Seconds()))

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     accessToken,
		ExpiresAt: expiresAt,
		Session:   dto.ToSessionResponse(session),
	})
}

// Refresh godoc
// @Summary Refresh access token
// @Description Exchanges the refresh cookie for a new access token.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.RefreshResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	cookie, err := c.Cookie(h.cfg.RefreshTokenCookieName)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Refresh cookie missing"})
		return
	}
	userID, rawToken, found := strings.Cut(cookie, ".")
	if !found || userID == "" || rawToken == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Malformed refresh cookie"})
		return
	}

	user, err := h.tokenService.ValidateRefreshToken(c.Request.Context(), userID, rawToken)
	if err != nil {
		respondError(c, err)
		return
	}

	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	// Rotate the refresh token on every use.
	newRefresh, _, err := h.tokenService.IssueRefreshToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	h.setRefreshCookie(c, user.UserID, newRefresh, int(h.cfg.RefreshTokenExpiryDuration.Seconds()))

	c.JSON(http.StatusOK, dto.RefreshResponse{Token: accessToken, ExpiresAt: expiresAt})
}

// Session godoc
// @Summary Resolve the current session
// @Description Returns the authenticated user, church and effective permissions.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	session, err := h.sessionService.ResolveSession(c.Request.Context(), userID)
	if err != nil {
		// A valid token with no matching profile means the account is gone;
		// the client must drop its credentials rather than retry.
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			h.setRefreshCookie(c, "", "", -1)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Profile not found", "force_logout": true})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(session))
}

// Logout godoc
// @Summary Log out
// @Description Revokes the refresh token and clears the cookie.
// @Tags auth
// @Success 204
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.tokenService.RevokeRefreshToken(c.Request.Context(), userID); err != nil {
		logger := middleware.GetLoggerFromContext(c)
		logger.Error("Failed to revoke refresh token on logout", slog.String("error", err.Error()))
	}
	h.setRefreshCookie(c, "", "", -1)

	c.Status(http.StatusNoContent)
}

// ChangePassword godoc
// @Summary Change password
// @Description Verifies the current password before storing the new one.
// @Tags auth
// @Accept json
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	if err := h.sessionService.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterChurch godoc
// @Summary Register a new church
// @Description Provisions a church together with its administrator account atomically.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterChurchRequest true "Church and admin details"
// @Success 201 {object} dto.RegisterChurchResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slug or email already taken"
// @Router /auth/register-church [post]
func (h *AuthHandler) RegisterChurch(c *gin.Context) {
	var req dto.RegisterChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	church, admin, err := h.churchService.RegisterChurch(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterChurchResponse{
		Church: dto.ToChurchResponse(church),
		Admin:  dto.ToUserResponse(admin),
	})
}
