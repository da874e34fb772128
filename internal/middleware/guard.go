package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
	portssvc "github.com/igrejaapp/igreja_backend/internal/core/ports/services"
)

// SetSessionInContext stores the resolved session in the Gin context for
// downstream handlers.
func SetSessionInContext(c *gin.Context, session *domain.Session) {
	c.Set(string(sessionKey), session)
}

// GetSessionFromContext retrieves the session stored by ChurchAccessMiddleware.
func GetSessionFromContext(c *gin.Context) (*domain.Session, bool) {
	val, exists := c.Get(string(sessionKey))
	if !exists {
		return nil, false
	}
	session, ok := val.(*domain.Session)
	if !ok {
		return nil, false
	}
	return session, ok
}

// ChurchAccessMiddleware resolves the caller's session and enforces tenant
// isolation on /churches/:slug routes. A slug mismatch redirects the caller to
// their own dashboard; an inactive church denies every module uniformly. Super
// admins may enter any active tenant's namespace.
func ChurchAccessMiddleware(sessionSvc portssvc.SessionResolverSvc, churchSvc portssvc.ChurchReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "Authentication required",
				"redirect": "/login",
			})
			return
		}

		session, err := sessionSvc.ResolveSession(c.Request.Context(), userID)
		if err != nil {
			abortSessionError(c, err)
			return
		}

		slug := c.Param("slug")

		if session.User.IsSuperAdmin() {
			if slug != domain.SystemChurchSlug {
				// Swap the synthetic church for the tenant being visited.
				church, err := churchSvc.FindChurchBySlug(c.Request.Context(), slug)
				if err != nil {
					abortSessionError(c, err)
					return
				}
				if !church.IsActive {
					c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
						"error": "Church is inactive",
						"code":  "church_inactive",
					})
					return
				}
				session.Church = *church
			}
			SetSessionInContext(c, session)
			c.Next()
			return
		}

		if session.Church.Slug != slug {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Access to another church is not allowed",
				"redirect": session.DashboardPath(),
			})
			return
		}

		SetSessionInContext(c, session)
		c.Next()
	}
}

// ModuleAccessMiddleware maps the first path segment after the church slug to a
// module and consults the session's permission matrix. Unknown segments are
// denied; a typo can never widen access.
func ModuleAccessMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSessionFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":    "Authentication required",
				"redirect": "/login",
			})
			return
		}

		segment := moduleSegment(c.Request.URL.Path, c.Param("slug"))
		module, known := domain.ParseModule(segment)
		if !known || !session.CanAccess(module) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":    "Permission denied",
				"redirect": session.DashboardPath(),
			})
			return
		}

		c.Next()
	}
}

// moduleSegment extracts the path segment that follows the church slug.
func moduleSegment(path, slug string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, part := range parts {
		if part == slug && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}

// abortSessionError maps session resolution failures to guard responses.
func abortSessionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrProfileNotFound):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":    "Profile not found",
			"redirect": "/login",
		})
	case errors.Is(err, apperrors.ErrChurchInactive):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Church is inactive",
			"code":  "church_inactive",
		})
	case errors.Is(err, apperrors.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error": "Church not found",
		})
	default:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to resolve session",
		})
	}
}
