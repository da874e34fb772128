package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/igrejaapp/igreja_backend/internal/apperrors"
	"github.com/igrejaapp/igreja_backend/internal/core/domain"
)

type stubSessionResolver struct {
	session *domain.Session
	err     error
}

func (s *stubSessionResolver) ResolveSession(ctx context.Context, userID string) (*domain.Session, error) {
	return s.session, s.err
}

type stubChurchReader struct {
	church *domain.Church
	err    error
}

func (s *stubChurchReader) FindChurchByID(ctx context.Context, churchID string) (*domain.Church, error) {
	return s.church, s.err
}

func (s *stubChurchReader) FindChurchBySlug(ctx context.Context, slug string) (*domain.Church, error) {
	return s.church, s.err
}

func (s *stubChurchReader) ListChurches(ctx context.Context, requestingUserID string) ([]domain.Church, error) {
	return nil, s.err
}

func tenantSession(slug string, role domain.UserRole) *domain.Session {
	return &domain.Session{
		User:        domain.User{UserID: "u1", ChurchID: "c1", Role: role, IsActive: true},
		Church:      domain.Church{ChurchID: "c1", Slug: slug, IsActive: true},
		Permissions: domain.DefaultPermissionMatrix(),
	}
}

// guardRouter wires the guard chain the way the API does, with a stub in place
// of the JWT middleware.
func guardRouter(resolver *stubSessionResolver, churches *stubChurchReader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(string(userIDKey), "u1")
	})
	church := r.Group("/api/v1/churches/:slug", ChurchAccessMiddleware(resolver, churches))
	guarded := church.Group("", ModuleAccessMiddleware())
	guarded.GET("/:module", func(c *gin.Context) {
		session, ok := GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"church": session.Church.ChurchID})
	})
	return r
}

func doGuarded(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGuard_OwnSlugAllowed(t *testing.T) {
	resolver := &stubSessionResolver{session: tenantSession("betel", domain.RoleSecretary)}
	r := guardRouter(resolver, &stubChurchReader{})

	w := doGuarded(r, "/api/v1/churches/betel/membros")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "c1")
}

func TestGuard_CrossSlugRedirectsToOwnDashboard(t *testing.T) {
	resolver := &stubSessionResolver{session: tenantSession("betel", domain.RoleSecretary)}
	r := guardRouter(resolver, &stubChurchReader{})

	w := doGuarded(r, "/api/v1/churches/shalom/membros")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "/betel/dashboard")
}

func TestGuard_InactiveChurchBlocksEveryModule(t *testing.T) {
	resolver := &stubSessionResolver{err: apperrors.ErrChurchInactive}
	r := guardRouter(resolver, &stubChurchReader{})

	for _, module := range []string{"dashboard", "membros", "financeiro", "configuracoes"} {
		w := doGuarded(r, "/api/v1/churches/betel/"+module)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "church_inactive")
	}
}

func TestGuard_ProfileNotFoundRedirectsToLogin(t *testing.T) {
	resolver := &stubSessionResolver{err: apperrors.ErrProfileNotFound}
	r := guardRouter(resolver, &stubChurchReader{})

	w := doGuarded(r, "/api/v1/churches/betel/membros")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "/login")
}

func TestGuard_MatrixDeniedModuleRedirects(t *testing.T) {
	// Treasurer has no membros access in the default matrix.
	resolver := &stubSessionResolver{session: tenantSession("betel", domain.RoleTreasurer)}
	r := guardRouter(resolver, &stubChurchReader{})

	w := doGuarded(r, "/api/v1/churches/betel/membros")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "/betel/dashboard")
}

func TestGuard_UnknownSegmentDenied(t *testing.T) {
	resolver := &stubSessionResolver{session: tenantSession("betel", domain.RoleAdmin)}
	r := guardRouter(resolver, &stubChurchReader{})

	w := doGuarded(r, "/api/v1/churches/betel/membroz")

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGuard_SuperAdminEntersActiveTenant(t *testing.T) {
	session := &domain.Session{
		User:        domain.User{UserID: "u1", Role: domain.RoleSuperAdmin, IsActive: true},
		Church:      domain.SystemChurch(),
		Permissions: domain.DefaultPermissionMatrix(),
	}
	resolver := &stubSessionResolver{session: session}
	churches := &stubChurchReader{church: &domain.Church{ChurchID: "c9", Slug: "betel", IsActive: true}}
	r := guardRouter(resolver, churches)

	w := doGuarded(r, "/api/v1/churches/betel/financeiro")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "c9")
}

func TestGuard_SuperAdminBlockedFromInactiveTenant(t *testing.T) {
	session := &domain.Session{
		User:        domain.User{UserID: "u1", Role: domain.RoleSuperAdmin, IsActive: true},
		Church:      domain.SystemChurch(),
		Permissions: domain.DefaultPermissionMatrix(),
	}
	resolver := &stubSessionResolver{session: session}
	churches := &stubChurchReader{church: &domain.Church{ChurchID: "c9", Slug: "betel", IsActive: false}}
	r := guardRouter(resolver, churches)

	w := doGuarded(r, "/api/v1/churches/betel/dashboard")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "church_inactive")
}
