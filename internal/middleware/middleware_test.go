package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blockauth/internal/domain"
	"blockauth/internal/middleware"
	"blockauth/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

// buildProtectedRouter wires the two-stage gate in front of a handler that
// echoes the role it saw.
func buildProtectedRouter(allowedRoles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected",
		middleware.JWTAuthMiddleware(testSecret),
		middleware.RequireRole(allowedRoles...),
		func(c *gin.Context) {
			role, _ := c.Get(middleware.CtxUserRole)
			c.JSON(http.StatusOK, gin.H{"role": role})
		})
	return r
}

func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	user := &domain.User{ID: 1, Name: "Test", Email: "test@example.com", Role: role}
	token, err := utils.GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doProtected(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	r := buildProtectedRouter(domain.RoleManufacturer)
	w := doProtected(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	r := buildProtectedRouter(domain.RoleManufacturer)
	w := doProtected(r, "Token abcdef")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	r := buildProtectedRouter(domain.RoleManufacturer)
	w := doProtected(r, "Bearer not.a.real.token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	user := &domain.User{ID: 1, Email: "test@example.com", Role: domain.RoleManufacturer}
	token, err := utils.GenerateJWT(user, testSecret, -time.Minute)
	require.NoError(t, err)

	r := buildProtectedRouter(domain.RoleManufacturer)
	w := doProtected(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// Authenticated but wrong role: the gate must answer 403, not 401.
func TestRequireRoleForbidden(t *testing.T) {
	r := buildProtectedRouter(domain.RoleManufacturer)
	w := doProtected(r, tokenForRole(t, domain.RoleCustomer))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAllowed(t *testing.T) {
	r := buildProtectedRouter(domain.RoleManufacturer)
	w := doProtected(r, tokenForRole(t, domain.RoleManufacturer))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), domain.RoleManufacturer)
}

// Any role in the allow-list passes.
func TestRequireRoleMultiRole(t *testing.T) {
	r := buildProtectedRouter(domain.RoleManufacturer, domain.RoleRetailer)
	w := doProtected(r, tokenForRole(t, domain.RoleRetailer))
	assert.Equal(t, http.StatusOK, w.Code)
}
