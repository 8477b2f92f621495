package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mantis/internal/infrastructure/auth"
	"mantis/internal/shared/authorization"
	"mantis/internal/shared/constants"
	"mantis/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestEngine(jwtService *auth.JWTService) (*gin.Engine, *authContextCapture) {
	capture := &authContextCapture{}
	engine := gin.New()
	m := NewAuthMiddleware(jwtService, logger.NewNop())
	engine.GET("/protected", m.RequireAuth(), func(c *gin.Context) {
		userID, _ := c.Get(constants.ContextKeyUserID)
		role, _ := c.Get(constants.ContextKeyUserRole)
		capture.userID = userID.(uint)
		capture.role = role.(string)
		c.Status(http.StatusOK)
	})
	return engine, capture
}

type authContextCapture struct {
	userID uint
	role   string
}

func TestRequireAuth_ValidToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15, 7)
	engine, capture := newAuthTestEngine(jwtService)

	pair, err := jwtService.Generate(42, authorization.RoleEngineer)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), capture.userID)
	assert.Equal(t, "engineer", capture.role)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	engine, _ := newAuthTestEngine(auth.NewJWTService("test-secret", 15, 7))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	engine, _ := newAuthTestEngine(auth.NewJWTService("test-secret", 15, 7))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_RefreshTokenRejected(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15, 7)
	engine, _ := newAuthTestEngine(jwtService)

	pair, err := jwtService.Generate(42, authorization.RoleEngineer)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.RefreshToken)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_TamperedToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", 15, 7)
	engine, _ := newAuthTestEngine(jwtService)

	pair, err := auth.NewJWTService("other-secret", 15, 7).Generate(42, authorization.RoleEngineer)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
