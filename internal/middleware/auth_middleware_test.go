package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lramirez/acredita/internal/pkg/auth"
)

func newAuthTestRouter(t *testing.T, roles ...string) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		SessionExp:  time.Hour,
		TokenIssuer: "acredita.test",
	})

	router := gin.New()
	group := router.Group("", AuthMiddleware(jwtService))
	if len(roles) > 0 {
		group.Use(RoleRequired(roles...))
	}
	group.GET("/whoami", func(ctx *gin.Context) {
		uid, email, rol := Principal(ctx)
		ctx.JSON(http.StatusOK, gin.H{"uid": uid, "email": email, "rol": rol})
	})
	return router, jwtService
}

func TestAuthMiddlewareBearerHeader(t *testing.T) {
	router, jwtService := newAuthTestRouter(t)
	token, err := jwtService.GenerateToken(7, "admin@acredita.local", "ADMIN")
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"uid":7`)
	assert.Contains(t, recorder.Body.String(), `"rol":"ADMIN"`)
}

func TestAuthMiddlewareSessionCookie(t *testing.T) {
	router, jwtService := newAuthTestRouter(t)
	token, err := jwtService.GenerateToken(9, "19030422@itcelaya.edu.mx", "ALUMNO")
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	request.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"rol":"ALUMNO"`)
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAuthMiddlewareGarbageToken(t *testing.T) {
	router, _ := newAuthTestRouter(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	request.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRoleRequired(t *testing.T) {
	router, jwtService := newAuthTestRouter(t, "ADMIN")

	alumnoToken, err := jwtService.GenerateToken(9, "19030422@itcelaya.edu.mx", "ALUMNO")
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	request.Header.Set("Authorization", "Bearer "+alumnoToken)
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	adminToken, err := jwtService.GenerateToken(1, "admin@acredita.local", "ADMIN")
	require.NoError(t, err)

	recorder = httptest.NewRecorder()
	request = httptest.NewRequest(http.MethodGet, "/whoami", nil)
	request.Header.Set("Authorization", "Bearer "+adminToken)
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}
