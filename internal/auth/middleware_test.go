package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/protected", Middleware(secret), func(c *gin.Context) {
		authCtx, _ := GetContext(c)
		c.JSON(http.StatusOK, gin.H{"member_id": authCtx.MemberID, "is_staff": authCtx.IsStaff})
	})

	r.GET("/staff", Middleware(secret), RequireStaff(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	r.GET("/open", OptionalMiddleware(secret), func(c *gin.Context) {
		_, authed := GetContext(c)
		c.JSON(http.StatusOK, gin.H{"authenticated": authed})
	})

	return r
}

func TestMiddlewareMissingHeader(t *testing.T) {
	r := setupRouter(testSecret)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddlewareBadScheme(t *testing.T) {
	r := setupRouter(testSecret)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMiddlewareValidToken(t *testing.T) {
	r := setupRouter(testSecret)

	token, err := GenerateToken(5, RoleMember, testSecret)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"member_id":5`)
	assert.Contains(t, w.Body.String(), `"is_staff":false`)
}

func TestRequireStaffRejectsMember(t *testing.T) {
	r := setupRouter(testSecret)

	token, err := GenerateToken(5, RoleMember, testSecret)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/staff", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireStaffAllowsStaff(t *testing.T) {
	r := setupRouter(testSecret)

	token, err := GenerateToken(2, RoleStaff, testSecret)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/staff", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalMiddleware(t *testing.T) {
	r := setupRouter(testSecret)

	// anonymous passes through
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/open", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	// token resolves a context
	token, err := GenerateToken(5, RoleMember, testSecret)
	require.NoError(t, err)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)
}
