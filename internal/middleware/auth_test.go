package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signAccessToken(t *testing.T, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "1d2f7a9e-0000-4000-8000-000000000001",
		"username": "tester",
		"role":     role,
		"type":     "access",
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/", JWTAuth(testSecret))
	grp.GET("/any", func(c *gin.Context) { c.Status(http.StatusOK) })
	grp.DELETE("/guarded", RequireRole("admin"), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doRequest(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_MissingToken(t *testing.T) {
	r := protectedRouter()
	w := doRequest(r, http.MethodGet, "/any", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_AllowsAdmin(t *testing.T) {
	r := protectedRouter()
	w := doRequest(r, http.MethodDelete, "/guarded", signAccessToken(t, "admin"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_RejectsOtherRoles(t *testing.T) {
	r := protectedRouter()
	w := doRequest(r, http.MethodDelete, "/guarded", signAccessToken(t, "staff"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The same role still passes routes without the guard.
	w = doRequest(r, http.MethodGet, "/any", signAccessToken(t, "staff"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetClaims_NilWhenUnauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetClaims(c))
}

func TestGetClaims_ReturnsTokenClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var got *JWTClaims
	r.GET("/me", JWTAuth(testSecret), func(c *gin.Context) {
		got = GetClaims(c)
		c.Status(http.StatusOK)
	})

	w := doRequest(r, http.MethodGet, "/me", signAccessToken(t, "admin"))
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got)
	assert.Equal(t, "tester", got.Username)
	assert.Equal(t, "admin", got.Role)
}
