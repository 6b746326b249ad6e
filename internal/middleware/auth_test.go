package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthedRouter(auth *AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", auth.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"host": c.GetString("host")})
	})
	return r
}

func TestTokenRoundTrip(t *testing.T) {
	auth := NewAuthService("test-secret")
	require.NotNil(t, auth)

	token, err := auth.GenerateToken("workbench")
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "workbench", claims.Host)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewAuthService("secret-a")
	verifier := NewAuthService("secret-b")

	token, err := issuer.GenerateToken("workbench")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestEmptySecretDisablesAuth(t *testing.T) {
	assert.Nil(t, NewAuthService(""))
	assert.Nil(t, NewAuthService("   "))
}

func TestRequireAuthHeader(t *testing.T) {
	auth := NewAuthService("test-secret")
	r := newAuthedRouter(auth)

	token, err := auth.GenerateToken("workbench")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "workbench")
}

func TestRequireAuthQueryToken(t *testing.T) {
	auth := NewAuthService("test-secret")
	r := newAuthedRouter(auth)

	token, err := auth.GenerateToken("workbench")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected?token="+token, nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAuthRejectsMissingAndBadTokens(t *testing.T) {
	auth := NewAuthService("test-secret")
	r := newAuthedRouter(auth)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthDisabledPassesThrough(t *testing.T) {
	var auth *AuthService
	r := newAuthedRouter(auth)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
