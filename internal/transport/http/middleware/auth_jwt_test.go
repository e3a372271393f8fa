package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elisfemina/react-mesto-api-full/internal/core/auth"
)

func newAuthTestRouter(j *auth.JWTer) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	reached := false
	r := gin.New()
	r.GET("/protected", AuthJWT(j), func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString(KeyUserID)})
	})
	return r, &reached
}

func TestAuthJWT(t *testing.T) {
	j := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "mesto-test", TTL: time.Hour}

	t.Run("MissingHeaderAborts", func(t *testing.T) {
		r, reached := newAuthTestRouter(j)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *reached) // handler 绝不能执行
	})

	t.Run("NonBearerSchemeAborts", func(t *testing.T) {
		r, reached := newAuthTestRouter(j)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *reached)
	})

	t.Run("InvalidTokenAborts", func(t *testing.T) {
		r, reached := newAuthTestRouter(j)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *reached)
	})

	t.Run("ExpiredTokenAborts", func(t *testing.T) {
		expired := &auth.JWTer{Secret: j.Secret, Issuer: j.Issuer, TTL: -2 * time.Hour}
		tok, err := expired.Issue("64f0c2a1b3d4e5f601234567")
		require.NoError(t, err)

		r, reached := newAuthTestRouter(j)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, *reached)
	})

	t.Run("ValidTokenInjectsIdentity", func(t *testing.T) {
		tok, err := j.Issue("64f0c2a1b3d4e5f601234567")
		require.NoError(t, err)

		r, reached := newAuthTestRouter(j)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, *reached)
		assert.Contains(t, w.Body.String(), "64f0c2a1b3d4e5f601234567")
	})
}
