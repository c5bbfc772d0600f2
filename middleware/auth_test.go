package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	router := gin.New()
	router.Use(sessions.Sessions("sporthub_session", cookie.NewStore([]byte("test"))))
	return router
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("KEY", "test-secret")

	token, err := GenerateToken("ana@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", email)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("KEY", "test-secret")

	_, err := ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("KEY", "test-secret")
	token, err := GenerateToken("ana@example.com")
	require.NoError(t, err)

	t.Setenv("KEY", "another-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestJWTDecoderBearerHeader(t *testing.T) {
	t.Setenv("KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	token, err := GenerateToken("ana@example.com")
	require.NoError(t, err)

	router := testRouter()
	router.GET("/me", func(c *gin.Context) {
		email, err := JWT_decoder(c)
		if err != nil {
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": email})
	})

	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ana@example.com")
}

func TestJWTDecoderInvalidBearer(t *testing.T) {
	t.Setenv("KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	router := testRouter()
	router.GET("/me", func(c *gin.Context) {
		if _, err := JWT_decoder(c); err != nil {
			return
		}
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredRejectsAnonymous(t *testing.T) {
	t.Setenv("KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	router := testRouter()
	router.GET("/private", AuthRequired, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest("GET", "/private", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredAcceptsBearer(t *testing.T) {
	t.Setenv("KEY", "test-secret")
	gin.SetMode(gin.TestMode)

	token, err := GenerateToken("ana@example.com")
	require.NoError(t, err)

	router := testRouter()
	router.GET("/private", AuthRequired, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
