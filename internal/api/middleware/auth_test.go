package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chirp-go/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestRouter(t *testing.T, jwtService *auth.JWTService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", AuthRequired(jwtService), func(c *gin.Context) {
		userID, ok := GetCurrentUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestAuthRequired_ValidToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "chirp-go", time.Hour)
	r := newAuthTestRouter(t, jwtService)

	token, err := jwtService.Generate(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestAuthRequired_MissingToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "chirp-go", time.Hour)
	r := newAuthTestRouter(t, jwtService)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "chirp-go", time.Hour)
	r := newAuthTestRouter(t, jwtService)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_WrongScheme(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "chirp-go", time.Hour)
	r := newAuthTestRouter(t, jwtService)

	token, err := jwtService.Generate(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestViewerContext(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret", "chirp-go", time.Hour)
	gin.SetMode(gin.TestMode)

	fetcher := func(userID int64) (map[int64]bool, error) {
		return map[int64]bool{userID + 1: true}, nil
	}

	r := gin.New()
	r.GET("/me", AuthRequired(jwtService), ViewerContext(fetcher), func(c *gin.Context) {
		following := GetViewerFollowing(c)
		c.JSON(http.StatusOK, gin.H{"follows_next": following[43]})
	})

	token, err := jwtService.Generate(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"follows_next":true`)
}

func TestGetViewerFollowing_Absent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	following := GetViewerFollowing(c)
	assert.NotNil(t, following)
	assert.Empty(t, following)
}
