package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"club-registry-backend/internal/config"
	apperrors "club-registry-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-signing-key",
		AdminUser:     "admin",
		AdminPassword: "super-secret",
		TokenTTLHours: 12,
	}
}

func TestLogin(t *testing.T) {
	service := NewService(testConfig())

	t.Run("valid credentials", func(t *testing.T) {
		token, err := service.Login("admin", "super-secret")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login("admin", "nope")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("wrong username", func(t *testing.T) {
		_, err := service.Login("root", "super-secret")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("empty credentials", func(t *testing.T) {
		_, err := service.Login("", "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestValidateToken(t *testing.T) {
	service := NewService(testConfig())

	t.Run("valid token round-trip", func(t *testing.T) {
		token, err := service.Login("admin", "super-secret")
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "admin", claims.Username)
		assert.Equal(t, "admin", claims.Subject)
		assert.True(t, claims.ExpiresAt.After(time.Now()))
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := NewService(&config.Config{
			JWTSecret:     "a-different-key",
			AdminUser:     "admin",
			AdminPassword: "super-secret",
			TokenTTLHours: 12,
		})
		token, err := other.Login("admin", "super-secret")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := &Service{
			secret:        []byte("test-signing-key"),
			adminUser:     "admin",
			adminPassword: "super-secret",
			tokenTTL:      -time.Hour,
		}
		token, err := expired.Login("admin", "super-secret")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}

func TestNewServiceDefaultsTTL(t *testing.T) {
	cfg := testConfig()
	cfg.TokenTTLHours = 0

	service := NewService(cfg)

	assert.Equal(t, 12*time.Hour, service.tokenTTL)
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := NewService(testConfig())
	middleware := NewMiddleware(service)

	router := gin.New()
	router.GET("/protected", middleware.RequireAuth(), func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"username": claims.Username})
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "authorization token is missing")
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc123")

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired token")
	})

	t.Run("valid bearer token", func(t *testing.T) {
		token, err := service.Login("admin", "super-secret")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"admin"`)
	})
}

func TestLoginHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := NewService(testConfig())
	handler := NewHandler(service)

	router := gin.New()
	router.POST("/api/auth/login", handler.Login)

	t.Run("valid credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/auth/login",
			strings.NewReader(`{"username":"admin","password":"super-secret"}`))
		req.Header.Set("Content-Type", "application/json")

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "token")
	})

	t.Run("invalid credentials", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/auth/login",
			strings.NewReader(`{"username":"admin","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/auth/login",
			strings.NewReader(`{"username":"admin"}`))
		req.Header.Set("Content-Type", "application/json")

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
