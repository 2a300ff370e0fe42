package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cinebook/internal/shared/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			AccessExpiresIn:  15 * time.Minute,
			RefreshExpiresIn: 24 * time.Hour,
		},
	}
}

func signToken(t *testing.T, secret, tokenType string, isAdmin bool, expiresIn time.Duration) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id":  "2f0c8d4e-70a1-4f3a-9a64-54a1c8f0de11",
		"email":    "demo@example.com",
		"is_admin": isAdmin,
		"type":     tokenType,
		"exp":      time.Now().Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newTestRouter(cfg *config.Config, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	handlers := []gin.HandlerFunc{JWTAuthWithConfig(cfg)}
	if adminOnly {
		handlers = append(handlers, RequireAdmin())
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})

	engine.GET("/protected", handlers...)
	return engine
}

func doRequest(engine *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	engine := newTestRouter(testConfig(), false)

	w := doRequest(engine, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(engine, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsInvalidToken(t *testing.T) {
	cfg := testConfig()
	engine := newTestRouter(cfg, false)

	w := doRequest(engine, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Expired token
	expired := signToken(t, cfg.JWT.Secret, "access", false, -time.Minute)
	w = doRequest(engine, "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong signing secret
	forged := signToken(t, "other-secret", "access", false, time.Minute)
	w = doRequest(engine, "Bearer "+forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthRejectsRefreshToken(t *testing.T) {
	cfg := testConfig()
	engine := newTestRouter(cfg, false)

	refresh := signToken(t, cfg.JWT.Secret, "refresh", false, time.Hour)
	w := doRequest(engine, "Bearer "+refresh)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthAcceptsAccessToken(t *testing.T) {
	cfg := testConfig()
	engine := newTestRouter(cfg, false)

	access := signToken(t, cfg.JWT.Secret, "access", false, time.Minute)
	w := doRequest(engine, "Bearer "+access)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "2f0c8d4e-70a1-4f3a-9a64-54a1c8f0de11")
}

func TestRequireAdmin(t *testing.T) {
	cfg := testConfig()
	engine := newTestRouter(cfg, true)

	regular := signToken(t, cfg.JWT.Secret, "access", false, time.Minute)
	w := doRequest(engine, "Bearer "+regular)
	assert.Equal(t, http.StatusForbidden, w.Code)

	admin := signToken(t, cfg.JWT.Secret, "access", true, time.Minute)
	w = doRequest(engine, "Bearer "+admin)
	assert.Equal(t, http.StatusOK, w.Code)
}
