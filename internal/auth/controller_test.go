package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	controller := NewController(setupTestService(t))

	engine := gin.New()
	engine.POST("/auth/register", controller.Register)
	engine.POST("/auth/login", controller.Login)
	return engine
}

func postJSON(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRegisterRejectsBlankName(t *testing.T) {
	engine := setupTestRouter(t)

	for _, name := range []string{"", "   ", `\t \n`} {
		w := postJSON(engine, "/auth/register",
			`{"name":"`+name+`","email":"alice@example.com","password":"secret123"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, "name %q must be rejected", name)
	}
}

func TestRegisterTrimsName(t *testing.T) {
	engine := setupTestRouter(t)

	w := postJSON(engine, "/auth/register",
		`{"name":"  Alice  ","email":"alice@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Alice"`)
}

func TestRegisterThenLoginOverHTTP(t *testing.T) {
	engine := setupTestRouter(t)

	w := postJSON(engine, "/auth/register",
		`{"name":"Bob","email":"bob@example.com","password":"secret123"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(engine, "/auth/login", `{"email":"bob@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")

	w = postJSON(engine, "/auth/login", `{"email":"bob@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
