package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cooltech/storefront/api"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// helper to set up router with an observable logger
func setupRouter() (*gin.Engine, *observer.ObservedLogs) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)
	srv := api.NewServer(logger)
	return srv.Router(), logs
}

func TestHome(t *testing.T) {
	router, logs := setupRouter()
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Welcome to Cool Tech Store!", w.Body.String())

	entries := logs.FilterMessage("Homepage visited").All()
	assert.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
}

func TestErrorPage(t *testing.T) {
	router, logs := setupRouter()
	req, _ := http.NewRequest(http.MethodGet, "/error", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Something went wrong!", w.Body.String())

	entries := logs.FilterMessage("An error occurred!").All()
	assert.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}

func TestHealthCheck(t *testing.T) {
	router, logs := setupRouter()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "healthy", resp["status"])

	// Health checks produce no application log records
	assert.Equal(t, 0, logs.FilterMessage("Homepage visited").Len())
	assert.Equal(t, 0, logs.FilterMessage("An error occurred!").Len())
	for _, entry := range logs.All() {
		assert.Less(t, entry.Level, zapcore.ErrorLevel)
	}
}

func TestUnknownRoute(t *testing.T) {
	router, _ := setupRouter()
	req, _ := http.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRepeatedRequestsAreIdentical(t *testing.T) {
	router, logs := setupRouter()

	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Welcome to Cool Tech Store!", w.Body.String())
	}
	assert.Equal(t, 3, logs.FilterMessage("Homepage visited").Len())

	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest(http.MethodGet, "/error", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Something went wrong!", w.Body.String())
	}
	assert.Equal(t, 3, logs.FilterMessage("An error occurred!").Len())
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := setupRouter()

	// Hit a route so the request counter has at least one sample
	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	req, _ = http.NewRequest(http.MethodGet, "/metrics", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "storefront_requests_total")
}
