package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fuzzy-go/internal/chart"
	"fuzzy-go/internal/config"
	"fuzzy-go/internal/controller"
	"fuzzy-go/internal/metrics"
	"fuzzy-go/pkg/fuzzy"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func setupTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	logger := zap.NewNop()
	m := metrics.New()
	renderer, err := chart.NewRenderer(cfg.Chart, m, logger)
	if err != nil {
		t.Fatalf("NewRenderer failed: %v", err)
	}
	ic := controller.NewInferenceController(fuzzy.NewRegistry(logger), renderer, m, cfg.App.StrictRange, logger)
	return SetupRouter(ic, m, cfg, logger)
}

func TestHealth(t *testing.T) {
	router := setupTestRouter(t, config.Default())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Fatalf("Expected healthy status, got %s", rec.Body.String())
	}
}

func TestRequestID(t *testing.T) {
	router := setupTestRouter(t, config.Default())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	if id := rec.Header().Get(RequestIDHeader); len(id) != 36 {
		t.Fatalf("Expected generated UUID request id, got %q", id)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if id := rec.Header().Get(RequestIDHeader); id != "abc-123" {
		t.Fatalf("Expected propagated request id, got %q", id)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupTestRouter(t, config.Default())

	body := bytes.NewBufferString(`{"temperature": 30}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/classify/temperature", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `fuzzy_classifications_total{condition="Panas",engine="temperature"} 1`) {
		t.Fatalf("Expected classification counter in metrics output:\n%s", rec.Body.String())
	}
}

func TestMetricsDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Enabled = false
	router := setupTestRouter(t, cfg)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 with metrics disabled, got %d", rec.Code)
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CustomRecoveryMiddleware(zap.NewNop()))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", rec.Code)
	}
}
