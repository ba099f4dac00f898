package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/narrativegraph/kgquery/pkg/graphstore"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestReloader(t *testing.T) *graphstore.Reloader {
	t.Helper()
	dir := t.TempDir()

	entPath := filepath.Join(dir, "entities.json")
	evPath := filepath.Join(dir, "events.json")
	edPath := filepath.Join(dir, "edges.json")

	require.NoError(t, os.WriteFile(entPath, []byte(`[{"id": "person_karna", "canonical_name": "karna", "kind": "PERSON", "event_count": 1, "aliases": ["karna"]}]`), 0o644))
	require.NoError(t, os.WriteFile(evPath, []byte(`[{"id": "E600", "type": "DEATH", "tier": "MACRO", "sentence": "Karna died.", "participants": ["person_karna"]}]`), 0o644))
	require.NoError(t, os.WriteFile(edPath, []byte(`[{"source": "person_karna", "relation": "PARTICIPATED_IN", "target": "E600", "evidence": "Karna died."}]`), 0o644))

	paths := graphstore.Paths{Entities: entPath, Events: evPath, Edges: edPath, Format: graphstore.FormatJSON}
	r, err := graphstore.NewReloader(paths, graphstore.DefaultReloaderSettings())
	require.NoError(t, err)
	return r
}

func performRequest(handler gin.HandlerFunc, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, nil)
	handler(c)
	return w
}

func TestHealthCheck(t *testing.T) {
	h := NewHealthHandler(nil)
	w := performRequest(h.HealthCheck, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"service":"kgquery"`)
}

func TestLivenessCheck(t *testing.T) {
	h := NewHealthHandler(nil)
	w := performRequest(h.LivenessCheck, http.MethodGet, "/live")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"alive"`)
}

func TestReadinessCheckWithNilReloader(t *testing.T) {
	h := NewHealthHandler(nil)
	w := performRequest(h.ReadinessCheck, http.MethodGet, "/ready")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"not_ready"`)
}

func TestReadinessCheckWithLoadedStore(t *testing.T) {
	h := NewHealthHandler(newTestReloader(t))
	w := performRequest(h.ReadinessCheck, http.MethodGet, "/ready")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ready"`)
}

func TestDetailedHealthCheckWithNilReloader(t *testing.T) {
	h := NewHealthHandler(nil)
	w := performRequest(h.DetailedHealthCheck, http.MethodGet, "/health/detailed")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"unhealthy"`)
	assert.Contains(t, w.Body.String(), "build_info")
	assert.Contains(t, w.Body.String(), "response_time_ms")
}

func TestGetSystemMetrics(t *testing.T) {
	h := NewHealthHandler(nil)
	metrics := h.getSystemMetrics()

	assert.NotEmpty(t, metrics.MemoryUsage)
	assert.GreaterOrEqual(t, metrics.Goroutines, 1)
}
