package server

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kgquery "github.com/narrativegraph/kgquery"
	"github.com/narrativegraph/kgquery/pkg/config"
	"github.com/narrativegraph/kgquery/pkg/graphstore"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "localhost", Port: 8080, Mode: "test"},
	}
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

func TestNew(t *testing.T) {
	cfg := testConfig()
	srv := New(cfg, nil, nil)
	require.NotNil(t, srv)
	assert.Same(t, cfg, srv.config)
}

func TestSetup(t *testing.T) {
	srv := New(testConfig(), nil, nil)
	srv.Setup()

	require.NotNil(t, srv.router)
	require.NotNil(t, srv.server)
	assert.Equal(t, "localhost:8080", srv.server.Addr)
}

func TestHealthEndpoint(t *testing.T) {
	srv := New(testConfig(), nil, nil)
	srv.Setup()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthcheckLegacyEndpoint(t *testing.T) {
	srv := New(testConfig(), nil, nil)
	srv.Setup()

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLiveEndpoint(t *testing.T) {
	srv := New(testConfig(), nil, nil)
	srv.Setup()

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReadyEndpointWithoutStore(t *testing.T) {
	srv := New(testConfig(), nil, nil)
	srv.Setup()

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestReadyEndpointWithStore(t *testing.T) {
	srv := New(testConfig(), nil, newTestReloader(t))
	srv.Setup()

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDetailedHealthEndpointWithoutStore(t *testing.T) {
	srv := New(testConfig(), nil, nil)
	srv.Setup()

	req := httptest.NewRequest(http.MethodGet, "/health/detailed", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestQueryEndpointRegistered(t *testing.T) {
	reloader := newTestReloader(t)
	client, err := kgquery.NewClient(reloader.Current(), nil)
	require.NoError(t, err)

	srv := New(testConfig(), client, reloader)
	srv.Setup()

	body := `{"question": "Who killed Karna?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/query", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.NotEqual(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv := New(testConfig(), nil, nil)
	srv.Setup()

	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSHeadersOnRegularRequest(t *testing.T) {
	srv := New(testConfig(), nil, nil)
	srv.Setup()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("Access-Control-Allow-Methods"))
}
