package handlers

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/narrativegraph/kgquery/pkg/graphstore"
)

// Build information, set at build time via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// HealthHandler reports on process liveness and on the Graph Store's
// loaded state, in place of the database-connectivity checks a
// persistence-backed service would run.
type HealthHandler struct {
	reloader *graphstore.Reloader
}

// NewHealthHandler builds a health handler around the server's
// Reloader. A nil reloader is accepted so health routes still mount
// before the store is loaded; the readiness and detailed checks then
// report the Graph Store as not loaded, while the basic health and
// liveness checks still report healthy/alive.
func NewHealthHandler(reloader *graphstore.Reloader) *HealthHandler {
	return &HealthHandler{reloader: reloader}
}

// HealthCheck handles GET /health - basic liveness check.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "kgquery",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}

// ReadinessCheck handles GET /ready - reports whether the Graph Store
// has a current, successfully loaded snapshot.
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	response := gin.H{
		"status":    "ready",
		"service":   "kgquery",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    gin.H{},
	}
	checks := response["checks"].(gin.H)

	allHealthy := true
	store := h.currentStore()
	if store == nil {
		checks["graph_store"] = gin.H{
			"status": "unhealthy",
			"error":  "graph store not loaded",
		}
		allHealthy = false
	} else {
		checks["graph_store"] = gin.H{
			"status":       "healthy",
			"entity_count": store.EntityCount(),
			"event_count":  store.EventCount(),
		}
	}

	if !allHealthy {
		response["status"] = "not_ready"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	c.JSON(http.StatusOK, response)
}

// LivenessCheck handles GET /live - Kubernetes liveness probe endpoint.
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "alive",
		"service":   "kgquery",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// DetailedHealthCheck handles GET /health/detailed - comprehensive
// health information including the Graph Store's reload circuit
// breaker state and process runtime metrics.
func (h *HealthHandler) DetailedHealthCheck(c *gin.Context) {
	startTime := time.Now()
	response := gin.H{
		"status":  "healthy",
		"service": "kgquery",
		"version": Version,
		"build_info": gin.H{
			"git_commit": GitCommit,
			"build_time": BuildTime,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"environment": gin.H{
			"go_version": GoVersion,
		},
		"checks":  gin.H{},
		"metrics": gin.H{"response_time_ms": 0},
	}
	checks := response["checks"].(gin.H)

	allHealthy := true
	store := h.currentStore()
	if store == nil {
		checks["graph_store"] = gin.H{
			"status": "unhealthy",
			"error":  "graph store not loaded",
		}
		allHealthy = false
	} else {
		checks["graph_store"] = gin.H{
			"status":       "healthy",
			"entity_count": store.EntityCount(),
			"event_count":  store.EventCount(),
		}
	}

	if h.reloader != nil {
		checks["reload_circuit_breaker"] = gin.H{
			"state": h.reloader.BreakerState(),
		}
	}

	metrics := h.getSystemMetrics()
	checks["system"] = gin.H{
		"status":       "healthy",
		"memory_usage": metrics.MemoryUsage,
		"goroutines":   metrics.Goroutines,
		"gc_cycles":    metrics.GCCycles,
		"heap_objects": metrics.HeapObjects,
	}

	response["metrics"].(gin.H)["response_time_ms"] = time.Since(startTime).Milliseconds()

	if !allHealthy {
		response["status"] = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) currentStore() *graphstore.Store {
	if h.reloader == nil {
		return nil
	}
	return h.reloader.Current()
}

// SystemMetrics holds process runtime metrics surfaced in detailed health.
type SystemMetrics struct {
	MemoryUsage string `json:"memory_usage"`
	Goroutines  int    `json:"goroutines"`
	GCCycles    uint32 `json:"gc_cycles"`
	HeapObjects uint64 `json:"heap_objects"`
}

func (h *HealthHandler) getSystemMetrics() SystemMetrics {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return SystemMetrics{
		MemoryUsage: formatMB(m.Alloc),
		Goroutines:  runtime.NumGoroutine(),
		GCCycles:    m.NumGC,
		HeapObjects: m.HeapObjects,
	}
}

func formatMB(bytes uint64) string {
	return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
}
