package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	kgquery "github.com/narrativegraph/kgquery"
	"github.com/narrativegraph/kgquery/pkg/config"
	"github.com/narrativegraph/kgquery/pkg/graphstore"
	"github.com/narrativegraph/kgquery/pkg/server/handlers"
)

// Server is the HTTP surface over a kgquery.Client: a health-check
// family reporting on the Graph Store plus a single query endpoint.
type Server struct {
	config   *config.Config
	router   *gin.Engine
	client   *kgquery.Client
	reloader *graphstore.Reloader
	server   *http.Server
}

// New creates a new server instance. Both client and reloader may be
// nil; routes still mount, reporting unhealthy/unready until a Graph
// Store is available.
func New(cfg *config.Config, client *kgquery.Client, reloader *graphstore.Reloader) *Server {
	return &Server{
		config:   cfg,
		client:   client,
		reloader: reloader,
	}
}

// Setup builds the router and the underlying http.Server.
func (s *Server) Setup() {
	gin.SetMode(s.config.Server.Mode)

	s.router = gin.New()
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(corsMiddleware())

	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
}

func (s *Server) setupRoutes() {
	healthHandler := handlers.NewHealthHandler(s.reloader)
	queryHandler := handlers.NewQueryHandler(s.client)

	s.router.GET("/health", healthHandler.HealthCheck)
	s.router.GET("/healthcheck", healthHandler.HealthCheck) // legacy alias
	s.router.GET("/ready", healthHandler.ReadinessCheck)
	s.router.GET("/live", healthHandler.LivenessCheck)
	s.router.GET("/health/detailed", healthHandler.DetailedHealthCheck)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/query", queryHandler.Ask)
	}
}

// Start starts the server; it blocks until the server stops or errors.
func (s *Server) Start() error {
	fmt.Printf("Starting server on %s\n", s.server.Addr)
	return s.server.ListenAndServe()
}

// Stop stops the server gracefully.
func (s *Server) Stop(ctx context.Context) error {
	fmt.Println("Stopping server...")
	return s.server.Shutdown(ctx)
}

// corsMiddleware adds permissive CORS headers suited to a read-only
// query API with no cookie-based auth.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Accept, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
