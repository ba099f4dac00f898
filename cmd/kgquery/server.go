package kgquery

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	kgquery "github.com/narrativegraph/kgquery"
	"github.com/narrativegraph/kgquery/pkg/config"
	"github.com/narrativegraph/kgquery/pkg/graphstore"
	"github.com/narrativegraph/kgquery/pkg/logger"
	"github.com/narrativegraph/kgquery/pkg/server"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the kgquery HTTP server",
	Long: `Start the kgquery HTTP server, which loads the Graph Store once and
exposes a health-check family plus a single POST /api/v1/query endpoint
answering structured natural-language questions.`,
	RunE: runServer,
}

var (
	serverHost string
	serverPort int
	serverMode string

	entitiesPath string
	eventsPath   string
	edgesPath    string
	graphFormat  string
)

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringVar(&serverHost, "host", "localhost", "Server host")
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Server port")
	serverCmd.Flags().StringVar(&serverMode, "mode", "debug", "Server mode (debug, release, test)")

	serverCmd.Flags().StringVar(&entitiesPath, "entities-path", "", "path to the entities artifact file")
	serverCmd.Flags().StringVar(&eventsPath, "events-path", "", "path to the events artifact file")
	serverCmd.Flags().StringVar(&edgesPath, "edges-path", "", "path to the edges artifact file")
	serverCmd.Flags().StringVar(&graphFormat, "graph-format", "", "artifact encoding: json, yaml, or empty to infer from extension")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	overrideConfigWithFlags(cmd, cfg)

	if err := validateServerConfig(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewDefaultLogger(levelFromString(cfg.Log.Level))

	log.Info("loading graph store", "entities", cfg.Graph.EntitiesPath, "events", cfg.Graph.EventsPath, "edges", cfg.Graph.EdgesPath)
	reloader, err := graphstore.NewReloader(graphstore.Paths{
		Entities: cfg.Graph.EntitiesPath,
		Events:   cfg.Graph.EventsPath,
		Edges:    cfg.Graph.EdgesPath,
		Format:   graphstore.Format(cfg.Graph.Format),
	}, graphstore.ReloaderSettings{
		MaxFailures: cfg.Graph.ReloadMaxFailures,
		OpenTimeout: time.Duration(cfg.Graph.ReloadOpenTimeoutSeconds) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to load graph store: %w", err)
	}
	log.Info("graph store loaded", "entity_count", reloader.Current().EntityCount(), "event_count", reloader.Current().EventCount())

	client, err := kgquery.NewClient(reloader.Current(), log)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	srv := server.New(cfg, client, reloader)
	srv.Setup()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			serverErrChan <- err
		}
	}()

	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		fmt.Printf("\nReceived signal: %v\n", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}

		fmt.Println("Server stopped gracefully")
		return nil
	}
}

func overrideConfigWithFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serverHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = serverPort
	}
	if cmd.Flags().Changed("mode") {
		cfg.Server.Mode = serverMode
	}
	if cmd.Flags().Changed("entities-path") {
		cfg.Graph.EntitiesPath = entitiesPath
	}
	if cmd.Flags().Changed("events-path") {
		cfg.Graph.EventsPath = eventsPath
	}
	if cmd.Flags().Changed("edges-path") {
		cfg.Graph.EdgesPath = edgesPath
	}
	if cmd.Flags().Changed("graph-format") {
		cfg.Graph.Format = graphFormat
	}
}

func validateServerConfig(cfg *config.Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.Server.Port)
	}
	if cfg.Graph.EntitiesPath == "" || cfg.Graph.EventsPath == "" || cfg.Graph.EdgesPath == "" {
		return fmt.Errorf("graph artifact paths are required")
	}
	return nil
}

func levelFromString(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
