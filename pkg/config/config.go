package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Log configuration
	Log LogConfig `mapstructure:"log"`

	// Server configuration
	Server ServerConfig `mapstructure:"server"`

	// Graph configuration: where the three artifact files live and how
	// the reload circuit breaker behaves.
	Graph GraphConfig `mapstructure:"graph"`

	// CLI configuration
	CLI CLIConfig `mapstructure:"cli"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: debug, release, test
}

// GraphConfig holds Graph Store artifact paths and reload behavior.
type GraphConfig struct {
	EntitiesPath string `mapstructure:"entities_path"`
	EventsPath   string `mapstructure:"events_path"`
	EdgesPath    string `mapstructure:"edges_path"`
	// Format is "json", "yaml", or "" to infer from file extension.
	Format string `mapstructure:"format"`

	// ReloadMaxFailures is the number of consecutive failed reloads
	// before the circuit breaker trips open.
	ReloadMaxFailures uint32 `mapstructure:"reload_max_failures"`
	// ReloadOpenTimeoutSeconds is how long the breaker stays open
	// before allowing another trial reload.
	ReloadOpenTimeoutSeconds int `mapstructure:"reload_open_timeout_seconds"`
}

// CLIConfig holds defaults for the command-line surface.
type CLIConfig struct {
	// Verbose turns on decision-trace logging at debug level for the
	// `query` subcommand by default.
	Verbose bool `mapstructure:"verbose"`
}

// Load reads configuration from programmatic defaults, a `.kgquery.yaml`
// file (in $HOME or the working directory), and environment variables,
// in that order of increasing precedence.
func Load() (*Config, error) {
	setDefaults()

	viper.SetConfigName(".kgquery")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetEnvPrefix("KGQUERY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	overrideWithEnv(cfg)

	return cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")

	viper.SetDefault("graph.entities_path", "data/entities.json")
	viper.SetDefault("graph.events_path", "data/events.json")
	viper.SetDefault("graph.edges_path", "data/edges.json")
	viper.SetDefault("graph.format", "")
	viper.SetDefault("graph.reload_max_failures", 3)
	viper.SetDefault("graph.reload_open_timeout_seconds", 30)

	viper.SetDefault("cli.verbose", false)
}

// overrideWithEnv applies a small set of well-known environment
// variables that take precedence over both defaults and the config
// file, mirroring the override points operators reach for first.
func overrideWithEnv(cfg *Config) {
	if host := os.Getenv("KGQUERY_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("KGQUERY_SERVER_PORT"); port != "" {
		viper.Set("server.port", port)
		cfg.Server.Port = viper.GetInt("server.port")
	}
	if level := os.Getenv("KGQUERY_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if path := os.Getenv("KGQUERY_ENTITIES_PATH"); path != "" {
		cfg.Graph.EntitiesPath = path
	}
	if path := os.Getenv("KGQUERY_EVENTS_PATH"); path != "" {
		cfg.Graph.EventsPath = path
	}
	if path := os.Getenv("KGQUERY_EDGES_PATH"); path != "" {
		cfg.Graph.EdgesPath = path
	}
}
