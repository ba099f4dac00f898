package logger_test

import (
	"log/slog"
	"os"

	"github.com/narrativegraph/kgquery/pkg/logger"
)

func ExampleNewDefaultLogger() {
	log := logger.NewDefaultLogger(slog.LevelDebug)

	log.Debug("planning query")
	log.Info("query planned", "intent", "FACT")
	log.Info("[RESOLVE] person_karna → person_karna") // cyan in terminal
	log.Warn("store reload circuit breaker half-open")
	log.Error("graph store failed to load")
}

func ExampleNewLogger() {
	log := logger.NewLogger(os.Stderr, slog.LevelInfo)

	log.Info("processing request", "question", "Who killed Karna?")
	log.Info("[CAUSAL] entity person_bhishma enqueued at depth 1") // cyan
	log.Warn("reload breaker tripped open", "consecutive_failures", 3)
	log.Error("unresolved seed entity", "entity_id", "person_ghost")
}
