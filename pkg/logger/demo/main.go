package main

import (
	"log/slog"

	"github.com/narrativegraph/kgquery/pkg/logger"
)

func main() {
	log := logger.NewDefaultLogger(slog.LevelDebug)

	log.Info("============================================")
	log.Info("    kgquery Colored Logger Demo")
	log.Info("============================================")
	log.Info("")

	log.Debug("Debug message - gray")
	log.Info("Info message - standard color")
	log.Info("[RESOLVE] person_karna → person_karna - cyan!")
	log.Warn("Warning message - yellow!")
	log.Error("Error message - red!")

	log.Info("")
	log.Info("Decision-trace lines are highlighted in cyan:")
	log.Info("[FACT] matched 1 event for target type KILL", "event_id", "E500")
	log.Info("[CAUSAL] entity person_bhishma enqueued at depth 1")
	log.Info("[MULTI_HOP] trigger event E700 accepted", "type", "DEATH")

	log.Info("")
	log.Warn("Warnings appear in yellow for attention")
	log.Error("Errors appear in red for immediate visibility")

	log.Info("")
	log.Info("Demo complete!")
}
