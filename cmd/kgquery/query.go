package kgquery

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	kgquery "github.com/narrativegraph/kgquery"
	"github.com/narrativegraph/kgquery/pkg/graphstore"
	"github.com/narrativegraph/kgquery/pkg/logger"
)

var (
	queryDataDir string
	queryFormat  string
)

var queryCmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Ask a question against a loaded knowledge graph",
	Long: `query loads the three Graph Store artifact files from --data-dir,
asks the given question, and prints the resulting Answer as JSON.

Exit codes: 0 on success, 2 if the Graph Store fails to load, 1 on any
other unexpected error.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringVar(&queryDataDir, "data-dir", "data", "directory containing entities/events/edges artifact files")
	queryCmd.Flags().StringVar(&queryFormat, "format", "", "artifact encoding: json, yaml, or empty to infer from extension")
}

func runQuery(cmd *cobra.Command, args []string) error {
	question := args[0]

	format := graphstore.Format(queryFormat)
	paths := graphstore.Paths{
		Entities: filepath.Join(queryDataDir, "entities."+extensionFor(format)),
		Events:   filepath.Join(queryDataDir, "events."+extensionFor(format)),
		Edges:    filepath.Join(queryDataDir, "edges."+extensionFor(format)),
		Format:   format,
	}

	store, err := graphstore.Load(paths)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load graph store:", err)
		os.Exit(2)
	}

	var log *slog.Logger
	if viper.GetBool("cli.verbose") {
		log = logger.NewDefaultLogger(slog.LevelDebug)
	}
	client, err := kgquery.NewClient(store, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to build client:", err)
		os.Exit(1)
	}

	res, err := client.Ask(context.Background(), question)
	if err != nil {
		fmt.Fprintln(os.Stderr, "query failed:", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res.Answer); err != nil {
		fmt.Fprintln(os.Stderr, "failed to encode answer:", err)
		os.Exit(1)
	}

	return nil
}

func extensionFor(format graphstore.Format) string {
	if format == graphstore.FormatYAML {
		return "yaml"
	}
	return "json"
}
