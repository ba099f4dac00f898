// Package logger provides a colored slog handler used by the CLI and
// server: gray debug lines, plain info, yellow warnings, red errors,
// and cyan highlighting for any message carrying a decision-trace
// marker ([RESOLVE], [FACT], [CAUSAL], [TEMPORAL], [MULTI_HOP], …) so
// a query's reasoning stands out on an otherwise quiet terminal.
package logger
