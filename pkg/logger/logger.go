package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
)

// traceHighlightMarkers names the decision-trace tags that should be
// printed in cyan regardless of level, so a human scanning server logs
// can visually follow a query's reasoning without grepping.
var traceHighlightMarkers = []string{
	"[RESOLVE]", "[FACT]", "[TEMPORAL]", "[CAUSAL]", "[MULTI_HOP]",
	"[RESOLVE:FACT]", "[RESOLVE:TEMPORAL]", "[RESOLVE:CAUSAL]", "[RESOLVE:MULTI_HOP]",
}

// handler is a minimal slog.Handler that colorizes output by level and
// by decision-trace marker, writing one line per record.
type handler struct {
	out   io.Writer
	level slog.Leveler
	attrs []slog.Attr
}

// NewDefaultLogger returns a *slog.Logger that writes colored,
// human-readable lines to stderr: gray for debug, default for info,
// yellow for warnings, red for errors, and cyan for any message
// carrying a decision-trace marker regardless of level.
func NewDefaultLogger(level slog.Level) *slog.Logger {
	return NewLogger(os.Stderr, level)
}

// NewLogger builds a colored logger writing to the given writer.
func NewLogger(out io.Writer, level slog.Level) *slog.Logger {
	return slog.New(&handler{out: out, level: level})
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format(time.TimeOnly))
	b.WriteString(" ")
	b.WriteString(levelTag(r.Level))
	b.WriteString(" ")

	msg := r.Message
	if isTraceLine(msg) {
		msg = color.CyanString("%s", msg)
	} else {
		msg = colorForLevel(r.Level)(msg)
	}
	b.WriteString(msg)

	for _, a := range h.attrs {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		fmt.Fprintf(&b, " %s=%v", a.Key, a.Value)
		return true
	})

	b.WriteString("\n")
	_, err := io.WriteString(h.out, b.String())
	return err
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	combined := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	combined = append(combined, h.attrs...)
	combined = append(combined, attrs...)
	return &handler{out: h.out, level: h.level, attrs: combined}
}

func (h *handler) WithGroup(_ string) slog.Handler {
	return h
}

func levelTag(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return color.RedString("ERROR")
	case level >= slog.LevelWarn:
		return color.YellowString("WARN")
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return color.New(color.FgHiBlack).Sprint("DEBUG")
	}
}

func colorForLevel(level slog.Level) func(string) string {
	switch {
	case level >= slog.LevelError:
		return func(s string) string { return color.RedString("%s", s) }
	case level >= slog.LevelWarn:
		return func(s string) string { return color.YellowString("%s", s) }
	case level >= slog.LevelInfo:
		return func(s string) string { return s }
	default:
		return func(s string) string { return color.New(color.FgHiBlack).Sprint(s) }
	}
}

func isTraceLine(msg string) bool {
	for _, marker := range traceHighlightMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
