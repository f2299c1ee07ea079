// Package logging builds the structured logger used by the transpose
// command. Library packages never log; only the command surface does.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/transpose/internal/config"
)

// New returns a slog.Logger writing to w in the configured format and level.
// Returns config.ErrInvalidConfig for an unknown level or format.
func New(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: log format %q", config.ErrInvalidConfig, cfg.Format)
	}

	return slog.New(h).With("component", "transpose"), nil
}

// ParseLevel maps debug, info, warn (or warning) and error to slog levels.
// An empty string means warn.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: log level %q", config.ErrInvalidConfig, s)
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
