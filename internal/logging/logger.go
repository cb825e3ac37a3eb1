package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config controls handler construction.
type Config struct {
	Level   string // debug, info, warn, error
	Format  string // text or json
	Service string
	Version string
	Writer  io.Writer // defaults to stderr so report output stays clean on stdout
}

// NewLogger returns a structured logger with sane defaults.
func NewLogger(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	if cfg.Service != "" {
		logger = logger.With(slog.String(FieldService, cfg.Service))
	}
	if cfg.Version != "" {
		logger = logger.With(slog.String(FieldVersion, cfg.Version))
	}
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
