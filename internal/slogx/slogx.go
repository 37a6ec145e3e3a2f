// Package slogx builds the application logger and carries a request-scoped
// logger through context.Context so services can log with request fields
// without taking a logger dependency.
package slogx

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Config selects the handler, level and static attributes of the logger.
type Config struct {
	Service string
	Env     string // e.g. "dev", "prod"
	Level   string // debug, info, warn, error
	Format  string // json or text
}

// New returns a logger writing to w. JSON is the default format because it
// suits log aggregators; text is easier to read in a terminal.
func New(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: cfg.Env == "dev",
		Level:     ParseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(
		"service", cfg.Service,
		"env", cfg.Env,
	)
}

// ParseLevel maps a level name to slog.Level. Unknown names fall back to info.
func ParseLevel(lvl string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(lvl)); err != nil {
		return slog.LevelInfo
	}
	return level
}

type ctxKey struct{}

// WithContext returns a copy of ctx carrying logger.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored by WithContext, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
