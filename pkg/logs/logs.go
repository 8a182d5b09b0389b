package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/alfassih/praxis_backend/config"
)

// New builds a logger from config, supporting multi-output fan-out.
func New(cfg *config.Config) *slog.Logger {
	level := parseLevel(cfg.Logging.Level)
	isDev := strings.EqualFold(cfg.Server.Environment, "development")

	var writers []io.Writer

	// Always write to stdout if enabled or nothing else is configured
	if cfg.Logging.Output.Stdout || (!cfg.Logging.Output.File.Enabled && !cfg.Logging.Output.Loki.Enabled) {
		writers = append(writers, os.Stdout)
	}

	// File output with rotation via lumberjack
	if cfg.Logging.Output.File.Enabled {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.Logging.Output.File.Path,
			MaxSize:    cfg.Logging.Output.File.MaxSizeMB,
			MaxBackups: cfg.Logging.Output.File.MaxBackups,
			MaxAge:     cfg.Logging.Output.File.MaxAgeDays,
			Compress:   cfg.Logging.Output.File.Compress,
		})
	}

	var handlers []slog.Handler

	if len(writers) > 0 {
		w := io.MultiWriter(writers...)
		opts := &slog.HandlerOptions{
			Level:     level,
			AddSource: isDev,
		}
		if strings.EqualFold(cfg.Logging.Format, "json") || !isDev {
			handlers = append(handlers, slog.NewJSONHandler(w, opts))
		} else {
			handlers = append(handlers, slog.NewTextHandler(w, opts))
		}
	}

	// Loki handler via HTTP (no extra dependency, uses slog + an HTTP writer)
	if cfg.Logging.Output.Loki.Enabled {
		handlers = append(handlers, newLokiHandler(cfg, level))
	}

	var h slog.Handler
	if len(handlers) == 1 {
		h = handlers[0]
	} else {
		h = &multiHandler{handlers: handlers}
	}

	return slog.New(h).With(
		slog.String("service", cfg.Observability.ServiceName),
		slog.String("version", cfg.Observability.ServiceVersion),
		slog.String("env", cfg.Server.Environment),
	)
}

func Default() *slog.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: false,
	})
	return slog.New(h).With(slog.String("service", "praxis_backend"))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// multiHandler fans a record out to every underlying handler.
type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	var firstErr error
	for _, h := range m.handlers {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		if err := h.Handle(ctx, r.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		out[i] = h.WithAttrs(attrs)
	}
	return &multiHandler{handlers: out}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	out := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		out[i] = h.WithGroup(name)
	}
	return &multiHandler{handlers: out}
}
