package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"imglabeler/internal/config"
)

// Setup configures the global zerolog logger from cfg and returns it.
// Unknown levels fall back to info.
func Setup(cfg config.LogConfig) zerolog.Logger {
	return SetupWithWriter(cfg, os.Stdout)
}

// SetupWithWriter is Setup with an explicit destination.
func SetupWithWriter(cfg config.LogConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return log.Logger
}

// FromContext returns the logger attached to ctx, or the global logger when
// none is attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	if HasContextLogger(ctx) {
		return zerolog.Ctx(ctx)
	}
	return &log.Logger
}

// HasContextLogger reports whether ctx carries its own logger.
func HasContextLogger(ctx context.Context) bool {
	return zerolog.Ctx(ctx).GetLevel() != zerolog.Disabled
}

// WithRequestID attaches a child of the global logger carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	l := log.With().Str("request_id", requestID).Logger()
	return l.WithContext(ctx)
}
