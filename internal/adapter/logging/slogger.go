package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/haakonunderbakke/haakon-dev/internal/domain/ports"
)

// SLogger is an adapter around slog.Logger implementing ports.Logger.
type SLogger struct {
	logger *slog.Logger
}

var _ ports.Logger = (*SLogger)(nil)

// New creates a new SLogger.
func New(logger *slog.Logger) *SLogger {
	return &SLogger{logger: logger}
}

// NewJSON creates an SLogger writing JSON lines to w at the given level.
func NewJSON(w io.Writer, level slog.Level) *SLogger {
	return New(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})))
}

// Info logs an informational message.
func (l *SLogger) Info(ctx context.Context, msg string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Log(ctx, slog.LevelInfo, msg, args...)
}

// Error logs an error message.
func (l *SLogger) Error(ctx context.Context, msg string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Log(ctx, slog.LevelError, msg, args...)
}
