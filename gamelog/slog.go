package gamelog

import (
	"io"
	"log/slog"
	"os"
)

// SlogAdapter forwards Logger calls to a *slog.Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlog wraps an existing slog logger. A nil logger falls back to slog.Default().
func NewSlog(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// NewText builds a text-handler logger writing to w at the given level.
func NewText(w io.Writer, level slog.Level) *SlogAdapter {
	if w == nil {
		w = os.Stderr
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &SlogAdapter{logger: slog.New(h)}
}

// With returns an adapter that attaches the key-values to every record.
func (a *SlogAdapter) With(keyValues ...any) *SlogAdapter {
	return &SlogAdapter{logger: a.logger.With(keyValues...)}
}

func (a *SlogAdapter) Info(msg string, keyValues ...any) {
	a.logger.Info(msg, keyValues...)
}

func (a *SlogAdapter) Warn(msg string, keyValues ...any) {
	a.logger.Warn(msg, keyValues...)
}

func (a *SlogAdapter) Error(msg string, keyValues ...any) {
	a.logger.Error(msg, keyValues...)
}

func (a *SlogAdapter) Debug(msg string, keyValues ...any) {
	a.logger.Debug(msg, keyValues...)
}
