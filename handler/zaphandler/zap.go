// Package zaphandler mirrors stored log entries into a *zap.Logger.
package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/kdiag/core"
	"github.com/philipp01105/kdiag/handler"
)

// SeverityKey is the zap field carrying the original severity name
const SeverityKey = "severity"

// Handler writes entries to a zap logger
type Handler struct {
	logger *zap.Logger
	stats  *handler.Stats
}

// New creates a handler writing to l. A nil logger yields a no-op handler.
func New(l *zap.Logger) *Handler {
	if l == nil {
		l = zap.NewNop()
	}
	return &Handler{logger: l, stats: handler.NewStats()}
}

// ZapLevel maps a severity onto the nearest zap level
func ZapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.LevelEmerg, core.LevelAlert, core.LevelCrit, core.LevelErr:
		return zapcore.ErrorLevel
	case core.LevelWarning:
		return zapcore.WarnLevel
	case core.LevelNotice, core.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Handle logs entry at its mapped level
func (h *Handler) Handle(entry core.Entry) error {
	if ce := h.logger.Check(ZapLevel(entry.Level), entry.Message); ce != nil {
		ce.Write(
			zap.String(SeverityKey, entry.Level.String()),
			zap.Int("priority", entry.Level.Priority()),
		)
	}
	h.stats.IncrementProcessed()
	return nil
}

// Stats returns a snapshot of the current statistics
func (h *Handler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes the zap logger
func (h *Handler) Close() error {
	return h.logger.Sync()
}
