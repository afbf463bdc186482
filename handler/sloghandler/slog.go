package sloghandler

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/philipp01105/kdiag/core"
	"github.com/philipp01105/kdiag/logger"
)

// Handler is an adapter that implements slog.Handler on top of a Logger
type Handler struct {
	log   *logger.Logger
	level core.Level
	attrs string // pre-rendered " k=v" pairs from WithAttrs
	group string
}

// New creates a slog.Handler writing to l. Records less severe than level
// are not enabled; core.LevelDefault enables everything.
func New(l *logger.Logger, level core.Level) *Handler {
	if !level.Valid() {
		level = core.LevelDebug
	}
	return &Handler{log: l, level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return SeverityOf(level).AtLeast(h.level)
}

// Handle renders the record and writes it at the mapped severity.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(h.attrs)

	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.group, a)
		return true
	})

	h.log.Log(SeverityOf(record.Level), b.String())
	return nil
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.group, a)
	}
	return &Handler{
		log:   h.log,
		level: h.level,
		attrs: b.String(),
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	return &Handler{
		log:   h.log,
		level: h.level,
		attrs: h.attrs,
		group: newGroup,
	}
}

// SeverityOf converts a slog.Level to a severity.
func SeverityOf(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.LevelErr
	case level >= slog.LevelWarn:
		return core.LevelWarning
	case level >= slog.LevelInfo:
		return core.LevelInfo
	default:
		return core.LevelDebug
	}
}

// appendAttr writes " key=value", prefixing the group if present.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')

	switch a.Value.Kind() {
	case slog.KindString:
		b.WriteString(a.Value.String())
	case slog.KindInt64:
		b.WriteString(strconv.FormatInt(a.Value.Int64(), 10))
	case slog.KindUint64:
		b.WriteString(strconv.FormatUint(a.Value.Uint64(), 10))
	case slog.KindBool:
		b.WriteString(strconv.FormatBool(a.Value.Bool()))
	case slog.KindDuration:
		b.WriteString(a.Value.Duration().String())
	case slog.KindTime:
		b.WriteString(a.Value.Time().Format(time.RFC3339))
	default:
		b.WriteString(a.Value.String())
	}
}
