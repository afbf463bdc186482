package consolehandler

import (
	"bytes"
	"errors"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/kdiag/core"
	"github.com/philipp01105/kdiag/formatter"
	"github.com/philipp01105/kdiag/handler"
)

// ErrClosed is returned by Handle after Close
var ErrClosed = errors.New("console handler closed")

// Config holds configuration for console handler
type Config struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
}

// Handler writes entries to an io.Writer
type Handler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	stats           *handler.Stats

	mu     sync.Mutex // protects buf, writer and closed
	buf    bytes.Buffer
	closed bool
}

// New creates a new console handler
func New(cfg Config) *Handler {
	applyDefaults(&cfg)
	h := &Handler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     handler.NewStats(),
	}

	// Cache optional formatter interfaces
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	if h.bufferFormatter != nil {
		h.buf.Grow(128)
	}
	return h
}

// Handle formats and writes a log entry.
func (h *Handler) Handle(entry core.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrClosed
	}

	err := h.write(&entry)
	h.stats.Record(err)
	return err
}

// write picks the cheapest path the formatter supports. Must hold mu.
func (h *Handler) write(entry *core.Entry) error {
	if h.bufferFormatter != nil {
		h.buf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.buf)
		_, err := h.writer.Write(h.buf.Bytes())
		return err
	}

	if h.writerFormatter != nil {
		return h.writerFormatter.FormatTo(entry, h.writer)
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.writer.Write(data)
	return err
}

// Stats returns a snapshot of the current statistics
func (h *Handler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close marks the handler closed. The writer itself is left open.
func (h *Handler) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	return nil
}
