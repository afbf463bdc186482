package logger

import (
	"sync"
	"sync/atomic"

	"github.com/philipp01105/kdiag/core"
	"github.com/philipp01105/kdiag/formatter"
	"github.com/philipp01105/kdiag/handler"
	"github.com/philipp01105/kdiag/logstore"
)

// DefaultBufferSize holds one rendered line plus its terminator
const DefaultBufferSize = 82

// Logger renders printk-style messages into a store
type Logger struct {
	store   *logstore.Store
	handler handler.Handler

	mu  sync.Mutex // protects buf
	buf []byte

	dropped atomic.Uint64
	failed  atomic.Uint64
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	store      *logstore.Store
	handler    handler.Handler
	bufferSize int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		bufferSize: DefaultBufferSize,
	}
}

// WithStore sets the store messages are written to (default: logstore.New())
func (b *Builder) WithStore(s *logstore.Store) *Builder {
	b.store = s
	return b
}

// WithBufferSize sets the scratch buffer capacity, terminator included.
// Values below 2 are ignored.
func (b *Builder) WithBufferSize(n int) *Builder {
	if n >= 2 {
		b.bufferSize = n
	}
	return b
}

// WithHandler sets a handler that receives every entry as stored
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	s := b.store
	if s == nil {
		s = logstore.New()
	}
	return &Logger{
		store:   s,
		handler: b.handler,
		buf:     make([]byte, b.bufferSize),
	}
}

// Printk renders format and args and stores the result. The severity is
// taken from a leading Kern* prefix; without one the store's default level
// applies. An empty format does nothing.
func (l *Logger) Printk(format string, args ...core.Arg) {
	if format == "" {
		return
	}
	level, format := ParseLevelPrefix(format)
	l.log(level, format, args)
}

// Printf is Printk for plain Go values, converted with ArgOf
func (l *Logger) Printf(format string, args ...any) {
	if format == "" {
		return
	}
	converted := make([]core.Arg, len(args))
	for i, a := range args {
		converted[i] = ArgOf(a)
	}
	level, format := ParseLevelPrefix(format)
	l.log(level, format, converted)
}

// log renders into the scratch buffer and writes the store. Errors are
// counted, never returned.
func (l *Logger) log(level core.Level, format string, args []core.Arg) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := formatter.Render(l.buf, format, args...)
	l.write(level, string(l.buf[:n]))
}

// write stores msg and mirrors the stored entry. Must hold mu.
func (l *Logger) write(level core.Level, msg string) {
	entry, _, err := l.store.WriteEntry(level, msg)
	if err != nil {
		l.dropped.Add(1)
		return
	}

	if l.handler == nil {
		return
	}
	if err := l.handler.Handle(entry); err != nil {
		l.failed.Add(1)
	}
}

// Emerg logs at EMERG
func (l *Logger) Emerg(format string, args ...core.Arg) {
	l.log(EmergLevel, format, args)
}

// Alert logs at ALERT
func (l *Logger) Alert(format string, args ...core.Arg) {
	l.log(AlertLevel, format, args)
}

// Crit logs at CRIT
func (l *Logger) Crit(format string, args ...core.Arg) {
	l.log(CritLevel, format, args)
}

// Err logs at ERR
func (l *Logger) Err(format string, args ...core.Arg) {
	l.log(ErrLevel, format, args)
}

// Warning logs at WARNING
func (l *Logger) Warning(format string, args ...core.Arg) {
	l.log(WarningLevel, format, args)
}

// Notice logs at NOTICE
func (l *Logger) Notice(format string, args ...core.Arg) {
	l.log(NoticeLevel, format, args)
}

// Info logs at INFO
func (l *Logger) Info(format string, args ...core.Arg) {
	l.log(InfoLevel, format, args)
}

// Debug logs at DEBUG
func (l *Logger) Debug(format string, args ...core.Arg) {
	l.log(DebugLevel, format, args)
}

// Log writes an already rendered message at level
func (l *Logger) Log(level core.Level, msg string) {
	l.mu.Lock()
	l.write(level, msg)
	l.mu.Unlock()
}

// Store returns the store the logger writes to
func (l *Logger) Store() *logstore.Store {
	return l.store
}

// BufferSize returns the scratch buffer capacity
func (l *Logger) BufferSize() int {
	return len(l.buf)
}

// Dropped returns the number of messages the store rejected
func (l *Logger) Dropped() uint64 {
	return l.dropped.Load()
}

// Failed returns the number of entries the handler failed to process
func (l *Logger) Failed() uint64 {
	return l.failed.Load()
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
