package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/kdiag/core"
)

// TextFormatter formats stored entries as human-readable lines
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatEntry formats an entry as text into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	f.formatToBuffer(entry, buf)
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = [...]string{
	core.LevelDefault: "[DEFAULT] ",
	core.LevelEmerg:   "[EMERG] ",
	core.LevelAlert:   "[ALERT] ",
	core.LevelCrit:    "[CRIT] ",
	core.LevelErr:     "[ERR] ",
	core.LevelWarning: "[WARNING] ",
	core.LevelNotice:  "[NOTICE] ",
	core.LevelInfo:    "[INFO] ",
	core.LevelDebug:   "[DEBUG] ",
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	if f.ShowPriority {
		appendPriority(buf, entry.Level)
	}

	if entry.Level >= 0 && int(entry.Level) < len(levelBrackets) {
		buf.WriteString(levelBrackets[entry.Level])
	} else {
		buf.WriteString("[UNKNOWN] ")
	}

	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}
