// Package formatter holds the bounded format engine and the display
// formatters for stored entries.
//
// Render is the engine. It parses a printf-style format string against an
// ordered list of core.Arg values and writes the result into a fixed
// buffer through a Writer, which is the only thing allowed to touch the
// destination. Writer reserves the last byte for a 0 sentinel and silently
// drops anything beyond, so no input can overflow the buffer. Malformed
// conversions are copied through literally instead of failing, which keeps
// a broken diagnostic visible rather than losing it.
//
// The display side exposes three interfaces: Formatter, which returns a
// []byte; WriterFormatter, which writes directly to an io.Writer; and
// BufferFormatter, which formats into a caller-owned bytes.Buffer.
// TextFormatter and JSONFormatter implement all three and use a pooled
// bytes.Buffer internally. Buffers larger than 64 KiB are not returned
// to the pool.
package formatter
