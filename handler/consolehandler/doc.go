// Package consolehandler provides a console handler that writes formatted
// log entries to any io.Writer (default: os.Stdout).
//
// Entries are written synchronously. When the configured formatter
// implements formatter.BufferFormatter, the handler formats into a buffer
// it owns and issues exactly one Write per entry.
package consolehandler
