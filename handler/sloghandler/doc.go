// Package sloghandler provides a log/slog.Handler that feeds records into
// a logger.Logger, so code written against the standard library's
// structured logging lands in the severity-filtered store.
//
// Records are flattened to "message key=value ..." and stored at the
// mapped severity: slog errors become ERR, warnings WARNING, info INFO
// and anything lower DEBUG. Attributes beyond the store's message length
// are truncated like any other message.
package sloghandler
