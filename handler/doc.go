// Package handler provides the Handler interface and the helpers that move
// stored log entries to outputs.
//
// A Logger writes every message into its logstore.Store first; a Handler
// configured on it receives a copy of each entry exactly as stored. Dump
// replays a store through a Handler, newest entry first, using an ordinary
// read session.
//
// Built-in handlers:
//
//   - consolehandler writes formatted entries to any io.Writer (default: stdout).
//   - zaphandler mirrors entries into a *zap.Logger.
//   - sloghandler goes the other way and lets log/slog feed a Logger.
//   - MultiHandler fans out a single entry to multiple child handlers.
//
// Handlers count processed and failed entries via the Stats type.
package handler
