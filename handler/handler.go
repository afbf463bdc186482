package handler

import "github.com/philipp01105/kdiag/core"

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry
	Handle(entry core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}

// Func adapts an ordinary function to the Handler interface
type Func func(entry core.Entry) error

// Handle calls f(entry)
func (f Func) Handle(entry core.Entry) error {
	return f(entry)
}

// Close is a no-op
func (f Func) Close() error {
	return nil
}
