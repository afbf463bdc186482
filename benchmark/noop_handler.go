// Package benchmark compares the printk path against general purpose
// loggers and measures the library's own building blocks.
package benchmark

import (
	"github.com/philipp01105/kdiag/core"
	"github.com/philipp01105/kdiag/handler"
)

type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
