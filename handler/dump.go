package handler

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/philipp01105/kdiag/core"
	"github.com/philipp01105/kdiag/logstore"
)

// Dump runs a read session on store at level and hands every matching entry
// to h, most recent first. It returns the number of entries handed over.
// An empty store is not an error. Handler errors are combined and returned
// after the session completes.
func Dump(store *logstore.Store, level core.Level, h Handler) (int, error) {
	if err := store.ReadStart(level); err != nil {
		if errors.Is(err, core.ErrEmpty) {
			return 0, nil
		}
		return 0, fmt.Errorf("dump: %w", err)
	}
	defer store.ReadEnd()

	var (
		n       int
		handled error
	)
	for {
		entry, err := store.ReadNext()
		if err != nil {
			if errors.Is(err, core.ErrEmpty) {
				break
			}
			return n, fmt.Errorf("dump: %w", err)
		}
		handled = multierr.Append(handled, h.Handle(entry))
		n++
	}
	return n, handled
}
