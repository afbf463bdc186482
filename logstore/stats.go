package logstore

import "sync/atomic"

// Stats tracks store activity
type Stats struct {
	// Written counts entries accepted by Write
	Written uint64
	// Truncated counts entries stored with an ellipsis
	Truncated uint64
	// Evicted counts entries overwritten because the store was full
	Evicted uint64
	// Rejected counts writes refused for an invalid level
	Rejected uint64
}

type counters struct {
	written   atomic.Uint64
	truncated atomic.Uint64
	evicted   atomic.Uint64
	rejected  atomic.Uint64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Written:   c.written.Load(),
		Truncated: c.truncated.Load(),
		Evicted:   c.evicted.Load(),
		Rejected:  c.rejected.Load(),
	}
}

func (c *counters) reset() {
	c.written.Store(0)
	c.truncated.Store(0)
	c.evicted.Store(0)
	c.rejected.Store(0)
}
