package logstore

import (
	"fmt"
	"strings"
	"sync"

	"github.com/philipp01105/kdiag/core"
)

const (
	// DefaultCapacity is the number of live entries a store keeps
	DefaultCapacity = 5
	// DefaultMessageLen is the maximum stored message length
	DefaultMessageLen = 10
	// DefaultLevel is used when a store is initialised with an invalid level
	DefaultLevel = core.LevelWarning

	// ellipsis marks a truncated message
	ellipsis = "..."
	// minMessageLen leaves room for the ellipsis
	minMessageLen = len(ellipsis)
	// maxCapacity keeps ring indices within a byte
	maxCapacity = 254
)

type slot struct {
	level core.Level
	msg   []byte
	n     int
}

// Store is a severity-filtered circular log of fixed capacity.
type Store struct {
	mu sync.Mutex

	// ring of capacity+1 slots; writeIdx == firstIdx means empty
	slots      []slot
	msgLen     int
	firstIdx   int
	writeIdx   int
	readIdx    int
	readLevel  core.Level
	defaultLvl core.Level

	stats counters
}

// Option configures a Store
type Option func(*options)

type options struct {
	capacity int
	msgLen   int
	level    core.Level
}

// WithCapacity sets the number of live entries. Values outside 1..254 are
// clamped.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = min(max(n, 1), maxCapacity)
	}
}

// WithMessageLen sets the maximum stored message length. Values below 3
// are raised to 3 so the truncation marker always fits.
func WithMessageLen(m int) Option {
	return func(o *options) {
		o.msgLen = max(m, minMessageLen)
	}
}

// WithDefaultLevel sets the level substituted for core.LevelDefault.
// An invalid level falls back to DefaultLevel.
func WithDefaultLevel(l core.Level) Option {
	return func(o *options) {
		o.level = l
	}
}

// New creates an initialised, empty store
func New(opts ...Option) *Store {
	o := options{
		capacity: DefaultCapacity,
		msgLen:   DefaultMessageLen,
		level:    DefaultLevel,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Store{
		slots:  make([]slot, o.capacity+1),
		msgLen: o.msgLen,
	}
	for i := range s.slots {
		s.slots[i].msg = make([]byte, o.msgLen)
	}
	_ = s.Init(o.level)
	return s
}

// Init resets the store to empty, closes any read session and sets the
// default level. An invalid level falls back to DefaultLevel.
func (s *Store) Init(level core.Level) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if level.Valid() {
		s.defaultLvl = level
	} else {
		s.defaultLvl = DefaultLevel
	}
	s.firstIdx = 0
	s.writeIdx = 0
	s.readIdx = 0
	s.readLevel = core.LevelDefault
	s.stats.reset()
	return nil
}

// SetDefaultLevel replaces the level substituted for core.LevelDefault
func (s *Store) SetDefaultLevel(level core.Level) error {
	if !level.Valid() {
		return fmt.Errorf("set default level %d: %w", level, core.ErrInvalidLevel)
	}
	s.mu.Lock()
	s.defaultLvl = level
	s.mu.Unlock()
	return nil
}

// DefaultLevel returns the current default level
func (s *Store) DefaultLevel() core.Level {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.defaultLvl
}

// resolve substitutes the default for the sentinel. Must hold mu.
func (s *Store) resolve(level core.Level) (core.Level, error) {
	if level == core.LevelDefault {
		return s.defaultLvl, nil
	}
	if !level.Valid() {
		return core.LevelDefault, fmt.Errorf("level %d: %w", level, core.ErrInvalidLevel)
	}
	return level, nil
}

func (s *Store) next(i int) int {
	if i == len(s.slots)-1 {
		return 0
	}
	return i + 1
}

func (s *Store) prev(i int) int {
	if i == 0 {
		return len(s.slots) - 1
	}
	return i - 1
}

// Write stores msg at level, evicting the oldest entry when full. A message
// longer than MessageLen is stored truncated with its last three characters
// replaced by "..." and the call reports core.StatusChanged. An invalid level
// is rejected without touching the store.
func (s *Store) Write(level core.Level, msg string) (core.Status, error) {
	_, status, err := s.WriteEntry(level, msg)
	return status, err
}

// WriteEntry is Write that also returns the entry exactly as stored, with
// the default level resolved and any truncation applied.
func (s *Store) WriteEntry(level core.Level, msg string) (core.Entry, core.Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	level, err := s.resolve(level)
	if err != nil {
		s.stats.rejected.Add(1)
		return core.Entry{}, core.StatusError, err
	}

	sl := &s.slots[s.writeIdx]
	n, truncated := copyBounded(sl.msg, msg)
	status := core.StatusOK
	if truncated {
		copy(sl.msg[n-len(ellipsis):n], ellipsis)
		status = core.StatusChanged
		s.stats.truncated.Add(1)
	}
	sl.n = n
	sl.level = level
	stored := core.Entry{Level: level, Message: string(sl.msg[:n])}

	s.writeIdx = s.next(s.writeIdx)
	if s.writeIdx == s.firstIdx {
		s.firstIdx = s.next(s.firstIdx)
		s.stats.evicted.Add(1)
	}
	s.stats.written.Add(1)
	return stored, status, nil
}

// ReadStart opens a read session yielding entries at least as severe as
// level, newest first. It returns core.ErrEmpty when the store holds nothing.
func (s *Store) ReadStart(level core.Level) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	level, err := s.resolve(level)
	if err != nil {
		return err
	}
	if s.writeIdx == s.firstIdx {
		return core.ErrEmpty
	}
	s.readLevel = level
	s.readIdx = s.writeIdx
	return nil
}

// ReadNext returns the next matching entry of the open session. Once the
// session is exhausted it keeps returning core.ErrEmpty. Without an open
// session it returns core.ErrNoSession.
func (s *Store) ReadNext() (core.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.readLevel.Valid() {
		return core.Entry{}, core.ErrNoSession
	}
	if s.readIdx == s.firstIdx {
		return core.Entry{}, core.ErrEmpty
	}

	for s.readIdx != s.firstIdx {
		s.readIdx = s.prev(s.readIdx)
		if s.slots[s.readIdx].level.AtLeast(s.readLevel) {
			break
		}
	}

	sl := &s.slots[s.readIdx]
	if !sl.level.AtLeast(s.readLevel) {
		return core.Entry{}, core.ErrEmpty
	}
	return core.Entry{Level: sl.level, Message: string(sl.msg[:sl.n])}, nil
}

// ReadEnd closes the read session. Calling it without a session is a no-op.
func (s *Store) ReadEnd() {
	s.mu.Lock()
	s.readLevel = core.LevelDefault
	s.mu.Unlock()
}

// Recent returns the entries a session at level would yield, newest first,
// without disturbing an open session.
func (s *Store) Recent(level core.Level) ([]core.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	level, err := s.resolve(level)
	if err != nil {
		return nil, err
	}
	var out []core.Entry
	for i := s.writeIdx; i != s.firstIdx; {
		i = s.prev(i)
		sl := &s.slots[i]
		if sl.level.AtLeast(level) {
			out = append(out, core.Entry{Level: sl.level, Message: string(sl.msg[:sl.n])})
		}
	}
	return out, nil
}

// Len returns the number of live entries
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.writeIdx - s.firstIdx
	if n < 0 {
		n += len(s.slots)
	}
	return n
}

// Empty reports whether the store holds no entries
func (s *Store) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeIdx == s.firstIdx
}

// Cap returns the maximum number of live entries
func (s *Store) Cap() int {
	return len(s.slots) - 1
}

// MessageLen returns the maximum stored message length
func (s *Store) MessageLen() int {
	return s.msgLen
}

// Stats returns a snapshot of the store counters
func (s *Store) Stats() Stats {
	return s.stats.snapshot()
}

// copyBounded copies src into dst up to len(dst) bytes, stopping at an
// embedded 0. truncated reports whether src had more to give.
func copyBounded(dst []byte, src string) (n int, truncated bool) {
	if i := strings.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	n = copy(dst, src)
	return n, len(src) > len(dst)
}
