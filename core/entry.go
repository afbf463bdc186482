package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Level represents the severity of a log entry. Lower values are more
// severe. LevelDefault is a sentinel that callers pass to mean "use the
// configured default"; it is never stored as an entry's effective level.
type Level int8

const (
	// LevelDefault substitutes the store's current default level
	LevelDefault Level = iota
	// LevelEmerg system is unusable
	LevelEmerg
	// LevelAlert action must be taken immediately
	LevelAlert
	// LevelCrit critical conditions
	LevelCrit
	// LevelErr error conditions
	LevelErr
	// LevelWarning warning conditions
	LevelWarning
	// LevelNotice normal but significant condition
	LevelNotice
	// LevelInfo informational
	LevelInfo
	// LevelDebug debug-level messages
	LevelDebug

	levelCount
)

// pre-computed level names, indexed by Level
var levelNames = [...]string{
	LevelDefault: "DEFAULT",
	LevelEmerg:   "EMERG",
	LevelAlert:   "ALERT",
	LevelCrit:    "CRIT",
	LevelErr:     "ERR",
	LevelWarning: "WARNING",
	LevelNotice:  "NOTICE",
	LevelInfo:    "INFO",
	LevelDebug:   "DEBUG",
}

// String returns the string representation of the level
func (l Level) String() string {
	if l >= 0 && l < levelCount {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// Valid reports whether l is a storable severity (EMERG through DEBUG).
// The LevelDefault sentinel is not valid on its own.
func (l Level) Valid() bool {
	return l > LevelDefault && l < levelCount
}

// Priority returns the kernel printk digit for l (EMERG=0 ... DEBUG=7),
// or -1 when l is not a storable severity.
func (l Level) Priority() int {
	if !l.Valid() {
		return -1
	}
	return int(l) - 1
}

// AtLeast reports whether l is at least as severe as ceiling.
func (l Level) AtLeast(ceiling Level) bool {
	return l <= ceiling
}

// ParseLevel converts a level name or its numeric value (1-8) to a Level.
// Unrecognized input returns LevelDefault and ErrInvalidLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "DEFAULT":
		return LevelDefault, nil
	case "EMERG", "EMERGENCY":
		return LevelEmerg, nil
	case "ALERT":
		return LevelAlert, nil
	case "CRIT", "CRITICAL":
		return LevelCrit, nil
	case "ERR", "ERROR":
		return LevelErr, nil
	case "WARNING", "WARN":
		return LevelWarning, nil
	case "NOTICE":
		return LevelNotice, nil
	case "INFO":
		return LevelInfo, nil
	case "DEBUG":
		return LevelDebug, nil
	}
	if n, err := strconv.Atoi(s); err == nil && Level(n).Valid() {
		return Level(n), nil
	}
	return LevelDefault, fmt.Errorf("parse level %q: %w", s, ErrInvalidLevel)
}

// Entry is a single stored log message with its severity. Entries handed
// out by a store are copies; mutating one never affects the store.
type Entry struct {
	Level   Level
	Message string
}
