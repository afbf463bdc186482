package logger

import "github.com/philipp01105/kdiag/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DefaultLevel = core.LevelDefault
	EmergLevel   = core.LevelEmerg
	AlertLevel   = core.LevelAlert
	CritLevel    = core.LevelCrit
	ErrLevel     = core.LevelErr
	WarningLevel = core.LevelWarning
	NoticeLevel  = core.LevelNotice
	InfoLevel    = core.LevelInfo
	DebugLevel   = core.LevelDebug
)

// Severity prefixes for Printk format strings
const (
	KernSOH     = "\x01"
	KernEmerg   = KernSOH + "0" // system is unusable
	KernAlert   = KernSOH + "1" // action must be taken immediately
	KernCrit    = KernSOH + "2" // critical conditions
	KernErr     = KernSOH + "3" // error conditions
	KernWarning = KernSOH + "4" // warning conditions
	KernNotice  = KernSOH + "5" // normal but significant condition
	KernInfo    = KernSOH + "6" // informational
	KernDebug   = KernSOH + "7" // debug-level messages
	KernDefault = ""
)

// ParseLevelPrefix strips a severity prefix from format. Without a marker
// the format is returned unchanged at DefaultLevel. A marker followed by an
// unknown code still consumes both bytes and yields DefaultLevel; a lone
// marker consumes just itself.
func ParseLevelPrefix(format string) (Level, string) {
	if len(format) == 0 || format[0] != KernSOH[0] {
		return DefaultLevel, format
	}
	if len(format) == 1 {
		return DefaultLevel, format[1:]
	}

	code := format[1]
	rest := format[2:]
	if code >= '0' && code <= '7' {
		return Level(code-'0') + EmergLevel, rest
	}
	return DefaultLevel, rest
}

// ParseLevel converts a level name or number to a Level
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
