package logger

import "github.com/philipp01105/logtree/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	LevelNone        = core.LevelNone
	LevelFatal       = core.LevelFatal
	LevelCritical    = core.LevelCritical
	LevelError       = core.LevelError
	LevelWarning     = core.LevelWarning
	LevelNotice      = core.LevelNotice
	LevelInformation = core.LevelInformation
	LevelDebug       = core.LevelDebug
	LevelTrace       = core.LevelTrace
)

// ParseLevel converts a symbolic level name to a Level. See core.ParseLevel.
func ParseLevel(s string) (Level, error) {
	return core.ParseLevel(s)
}
