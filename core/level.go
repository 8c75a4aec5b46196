package core

import (
	"errors"
	"fmt"
	"strings"
)

// Level is both a message priority and a logger threshold. Higher values are
// more verbose. A message passes a logger's filter iff the logger's level is
// numerically greater than or equal to the message priority.
type Level int8

const (
	// LevelNone turns off logging entirely; no priority passes it.
	LevelNone Level = iota
	// LevelFatal for unrecoverable failures
	LevelFatal
	// LevelCritical for failures that demand immediate attention
	LevelCritical
	// LevelError for error messages
	LevelError
	// LevelWarning for warning messages
	LevelWarning
	// LevelNotice for normal but significant events
	LevelNotice
	// LevelInformation for general informational messages (default)
	LevelInformation
	// LevelDebug for debugging output
	LevelDebug
	// LevelTrace for the most verbose tracing output
	LevelTrace
)

// ErrUnknownLevel is returned by ParseLevel for an unrecognized symbolic name.
var ErrUnknownLevel = errors.New("unknown log level")

var levelNames = [...]string{
	"none",
	"fatal",
	"critical",
	"error",
	"warning",
	"notice",
	"information",
	"debug",
	"trace",
}

// String returns the symbolic name of the level.
func (l Level) String() string {
	if l < LevelNone || l > LevelTrace {
		return fmt.Sprintf("level(%d)", int8(l))
	}
	return levelNames[l]
}

// ParseLevel converts a symbolic level name to a Level. Matching is
// case-insensitive over the nine names none, fatal, critical, error, warning,
// notice, information, debug and trace. Any other string fails with an error
// wrapping ErrUnknownLevel.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "none":
		return LevelNone, nil
	case "fatal":
		return LevelFatal, nil
	case "critical":
		return LevelCritical, nil
	case "error":
		return LevelError, nil
	case "warning":
		return LevelWarning, nil
	case "notice":
		return LevelNotice, nil
	case "information":
		return LevelInformation, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}
	return LevelNone, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
