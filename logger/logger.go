package logger

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/philipp01105/logtree/channel"
	"github.com/philipp01105/logtree/core"
	"github.com/philipp01105/logtree/format"
)

// ErrUnknownProperty is returned by SetProperty for any key other than
// "level" and "channel".
var ErrUnknownProperty = errors.New("unknown logger property")

// Logger filters messages by severity and hands the survivors to its
// attached channel. Loggers are created and owned by a Registry; the zero
// value is not usable.
//
// The level and channel fields are read on every log call and replaced
// atomically, without a per-logger lock: a concurrent reader may observe a
// stale value for a moment but never a torn one. There is no per-logger
// ordering either; concurrent Log calls may reach the channel in any order.
type Logger struct {
	name  string
	level atomic.Int32
	ch    atomic.Pointer[core.Channel]
}

func newLogger(name string, ch core.Channel, level core.Level) *Logger {
	l := &Logger{name: name}
	l.level.Store(int32(level))
	l.storeChannel(ch)
	return l
}

func (l *Logger) storeChannel(ch core.Channel) {
	if ch == nil {
		l.ch.Store(nil)
		return
	}
	l.ch.Store(&ch)
}

// Name returns the logger's dotted hierarchical name. The root logger's
// name is "".
func (l *Logger) Name() string { return l.name }

// Level returns the current severity threshold.
func (l *Logger) Level() core.Level { return core.Level(l.level.Load()) }

// Channel returns the attached channel, or nil if none is attached.
func (l *Logger) Channel() core.Channel {
	p := l.ch.Load()
	if p == nil {
		return nil
	}
	return *p
}

// SetLevel sets the severity threshold. LevelNone blocks every message.
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int32(level))
}

// SetLevelName sets the threshold from a symbolic name such as "warning".
func (l *Logger) SetLevelName(name string) error {
	level, err := core.ParseLevel(name)
	if err != nil {
		return err
	}
	l.SetLevel(level)
	return nil
}

// SetChannel attaches ch, replacing any previous channel. The channel is a
// shared handle and is not closed on replacement; nil detaches.
func (l *Logger) SetChannel(ch core.Channel) {
	l.storeChannel(ch)
}

// SetProperty routes the write-only string properties "level" (a symbolic
// level name) and "channel" (the name of a channel registered with the
// channel package) to the corresponding setter. Any other key fails with
// ErrUnknownProperty.
func (l *Logger) SetProperty(name, value string) error {
	switch name {
	case "level":
		return l.SetLevelName(value)
	case "channel":
		ch, ok := channel.Find(value)
		if !ok {
			return fmt.Errorf("%w: %q", channel.ErrUnknownChannel, value)
		}
		l.SetChannel(ch)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownProperty, name)
}

// Is reports whether at least the given level is enabled. The whole
// probe-then-format pattern hangs off this check: probe first, and only
// build expensive message arguments when it holds.
func (l *Logger) Is(level core.Level) bool {
	return l.Level() >= level
}

// IsFatal reports whether the level is at least LevelFatal.
func (l *Logger) IsFatal() bool { return l.Is(core.LevelFatal) }

// IsCritical reports whether the level is at least LevelCritical.
func (l *Logger) IsCritical() bool { return l.Is(core.LevelCritical) }

// IsError reports whether the level is at least LevelError.
func (l *Logger) IsError() bool { return l.Is(core.LevelError) }

// IsWarning reports whether the level is at least LevelWarning.
func (l *Logger) IsWarning() bool { return l.Is(core.LevelWarning) }

// IsNotice reports whether the level is at least LevelNotice.
func (l *Logger) IsNotice() bool { return l.Is(core.LevelNotice) }

// IsInformation reports whether the level is at least LevelInformation.
func (l *Logger) IsInformation() bool { return l.Is(core.LevelInformation) }

// IsDebug reports whether the level is at least LevelDebug.
func (l *Logger) IsDebug() bool { return l.Is(core.LevelDebug) }

// IsTrace reports whether the level is at least LevelTrace.
func (l *Logger) IsTrace() bool { return l.Is(core.LevelTrace) }

// dispatch builds the message and delivers it to the channel. The filter
// has two silent no-op exits: level too low, or no channel attached.
func (l *Logger) dispatch(level core.Level, text, file string, line int) error {
	if !l.Is(level) {
		return nil
	}
	p := l.ch.Load()
	if p == nil {
		return nil
	}
	return (*p).Log(core.Message{
		Name:     l.name,
		Text:     text,
		Priority: level,
		File:     file,
		Line:     line,
		Time:     time.Now(),
	})
}

// Log logs text at the given priority if it passes the filter. Any channel
// delivery error is returned unmodified.
func (l *Logger) Log(level core.Level, text string) error {
	return l.dispatch(level, text, "", 0)
}

// LogAt is Log with a source location. The file string is carried on the
// message as given.
func (l *Logger) LogAt(level core.Level, text, file string, line int) error {
	return l.dispatch(level, text, file, line)
}

// Logf logs the positional-placeholder expansion of pattern (see
// format.Format). The level probe runs before any formatting work.
func (l *Logger) Logf(level core.Level, pattern string, args ...any) error {
	if !l.Is(level) {
		return nil
	}
	return l.dispatch(level, format.Format(pattern, args...), "", 0)
}

// LogError logs err's description at LevelError. A nil error is a no-op.
func (l *Logger) LogError(err error) error {
	if err == nil {
		return nil
	}
	return l.dispatch(core.LevelError, err.Error(), "", 0)
}

// LogErrorAt is LogError with a source location.
func (l *Logger) LogErrorAt(err error, file string, line int) error {
	if err == nil {
		return nil
	}
	return l.dispatch(core.LevelError, err.Error(), file, line)
}

// Dump logs text followed by the canonical hex+ASCII rendering of buf. The
// optional level defaults to LevelDebug. Nothing is rendered when the probe
// fails.
func (l *Logger) Dump(text string, buf []byte, level ...core.Level) error {
	prio := core.LevelDebug
	if len(level) > 0 {
		prio = level[0]
	}
	if !l.Is(prio) {
		return nil
	}
	return l.dispatch(prio, format.AppendDump(text, buf), "", 0)
}

// Fatal logs text at LevelFatal.
func (l *Logger) Fatal(text string) error { return l.dispatch(core.LevelFatal, text, "", 0) }

// FatalAt logs text at LevelFatal with a source location.
func (l *Logger) FatalAt(text, file string, line int) error {
	return l.dispatch(core.LevelFatal, text, file, line)
}

// Fatalf logs a positional-formatted message at LevelFatal.
func (l *Logger) Fatalf(pattern string, args ...any) error {
	return l.Logf(core.LevelFatal, pattern, args...)
}

// Critical logs text at LevelCritical.
func (l *Logger) Critical(text string) error { return l.dispatch(core.LevelCritical, text, "", 0) }

// CriticalAt logs text at LevelCritical with a source location.
func (l *Logger) CriticalAt(text, file string, line int) error {
	return l.dispatch(core.LevelCritical, text, file, line)
}

// Criticalf logs a positional-formatted message at LevelCritical.
func (l *Logger) Criticalf(pattern string, args ...any) error {
	return l.Logf(core.LevelCritical, pattern, args...)
}

// Error logs text at LevelError.
func (l *Logger) Error(text string) error { return l.dispatch(core.LevelError, text, "", 0) }

// ErrorAt logs text at LevelError with a source location.
func (l *Logger) ErrorAt(text, file string, line int) error {
	return l.dispatch(core.LevelError, text, file, line)
}

// Errorf logs a positional-formatted message at LevelError.
func (l *Logger) Errorf(pattern string, args ...any) error {
	return l.Logf(core.LevelError, pattern, args...)
}

// Warning logs text at LevelWarning.
func (l *Logger) Warning(text string) error { return l.dispatch(core.LevelWarning, text, "", 0) }

// WarningAt logs text at LevelWarning with a source location.
func (l *Logger) WarningAt(text, file string, line int) error {
	return l.dispatch(core.LevelWarning, text, file, line)
}

// Warningf logs a positional-formatted message at LevelWarning.
func (l *Logger) Warningf(pattern string, args ...any) error {
	return l.Logf(core.LevelWarning, pattern, args...)
}

// Notice logs text at LevelNotice.
func (l *Logger) Notice(text string) error { return l.dispatch(core.LevelNotice, text, "", 0) }

// NoticeAt logs text at LevelNotice with a source location.
func (l *Logger) NoticeAt(text, file string, line int) error {
	return l.dispatch(core.LevelNotice, text, file, line)
}

// Noticef logs a positional-formatted message at LevelNotice.
func (l *Logger) Noticef(pattern string, args ...any) error {
	return l.Logf(core.LevelNotice, pattern, args...)
}

// Information logs text at LevelInformation.
func (l *Logger) Information(text string) error {
	return l.dispatch(core.LevelInformation, text, "", 0)
}

// InformationAt logs text at LevelInformation with a source location.
func (l *Logger) InformationAt(text, file string, line int) error {
	return l.dispatch(core.LevelInformation, text, file, line)
}

// Informationf logs a positional-formatted message at LevelInformation.
func (l *Logger) Informationf(pattern string, args ...any) error {
	return l.Logf(core.LevelInformation, pattern, args...)
}

// Debug logs text at LevelDebug.
func (l *Logger) Debug(text string) error { return l.dispatch(core.LevelDebug, text, "", 0) }

// DebugAt logs text at LevelDebug with a source location.
func (l *Logger) DebugAt(text, file string, line int) error {
	return l.dispatch(core.LevelDebug, text, file, line)
}

// Debugf logs a positional-formatted message at LevelDebug.
func (l *Logger) Debugf(pattern string, args ...any) error {
	return l.Logf(core.LevelDebug, pattern, args...)
}

// Trace logs text at LevelTrace.
func (l *Logger) Trace(text string) error { return l.dispatch(core.LevelTrace, text, "", 0) }

// TraceAt logs text at LevelTrace with a source location.
func (l *Logger) TraceAt(text, file string, line int) error {
	return l.dispatch(core.LevelTrace, text, file, line)
}

// Tracef logs a positional-formatted message at LevelTrace.
func (l *Logger) Tracef(pattern string, args ...any) error {
	return l.Logf(core.LevelTrace, pattern, args...)
}
