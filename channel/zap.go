package channel

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logtree/core"
)

// Zap forwards messages to a zap.Logger, so a logtree hierarchy can feed an
// application's existing zap pipeline. The logger name travels as the
// "logger" field and any source location as "file"/"line".
type Zap struct {
	l *zap.Logger
}

// NewZap creates a channel writing to the given zap logger.
func NewZap(l *zap.Logger) *Zap {
	return &Zap{l: l}
}

// zapLevel maps a message priority onto zap's level scale. Fatal and
// Critical both map to zap's Error: letting zap's Fatal terminate the host
// process is not this bridge's call to make.
func zapLevel(p core.Level) zapcore.Level {
	switch p {
	case core.LevelFatal, core.LevelCritical, core.LevelError:
		return zapcore.ErrorLevel
	case core.LevelWarning:
		return zapcore.WarnLevel
	case core.LevelNotice, core.LevelInformation:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Log writes the message through zap, honoring zap's own level filtering.
func (z *Zap) Log(m core.Message) error {
	ce := z.l.Check(zapLevel(m.Priority), m.Text)
	if ce == nil {
		return nil
	}
	fields := make([]zap.Field, 0, 4)
	fields = append(fields, zap.String("logger", m.Name), zap.String("priority", m.Priority.String()))
	if m.File != "" {
		fields = append(fields, zap.String("file", m.File), zap.Int("line", m.Line))
	}
	ce.Write(fields...)
	return nil
}

// Close syncs the underlying zap logger.
func (z *Zap) Close() error {
	return z.l.Sync()
}
