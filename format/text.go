package format

import (
	"strconv"
	"time"

	"github.com/philipp01105/logtree/core"
)

// Text formats messages as single human-readable lines:
// timestamp, level tag, logger name, optional source location, text.
type Text struct {
	Config
}

// NewText creates a new text formatter
func NewText(cfg Config) *Text {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &Text{Config: cfg}
}

// pre-formatted level tags to avoid multiple WriteString calls
var levelTags = [...]string{
	core.LevelNone:        " [NONE] ",
	core.LevelFatal:       " [FATAL] ",
	core.LevelCritical:    " [CRITICAL] ",
	core.LevelError:       " [ERROR] ",
	core.LevelWarning:     " [WARNING] ",
	core.LevelNotice:      " [NOTICE] ",
	core.LevelInformation: " [INFORMATION] ",
	core.LevelDebug:       " [DEBUG] ",
	core.LevelTrace:       " [TRACE] ",
}

// Format formats a message as text
func (f *Text) Format(m core.Message) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	buf.Write(m.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	if int(m.Priority) < len(levelTags) && m.Priority >= 0 {
		buf.WriteString(levelTags[m.Priority])
	} else {
		buf.WriteString(" [UNKNOWN] ")
	}

	if m.Name != "" {
		buf.WriteString(m.Name)
		buf.WriteString(": ")
	}

	if m.File != "" {
		buf.WriteByte('[')
		buf.WriteString(m.File)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(m.Line))
		buf.WriteString("] ")
	}

	buf.WriteString(m.Text)
	buf.WriteByte('\n')

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}
