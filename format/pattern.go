package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/philipp01105/logtree/core"
)

// ErrUnknownTag is returned by NewPattern for an unrecognized %-tag.
var ErrUnknownTag = errors.New("unknown pattern tag")

// Pattern formats messages according to a layout string parsed once at
// construction. Recognized tags:
//
//	%d  timestamp (TimestampFormat, RFC3339 by default)
//	%s  severity name, upper case
//	%l  logger name
//	%f  source file
//	%L  source line
//	%m  message text
//	%n  newline
//	%%  literal percent sign
type Pattern struct {
	segs            []segment
	timestampFormat string
}

type segment struct {
	literal string
	tag     byte // 0 for a literal segment
}

// NewPattern parses the layout string. An unrecognized tag fails with an
// error wrapping ErrUnknownTag.
func NewPattern(layout string, cfg Config) (*Pattern, error) {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	p := &Pattern{timestampFormat: cfg.TimestampFormat}

	var lit []byte
	flush := func() {
		if len(lit) > 0 {
			p.segs = append(p.segs, segment{literal: string(lit)})
			lit = lit[:0]
		}
	}
	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if c != '%' {
			lit = append(lit, c)
			continue
		}
		if i+1 >= len(layout) {
			return nil, fmt.Errorf("%w: trailing %% in %q", ErrUnknownTag, layout)
		}
		i++
		tag := layout[i]
		if tag == '%' {
			lit = append(lit, '%')
			continue
		}
		switch tag {
		case 'd', 's', 'l', 'f', 'L', 'm', 'n':
			flush()
			p.segs = append(p.segs, segment{tag: tag})
		default:
			return nil, fmt.Errorf("%w: %%%c at position %d in %q", ErrUnknownTag, tag, i-1, layout)
		}
	}
	flush()
	return p, nil
}

// Format renders the message through the parsed layout.
func (p *Pattern) Format(m core.Message) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	for _, s := range p.segs {
		switch s.tag {
		case 0:
			buf.WriteString(s.literal)
		case 'd':
			buf.Write(m.Time.AppendFormat(buf.AvailableBuffer(), p.timestampFormat))
		case 's':
			buf.WriteString(strings.ToUpper(m.Priority.String()))
		case 'l':
			buf.WriteString(m.Name)
		case 'f':
			buf.WriteString(m.File)
		case 'L':
			buf.WriteString(strconv.Itoa(m.Line))
		case 'm':
			buf.WriteString(m.Text)
		case 'n':
			buf.WriteByte('\n')
		}
	}

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}
