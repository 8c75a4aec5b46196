package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Format scans pattern left to right and substitutes positional placeholders:
// "$$" emits a literal "$" and "$<digit>" is replaced by the string form of
// the 0-indexed argument. A placeholder referencing a missing argument emits
// nothing. A "$" followed by anything other than "$" or a digit, including a
// lone trailing "$", passes through literally.
func Format(pattern string, args ...any) string {
	var b strings.Builder
	b.Grow(len(pattern) + 16*len(args))
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '$' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(pattern) {
			b.WriteByte('$')
			break
		}
		next := pattern[i+1]
		switch {
		case next == '$':
			b.WriteByte('$')
			i++
		case next >= '0' && next <= '9':
			if n := int(next - '0'); n < len(args) {
				b.WriteString(stringify(args[n]))
			}
			i++
		default:
			// malformed placeholder, pass the dollar through and let the
			// next iteration handle the following character normally
			b.WriteByte('$')
		}
	}
	return b.String()
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(v)
}

const hexDigits = "0123456789abcdef"

// Dump renders buf in canonical hex+ASCII form: rows of sixteen bytes, each
// row carrying a 4-hex-digit offset, a space, the two-hex-digit byte values
// space-separated, two spaces, then one ASCII character per byte. Bytes
// outside [32,127) print as '.'. A short final row omits the missing hex
// fields without padding. Rows are newline-joined.
func Dump(buf []byte) string {
	var b strings.Builder
	appendDump(&b, buf)
	return b.String()
}

// AppendDump returns msg with the Dump rendering of buf appended, separated
// by a newline when both are non-empty. The original message text is always
// preserved.
func AppendDump(msg string, buf []byte) string {
	if len(buf) == 0 {
		return msg
	}
	var b strings.Builder
	b.Grow(len(msg) + 1 + dumpLen(len(buf)))
	b.WriteString(msg)
	if len(msg) > 0 {
		b.WriteByte('\n')
	}
	appendDump(&b, buf)
	return b.String()
}

// dumpLen is the exact rendered size of a dump over n bytes.
func dumpLen(n int) int {
	if n == 0 {
		return 0
	}
	rows := (n + 15) / 16
	// per byte: "xx " hex plus one ASCII char; per row: offset, separators,
	// newline, minus the trailing space the last hex byte does not get
	return rows*(4+1+2+1) + n*4 - rows - 1
}

func appendDump(b *strings.Builder, buf []byte) {
	for addr := 0; addr < len(buf); addr += 16 {
		if addr > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte(hexDigits[(addr>>12)&0xf])
		b.WriteByte(hexDigits[(addr>>8)&0xf])
		b.WriteByte(hexDigits[(addr>>4)&0xf])
		b.WriteByte(hexDigits[addr&0xf])
		b.WriteByte(' ')
		row := buf[addr:min(addr+16, len(buf))]
		for i, c := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0xf])
		}
		b.WriteString("  ")
		for _, c := range row {
			if c >= 32 && c < 127 {
				b.WriteByte(c)
			} else {
				b.WriteByte('.')
			}
		}
	}
}
