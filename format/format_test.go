package format

import (
	"strings"
	"testing"
)

func TestFormatPositional(t *testing.T) {
	got := Format("a $0 b $$ $1", "X", "Y")
	if got != "a X b $ Y" {
		t.Errorf("Format() = %q, want %q", got, "a X b $ Y")
	}
}

func TestFormatRepeatedPlaceholder(t *testing.T) {
	got := Format("$0 and $0 again", "once")
	if got != "once and once again" {
		t.Errorf("Format() = %q", got)
	}
}

func TestFormatNonStringArgs(t *testing.T) {
	got := Format("port $0, ok $1", 8080, true)
	if got != "port 8080, ok true" {
		t.Errorf("Format() = %q", got)
	}
}

func TestFormatMissingArgument(t *testing.T) {
	// A placeholder beyond the argument list renders as nothing.
	got := Format("have $0, missing $3", "x")
	if got != "have x, missing " {
		t.Errorf("Format() = %q", got)
	}
}

func TestFormatMalformedPlaceholderPassesThrough(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"price: $x", "price: $x"},
		{"trailing $", "trailing $"},
		{"$", "$"},
		{"$$", "$"},
		{"$ 0", "$ 0"},
	}
	for _, c := range cases {
		if got := Format(c.in, "unused"); got != c.want {
			t.Errorf("Format(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatNoPlaceholders(t *testing.T) {
	if got := Format("plain text"); got != "plain text" {
		t.Errorf("Format() = %q", got)
	}
}

func TestDumpTwoRows(t *testing.T) {
	buf := make([]byte, 20)
	for i := range buf {
		buf[i] = byte(i)
	}

	want := "0000 00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f  ................\n" +
		"0010 10 11 12 13  ...."
	if got := Dump(buf); got != want {
		t.Errorf("Dump() =\n%q\nwant\n%q", got, want)
	}
}

func TestDumpPrintableBytes(t *testing.T) {
	got := Dump([]byte("Go!"))
	want := "0000 47 6f 21  Go!"
	if got != want {
		t.Errorf("Dump() = %q, want %q", got, want)
	}
}

func TestDumpBoundaryValues(t *testing.T) {
	// 31 and 127 are outside the printable range, 32 and 126 inside.
	got := Dump([]byte{31, 32, 126, 127})
	want := "0000 1f 20 7e 7f  . ~."
	if got != want {
		t.Errorf("Dump() = %q, want %q", got, want)
	}
}

func TestDumpExactRow(t *testing.T) {
	buf := make([]byte, 16)
	got := Dump(buf)
	if strings.Count(got, "\n") != 0 {
		t.Errorf("Dump of exactly 16 bytes produced more than one row: %q", got)
	}
}

func TestDumpEmpty(t *testing.T) {
	if got := Dump(nil); got != "" {
		t.Errorf("Dump(nil) = %q, want empty", got)
	}
}

func TestAppendDump(t *testing.T) {
	got := AppendDump("header", []byte{0})
	want := "header\n0000 00  ."
	if got != want {
		t.Errorf("AppendDump() = %q, want %q", got, want)
	}

	// Empty message gets no separating newline.
	got = AppendDump("", []byte{0})
	if got != "0000 00  ." {
		t.Errorf("AppendDump(\"\") = %q", got)
	}

	// Empty buffer leaves the message untouched.
	if got := AppendDump("msg", nil); got != "msg" {
		t.Errorf("AppendDump(msg, nil) = %q", got)
	}
}

func TestDumpLargeOffset(t *testing.T) {
	buf := make([]byte, 16*16+1)
	got := Dump(buf)
	lines := strings.Split(got, "\n")
	last := lines[len(lines)-1]
	if !strings.HasPrefix(last, "0100 00  ") {
		t.Errorf("last row = %q, want offset 0100", last)
	}
}
