package format

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/logtree/core"
)

var patternMsg = core.Message{
	Name:     "app.db",
	Text:     "connection lost",
	Priority: core.LevelError,
	File:     "db.go",
	Line:     42,
	Time:     time.Date(2024, 5, 17, 10, 30, 0, 0, time.UTC),
}

func TestPatternFormat(t *testing.T) {
	p, err := NewPattern("%d %s %l (%f:%L) - %m%n", Config{})
	if err != nil {
		t.Fatalf("NewPattern returned error: %v", err)
	}

	got := string(p.Format(patternMsg))
	want := "2024-05-17T10:30:00Z ERROR app.db (db.go:42) - connection lost\n"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestPatternEscapedPercent(t *testing.T) {
	p, err := NewPattern("100%% %m", Config{})
	if err != nil {
		t.Fatalf("NewPattern returned error: %v", err)
	}
	got := string(p.Format(patternMsg))
	if got != "100% connection lost" {
		t.Errorf("Format() = %q", got)
	}
}

func TestPatternUnknownTag(t *testing.T) {
	if _, err := NewPattern("%q", Config{}); !errors.Is(err, ErrUnknownTag) {
		t.Errorf("NewPattern(%%q) error = %v, want ErrUnknownTag", err)
	}
	if _, err := NewPattern("dangling %", Config{}); !errors.Is(err, ErrUnknownTag) {
		t.Errorf("NewPattern(dangling %%) error = %v, want ErrUnknownTag", err)
	}
}

func TestPatternCustomTimestamp(t *testing.T) {
	p, err := NewPattern("%d", Config{TimestampFormat: "2006-01-02"})
	if err != nil {
		t.Fatalf("NewPattern returned error: %v", err)
	}
	if got := string(p.Format(patternMsg)); got != "2024-05-17" {
		t.Errorf("Format() = %q", got)
	}
}

func TestTextFormat(t *testing.T) {
	f := NewText(Config{})
	got := string(f.Format(patternMsg))

	for _, part := range []string{"2024-05-17T10:30:00Z", "[ERROR]", "app.db:", "[db.go:42]", "connection lost"} {
		if !strings.Contains(got, part) {
			t.Errorf("Format() = %q, missing %q", got, part)
		}
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("Format() output does not end with newline: %q", got)
	}
}

func TestTextFormatOmitsEmptyFields(t *testing.T) {
	f := NewText(Config{})
	m := core.Message{Text: "bare", Priority: core.LevelInformation, Time: patternMsg.Time}
	got := string(f.Format(m))

	if strings.Contains(got, "[]") || strings.Contains(got, ": :") {
		t.Errorf("Format() of message without name/location rendered empty fields: %q", got)
	}
	if !strings.Contains(got, "bare") {
		t.Errorf("Format() = %q, missing text", got)
	}
}
