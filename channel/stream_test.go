package channel

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/philipp01105/logtree/core"
)

var errTest = errors.New("test error")

// brokenWriter fails every write.
type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errTest }

func TestStreamWritesFormattedLine(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf, nil)

	err := s.Log(core.Message{
		Name:     "net.http",
		Text:     "listening",
		Priority: core.LevelNotice,
		Time:     time.Now(),
	})
	if err != nil {
		t.Fatalf("Log returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "[NOTICE]") || !strings.Contains(out, "net.http") || !strings.Contains(out, "listening") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestStreamPropagatesWriteError(t *testing.T) {
	s := NewStream(brokenWriter{}, nil)
	if err := s.Log(core.Message{Text: "x"}); !errors.Is(err, errTest) {
		t.Errorf("Log() error = %v, want write error unmodified", err)
	}
}

func TestStreamCloseLeavesWriterOpen(t *testing.T) {
	var buf bytes.Buffer
	s := NewStream(&buf, nil)
	if err := s.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if err := s.Log(core.Message{Text: "still works"}); err != nil {
		t.Errorf("Log after Close returned error: %v", err)
	}
}

func TestMemoryEvictsOldest(t *testing.T) {
	m := NewMemory(3)
	for i := 0; i < 5; i++ {
		m.Log(core.Message{Line: i})
	}
	msgs := m.Messages()
	if len(msgs) != 3 {
		t.Fatalf("Len = %d, want 3", len(msgs))
	}
	if msgs[0].Line != 2 || msgs[2].Line != 4 {
		t.Errorf("unexpected retained window: %v", msgs)
	}
}

func TestMemoryClose(t *testing.T) {
	m := NewMemory(0)
	m.Log(core.Message{Text: "x"})
	if err := m.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Len = %d after Close, want 0", m.Len())
	}
}
