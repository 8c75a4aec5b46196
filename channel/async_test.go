package channel

import (
	"testing"
	"time"

	"github.com/philipp01105/logtree/core"
)

func TestAsyncDeliversAndDrainsOnClose(t *testing.T) {
	mem := NewMemory(100)
	a := NewAsync(AsyncConfig{Channel: mem, BufferSize: 16})

	for i := 0; i < 50; i++ {
		if err := a.Log(core.Message{Text: "m", Priority: core.LevelDebug}); err != nil {
			t.Fatalf("Log returned error: %v", err)
		}
	}
	if err := a.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if got := mem.Len() + int(a.Dropped()); got != 50 {
		t.Errorf("delivered+dropped = %d, want 50", got)
	}
	if a.Dropped() != 0 {
		// buffer 16 with a fast memory sink should not drop under Drop policy,
		// but the invariant above is what matters; flag drops for visibility
		t.Logf("dropped %d messages", a.Dropped())
	}
}

// gated blocks inside Log until released, to make queue overflow deterministic.
type gated struct {
	entered chan struct{}
	release chan struct{}
}

func (g *gated) Log(core.Message) error {
	g.entered <- struct{}{}
	<-g.release
	return nil
}

func (g *gated) Close() error { return nil }

func TestAsyncDropPolicy(t *testing.T) {
	g := &gated{entered: make(chan struct{}, 10), release: make(chan struct{})}
	a := NewAsync(AsyncConfig{Channel: g, BufferSize: 1, Overflow: Drop})

	// First message is taken by the worker, which then blocks in the sink.
	a.Log(core.Message{Text: "first"})
	<-g.entered

	// Second fills the queue, third must be dropped.
	a.Log(core.Message{Text: "second"})
	a.Log(core.Message{Text: "third"})

	if a.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", a.Dropped())
	}

	close(g.release)
	a.Close()
}

func TestAsyncBlockPolicyTimesOut(t *testing.T) {
	g := &gated{entered: make(chan struct{}, 10), release: make(chan struct{})}
	a := NewAsync(AsyncConfig{
		Channel:      g,
		BufferSize:   1,
		Overflow:     Block,
		BlockTimeout: 10 * time.Millisecond,
	})

	a.Log(core.Message{Text: "first"})
	<-g.entered
	a.Log(core.Message{Text: "second"}) // fills the queue

	start := time.Now()
	a.Log(core.Message{Text: "third"}) // blocks, then drops
	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("Block policy returned after %v, before the timeout", elapsed)
	}
	if a.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", a.Dropped())
	}

	close(g.release)
	a.Close()
}

func TestAsyncLogAfterClose(t *testing.T) {
	mem := NewMemory(10)
	a := NewAsync(AsyncConfig{Channel: mem})
	if err := a.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if err := a.Log(core.Message{Text: "late"}); err != nil {
		t.Errorf("Log after Close returned error: %v", err)
	}
	if err := a.Close(); err != nil {
		t.Errorf("second Close returned error: %v", err)
	}
	if mem.Len() != 0 {
		t.Errorf("message delivered after Close")
	}
}

func TestAsyncCountsSinkFailures(t *testing.T) {
	a := NewAsync(AsyncConfig{Channel: failing{err: errTest}})
	a.Log(core.Message{Text: "doomed"})
	a.Close()
	if a.Failed() != 1 {
		t.Errorf("Failed() = %d, want 1", a.Failed())
	}
}
