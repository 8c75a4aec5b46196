package channel

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/philipp01105/logtree/core"
)

// OverflowPolicy defines what Async does with a message when its queue is full.
type OverflowPolicy int

const (
	// Drop discards the message and increments the drop counter.
	Drop OverflowPolicy = iota
	// Block waits up to BlockTimeout for queue space, then drops.
	Block
)

// AsyncConfig holds configuration for an Async channel.
type AsyncConfig struct {
	// Channel is the destination; required.
	Channel core.Channel
	// BufferSize is the queue capacity (default 1000).
	BufferSize int
	// Overflow selects the full-queue behavior (default Drop).
	Overflow OverflowPolicy
	// BlockTimeout bounds the wait under the Block policy (default 100ms).
	BlockTimeout time.Duration
	// DrainTimeout bounds how long Close waits for the queue to empty
	// (default 5s).
	DrainTimeout time.Duration
}

// Async decouples logging callers from a slow destination channel. Messages
// are queued and delivered by a single background worker, so the destination
// also gets serialized Log calls for free. Delivery errors cannot be
// reported back to the logging call; they increment a counter instead.
type Async struct {
	inner        core.Channel
	queue        chan core.Message
	wg           conc.WaitGroup
	mu           sync.RWMutex
	closed       bool
	overflow     OverflowPolicy
	blockTimeout time.Duration
	drainTimeout time.Duration
	dropped      atomic.Uint64
	failed       atomic.Uint64
}

// NewAsync creates an async channel wrapping cfg.Channel and starts its
// worker goroutine.
func NewAsync(cfg AsyncConfig) *Async {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}

	a := &Async{
		inner:        cfg.Channel,
		queue:        make(chan core.Message, cfg.BufferSize),
		overflow:     cfg.Overflow,
		blockTimeout: cfg.BlockTimeout,
		drainTimeout: cfg.DrainTimeout,
	}
	a.wg.Go(a.process)
	return a
}

func (a *Async) process() {
	for m := range a.queue {
		if err := a.inner.Log(m); err != nil {
			a.failed.Add(1)
		}
	}
}

// Log enqueues the message. It never returns a delivery error; a message
// that cannot be queued under the configured policy is counted as dropped.
// Logging to a closed Async is a no-op.
func (a *Async) Log(m core.Message) error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return nil
	}

	select {
	case a.queue <- m:
		return nil
	default:
	}

	if a.overflow == Block {
		select {
		case a.queue <- m:
			return nil
		case <-time.After(a.blockTimeout):
		}
	}
	a.dropped.Add(1)
	return nil
}

// Dropped reports how many messages were discarded due to a full queue.
func (a *Async) Dropped() uint64 { return a.dropped.Load() }

// Failed reports how many messages the destination channel rejected.
func (a *Async) Failed() uint64 { return a.failed.Load() }

// Close stops accepting messages, waits up to DrainTimeout for the queue to
// drain and closes the destination channel. Close is idempotent.
func (a *Async) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	close(a.queue)
	a.mu.Unlock()

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(a.drainTimeout):
	}
	return a.inner.Close()
}
