package channel

import (
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/logtree/core"
)

// Splitter forwards every message to all of its child channels. Delivery is
// sequential and every child sees every message even when an earlier child
// fails; the per-child errors are combined with multierr.
type Splitter struct {
	mu       sync.RWMutex
	children []core.Channel
}

// NewSplitter creates a splitter over the given channels.
func NewSplitter(channels ...core.Channel) *Splitter {
	s := &Splitter{children: make([]core.Channel, len(channels))}
	copy(s.children, channels)
	return s
}

// Add attaches another child channel.
func (s *Splitter) Add(ch core.Channel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.children = append(s.children, ch)
}

// Count reports the number of attached channels.
func (s *Splitter) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.children)
}

// Log delivers the message to every child and returns the combined errors.
func (s *Splitter) Log(m core.Message) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var err error
	for _, ch := range s.children {
		err = multierr.Append(err, ch.Log(m))
	}
	return err
}

// Close closes every child and returns the combined errors.
func (s *Splitter) Close() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var err error
	for _, ch := range s.children {
		err = multierr.Append(err, ch.Close())
	}
	return err
}
