package channel

import (
	"sync"

	"github.com/philipp01105/logtree/core"
)

// DefaultMemoryCapacity bounds a Memory channel when no capacity is given.
const DefaultMemoryCapacity = 100

// Memory keeps the most recent messages in a bounded in-process buffer.
// When the buffer is full the oldest message is discarded. It is primarily
// an inspection and test sink.
type Memory struct {
	mu  sync.Mutex
	cap int
	buf []core.Message
}

// NewMemory creates a memory channel holding at most capacity messages.
// A capacity <= 0 selects DefaultMemoryCapacity.
func NewMemory(capacity int) *Memory {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &Memory{cap: capacity}
}

// Log stores the message, evicting the oldest one when full.
func (m *Memory) Log(msg core.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.buf) == m.cap {
		copy(m.buf, m.buf[1:])
		m.buf = m.buf[:len(m.buf)-1]
	}
	m.buf = append(m.buf, msg)
	return nil
}

// Messages returns a copy of the buffered messages, oldest first.
func (m *Memory) Messages() []core.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]core.Message, len(m.buf))
	copy(out, m.buf)
	return out
}

// Len reports the number of buffered messages.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.buf)
}

// Clear discards all buffered messages.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buf = m.buf[:0]
}

// Close discards all buffered messages.
func (m *Memory) Close() error {
	m.Clear()
	return nil
}
