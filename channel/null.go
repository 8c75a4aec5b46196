package channel

import "github.com/philipp01105/logtree/core"

// Null accepts and discards every message. Attaching it to a logger is the
// channel-side way of silencing a subtree without touching levels.
type Null struct{}

// NewNull creates a null channel.
func NewNull() Null { return Null{} }

// Log discards the message.
func (Null) Log(core.Message) error { return nil }

// Close does nothing.
func (Null) Close() error { return nil }
