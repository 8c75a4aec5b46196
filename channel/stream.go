package channel

import (
	"io"
	"sync"

	"github.com/philipp01105/logtree/core"
	"github.com/philipp01105/logtree/format"
)

// Stream renders each message through a Formatter and writes the result to
// an io.Writer. Writes are serialized with a mutex so a Stream can safely be
// shared by any number of loggers. The writer is not owned: Close flushes
// nothing and closes nothing.
type Stream struct {
	mu sync.Mutex
	w  io.Writer
	f  format.Formatter
}

// NewStream creates a stream channel. A nil formatter selects the default
// text formatter.
func NewStream(w io.Writer, f format.Formatter) *Stream {
	if f == nil {
		f = format.NewText(format.Config{})
	}
	return &Stream{w: w, f: f}
}

// Log formats the message and writes it. A write error is returned
// unmodified.
func (s *Stream) Log(m core.Message) error {
	line := s.f.Format(m)
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.w.Write(line)
	return err
}

// Close does nothing; the underlying writer belongs to the caller.
func (s *Stream) Close() error { return nil }
