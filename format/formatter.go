package format

import (
	"bytes"
	"sync"

	"github.com/philipp01105/logtree/core"
)

// Formatter renders a finished message into bytes ready for an output
// stream. Implementations must be safe for concurrent use.
type Formatter interface {
	Format(m core.Message) []byte
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for RFC3339)
	TimestampFormat string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
