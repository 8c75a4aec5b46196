package core

// Channel is the sink side of the framework: it consumes one finished
// message at a time. Implementations live in the channel package or are
// supplied by the application.
//
// Log returns any I/O failure unmodified; the calling Logger performs no
// retry or recovery around it. A Channel needing serialized writes must
// synchronize internally, since concurrent Log calls from different
// goroutines may arrive in either order.
type Channel interface {
	Log(m Message) error

	// Close releases any resources held by the channel. Loggers never call
	// Close; the channel is a shared handle and shutting it down is the
	// application's decision.
	Close() error
}
