package channel

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/multierr"

	"github.com/philipp01105/logtree/core"
)

var (
	// ErrUnknownChannel is returned when a name resolves to no registered channel.
	ErrUnknownChannel = errors.New("unknown channel")
	// ErrDuplicateChannel is returned by Register for an already-taken name.
	ErrDuplicateChannel = errors.New("channel already registered")
)

var (
	regMu    sync.RWMutex
	registry = make(map[string]core.Channel)
)

// Register adds a named channel so that loggers and configuration can refer
// to it by string. Registering does not transfer ownership; the registry is
// just one more holder of the shared channel.
func Register(name string, ch core.Channel) error {
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := registry[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateChannel, name)
	}
	registry[name] = ch
	return nil
}

// Find returns the channel registered under name, or false if there is none.
func Find(name string) (core.Channel, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	ch, ok := registry[name]
	return ch, ok
}

// Unregister removes the named channel. It does not close the channel and
// does nothing if the name is unknown.
func Unregister(name string) {
	regMu.Lock()
	defer regMu.Unlock()
	delete(registry, name)
}

// CloseAll closes every registered channel, empties the registry and returns
// the combined close errors. Intended for application shutdown.
func CloseAll() error {
	regMu.Lock()
	defer regMu.Unlock()
	var err error
	for _, ch := range registry {
		err = multierr.Append(err, ch.Close())
	}
	registry = make(map[string]core.Channel)
	return err
}
