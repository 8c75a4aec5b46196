package logger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/philipp01105/logtree/channel"
	"github.com/philipp01105/logtree/core"
)

// RootName is the name of the root logger.
const RootName = ""

// DefaultLevel is the level of a freshly created root logger.
const DefaultLevel = core.LevelInformation

// Registry owns every Logger and resolves the name hierarchy. A Logger
// exists only while registered; Destroy and Shutdown invalidate previously
// returned instances in the sense that the registry forgets them — a fresh
// Get creates a new logger with no memory of the old configuration.
//
// One mutex guards the name map. It is held for map lookups, inserts,
// removals and prefix scans only, never while a message is delivered to a
// channel.
type Registry struct {
	mu      sync.Mutex
	loggers map[string]*Logger
}

// NewRegistry creates an empty registry. The root logger springs into
// existence on first access with DefaultLevel and no channel.
func NewRegistry() *Registry {
	return &Registry{loggers: make(map[string]*Logger)}
}

// Get returns the logger with the given name, creating it if necessary. A
// new logger takes a one-time snapshot of the level and channel of its
// nearest existing ancestor, found by trimming trailing dot-components of
// the name; if none of the prefixes is registered, the root logger supplies
// the snapshot.
func (r *Registry) Get(name string) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unsafeGet(name)
}

// UnsafeGet is Get without the registry lock.
//
// WARNING: UnsafeGet is not safe for concurrent use and exists strictly for
// single-threaded program initialization. Calling it while other goroutines
// touch the registry is a caller contract violation that is not detected at
// runtime. Use Get instead.
func (r *Registry) UnsafeGet(name string) *Logger {
	return r.unsafeGet(name)
}

func (r *Registry) unsafeGet(name string) *Logger {
	if l, ok := r.loggers[name]; ok {
		return l
	}
	var l *Logger
	if name == RootName {
		l = newLogger(RootName, nil, DefaultLevel)
	} else {
		parent := r.parent(name)
		l = newLogger(name, parent.Channel(), parent.Level())
	}
	r.loggers[name] = l
	return l
}

// parent resolves the nearest existing ancestor by stripping the last
// dot-component until a registered name is found, falling back to root.
func (r *Registry) parent(name string) *Logger {
	for {
		i := strings.LastIndexByte(name, '.')
		if i < 0 {
			return r.unsafeGet(RootName)
		}
		name = name[:i]
		if l, ok := r.loggers[name]; ok {
			return l
		}
	}
}

// Create registers a logger with the given channel and level, bypassing
// ancestor inheritance and replacing any existing logger of that name.
func (r *Registry) Create(name string, ch core.Channel, level core.Level) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	l := newLogger(name, ch, level)
	r.loggers[name] = l
	return l
}

// Root returns the root logger, the ultimate ancestor of all loggers.
func (r *Registry) Root() *Logger {
	return r.Get(RootName)
}

// Has returns the logger with the given name if it exists. Unlike Get it
// never creates one.
func (r *Registry) Has(name string) (*Logger, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.loggers[name]
	return l, ok
}

// Destroy removes the logger with the given name from the registry. It does
// nothing if no such logger exists.
func (r *Registry) Destroy(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.loggers, name)
}

// Shutdown releases all loggers. The registry is immediately reusable: the
// next access re-creates the root logger with default configuration.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loggers = make(map[string]*Logger)
}

// Names returns the names of all currently registered loggers, in
// unspecified order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	return names
}

// matches reports whether a logger name falls under a subtree prefix: the
// names are equal, the name continues the prefix past a dot, or the prefix
// is the root (which every logger descends from).
func matches(name, prefix string) bool {
	if prefix == RootName {
		return true
	}
	if !strings.HasPrefix(name, prefix) {
		return false
	}
	return len(name) == len(prefix) || name[len(prefix)] == '.'
}

// each applies fn to every registered logger under the subtree prefix. Only
// presently registered loggers are touched; loggers created under the
// prefix afterwards keep their creation-time snapshot.
func (r *Registry) each(prefix string, fn func(*Logger)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, l := range r.loggers {
		if matches(name, prefix) {
			fn(l)
		}
	}
}

// SetLevel sets the given level on the logger with the given name and every
// registered descendant of it.
func (r *Registry) SetLevel(name string, level core.Level) {
	r.each(name, func(l *Logger) { l.SetLevel(level) })
}

// SetChannel attaches the given channel to the logger with the given name
// and every registered descendant of it.
func (r *Registry) SetChannel(name string, ch core.Channel) {
	r.each(name, func(l *Logger) { l.SetChannel(ch) })
}

// SetProperty applies the property write to the logger with the given name
// and every registered descendant of it. The value is validated once, up
// front, so an invalid level or channel name fails before any logger is
// touched.
func (r *Registry) SetProperty(name, prop, value string) error {
	switch prop {
	case "level":
		level, err := core.ParseLevel(value)
		if err != nil {
			return err
		}
		r.SetLevel(name, level)
		return nil
	case "channel":
		ch, ok := channel.Find(value)
		if !ok {
			return fmt.Errorf("%w: %q", channel.ErrUnknownChannel, value)
		}
		r.SetChannel(name, ch)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownProperty, prop)
}

// defaultRegistry backs the package-level entry points.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level
// functions.
func Default() *Registry { return defaultRegistry }

// Get returns the named logger from the default registry, creating it with
// inherited configuration if absent.
func Get(name string) *Logger { return defaultRegistry.Get(name) }

// UnsafeGet is Registry.UnsafeGet on the default registry; see its warning.
func UnsafeGet(name string) *Logger { return defaultRegistry.UnsafeGet(name) }

// Create registers a logger in the default registry with explicit
// configuration.
func Create(name string, ch core.Channel, level core.Level) *Logger {
	return defaultRegistry.Create(name, ch, level)
}

// Root returns the default registry's root logger.
func Root() *Logger { return defaultRegistry.Root() }

// Has returns the named logger from the default registry without creating it.
func Has(name string) (*Logger, bool) { return defaultRegistry.Has(name) }

// Destroy removes the named logger from the default registry.
func Destroy(name string) { defaultRegistry.Destroy(name) }

// Shutdown releases all loggers in the default registry.
func Shutdown() { defaultRegistry.Shutdown() }

// Names lists the loggers registered in the default registry.
func Names() []string { return defaultRegistry.Names() }

// SetLevel sets the level on the named logger and its registered
// descendants in the default registry.
func SetLevel(name string, level core.Level) { defaultRegistry.SetLevel(name, level) }

// SetChannel attaches the channel to the named logger and its registered
// descendants in the default registry.
func SetChannel(name string, ch core.Channel) { defaultRegistry.SetChannel(name, ch) }

// SetProperty applies a property write to the named logger and its
// registered descendants in the default registry.
func SetProperty(name, prop, value string) error {
	return defaultRegistry.SetProperty(name, prop, value)
}
