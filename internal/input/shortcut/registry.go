package shortcut

import (
	"sync"
	"sync/atomic"

	"github.com/dshills/shortcuts/internal/logging"
)

// globalContext is the type of GlobalContext.
type globalContext struct{}

func (globalContext) String() string { return "global" }

// GlobalContext is the context static managers are bound to.
var GlobalContext any = globalContext{}

// Registry owns a Store and the diagnostics settings shared by every
// Manager created from it.
type Registry struct {
	store  *Store
	static *Manager
	debug  atomic.Bool

	mu    sync.RWMutex
	log   *logging.Logger
	level logging.Level
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.log = l
		}
	}
}

// WithDebug starts the registry with debug diagnostics on.
func WithDebug(on bool) Option {
	return func(r *Registry) {
		r.debug.Store(on)
	}
}

// NewRegistry creates an isolated registry with its own store.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		store: NewStore(),
		log:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.attach(r.log)
	r.static = &Manager{registry: r, context: GlobalContext, static: true}
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry. It logs to stderr until
// SetLogger replaces the logger.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(WithLogger(logging.New(logging.DefaultConfig())))
	})
	return defaultRegistry
}

// Shortcuts is the static manager of the process-wide registry.
var Shortcuts = Default().Static()

// Static returns the registry's shared manager bound to GlobalContext.
// Its context cannot be changed.
func (r *Registry) Static() *Manager {
	return r.static
}

// Create returns a new manager bound to ctx.
func (r *Registry) Create(ctx any) (*Manager, error) {
	if !isComparable(ctx) {
		return nil, ErrContextNotComparable
	}
	return &Manager{registry: r, context: ctx}, nil
}

// Store exposes the underlying store.
func (r *Registry) Store() *Store {
	return r.store
}

// SetLogger replaces the diagnostics logger. A nil logger discards them.
// The debug setting carries over to the new logger.
func (r *Registry) SetLogger(l *logging.Logger) {
	if l == nil {
		l = logging.Nop()
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.debug.Load() {
		r.log.SetLevel(r.level)
	}
	r.attach(l)
}

// attach installs l and applies the debug level. Callers hold mu or own r.
func (r *Registry) attach(l *logging.Logger) {
	r.log = l.WithComponent("shortcut")
	r.level = r.log.Level()
	if r.debug.Load() {
		r.log.SetLevel(logging.LevelDebug)
	}
}

// SetDebug turns diagnostic messages on or off. Matching and dispatch are
// unaffected. The change itself is logged at warn level.
func (r *Registry) SetDebug(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.debug.Store(on)
	if on {
		r.log.SetLevel(logging.LevelDebug)
	} else {
		r.log.SetLevel(r.level)
	}
	state := "off"
	if on {
		state = "on"
	}
	r.log.Warn("debug mode is set to %s", state)
}

// Debug reports whether diagnostics are on.
func (r *Registry) Debug() bool {
	return r.debug.Load()
}

func (r *Registry) debugf(msg string, args ...any) {
	if !r.debug.Load() {
		return
	}
	r.mu.RLock()
	log := r.log
	r.mu.RUnlock()
	log.Debug(msg, args...)
}
