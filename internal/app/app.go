// Package app wires the shortcut registry, bindings files and a terminal
// screen into the interactive runtime behind "shortcuts run".
package app

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/shortcuts/internal/config"
	"github.com/dshills/shortcuts/internal/input/key"
	"github.com/dshills/shortcuts/internal/input/keymap"
	"github.com/dshills/shortcuts/internal/input/shortcut"
	"github.com/dshills/shortcuts/internal/logging"
)

// maxHistory bounds the number of dispatch results kept for display.
const maxHistory = 200

// Entry records the outcome of one key press.
type Entry struct {
	Time     time.Time
	Shortcut string
	Action   string
	Handled  bool
}

// Application is the central coordinator for the runtime.
// Key presses are dispatched on the goroutine that calls Run.
type Application struct {
	mu sync.RWMutex

	cfg     config.Config
	log     *logging.Logger
	logFile io.Closer

	registry *shortcut.Registry
	manager  *shortcut.Manager
	defaults *keymap.Bound
	user     *keymap.Bound

	screen      tcell.Screen
	screenReady atomic.Bool
	showHelp    bool
	history     []Entry

	// quit is set by the quit action during a dispatch.
	quit bool

	running   atomic.Bool
	ready     chan struct{}
	readyOnce sync.Once
	done      chan struct{}
	closeOnce sync.Once
}

// Option configures an Application.
type Option func(*Application)

// WithScreen sets the screen to draw on. By default Run opens the terminal.
func WithScreen(s tcell.Screen) Option {
	return func(app *Application) {
		app.screen = s
	}
}

// WithLogger sets the logger instead of building one from the config.
func WithLogger(l *logging.Logger) Option {
	return func(app *Application) {
		app.log = l
	}
}

// WithRegistry dispatches through r instead of a private registry.
func WithRegistry(r *shortcut.Registry) Option {
	return func(app *Application) {
		app.registry = r
	}
}

// New creates an Application, binds the default keymap and, when
// configured, the bindings file.
func New(cfg config.Config, opts ...Option) (*Application, error) {
	app := &Application{
		cfg:   cfg,
		ready: make(chan struct{}),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(app)
	}

	if err := app.bootstrap(); err != nil {
		_ = app.closeLog()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Logger
	if app.log == nil {
		out := io.Writer(os.Stderr)
		if app.cfg.LogFile != "" {
			f, err := os.OpenFile(app.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return &InitError{Component: "logger", Err: err}
			}
			app.logFile = f
			out = f
		}
		lc := logging.DefaultConfig()
		lc.Level = logging.ParseLevel(app.cfg.LogLevel)
		lc.Output = out
		app.log = logging.New(lc)
	}
	app.log = app.log.WithComponent("app")

	// 2. Registry and the manager owning this runtime's registrations
	if app.registry == nil {
		app.registry = shortcut.NewRegistry(
			shortcut.WithLogger(app.log),
			shortcut.WithDebug(app.cfg.Debug),
		)
	}
	m, err := app.registry.Create(app)
	if err != nil {
		return &InitError{Component: "shortcuts", Err: err}
	}
	app.manager = m

	// 3. Built-in bindings
	app.defaults, err = keymap.Bind(m, keymap.DefaultKeymap(), app.runAction)
	if err != nil {
		return &InitError{Component: "default keymap", Err: err}
	}

	// 4. User bindings
	if app.cfg.Bindings != "" {
		if err := app.Reload(); err != nil {
			return &InitError{Component: "keymap", Err: err}
		}
	}
	return nil
}

// Reload replaces the bindings from the configured file. A file that fails
// to load or validate leaves the current bindings in place.
func (app *Application) Reload() error {
	path := app.cfg.Bindings
	if path == "" {
		return ErrNoBindingsFile
	}

	km, err := keymap.LoadFile(path)
	if err != nil {
		return NewComponentError("keymap", "load", err)
	}
	if err := km.Validate(); err != nil {
		return NewComponentError("keymap", "validate "+path, err)
	}

	app.mu.Lock()
	defer app.mu.Unlock()

	if app.user != nil {
		app.user.Unbind()
	}
	bound, err := keymap.Bind(app.manager, km, app.runAction)
	app.user = bound
	if err != nil {
		return NewComponentError("keymap", "bind", err)
	}
	for _, c := range km.Conflicts() {
		app.log.Warn("%s is bound to %v; %s wins", c.Shortcut, c.Actions, c.Actions[len(c.Actions)-1])
	}
	app.log.Info("loaded %d binding(s) from %s", len(bound.Registrations()), path)
	return nil
}

// Bindings returns the active bindings, defaults first.
func (app *Application) Bindings() []keymap.Binding {
	app.mu.RLock()
	defer app.mu.RUnlock()

	out := append([]keymap.Binding{}, app.defaults.Keymap.Bindings...)
	if app.user != nil {
		out = append(out, app.user.Keymap.Bindings...)
	}
	return out
}

// History returns the recorded key presses, oldest first.
func (app *Application) History() []Entry {
	app.mu.RLock()
	defer app.mu.RUnlock()

	out := make([]Entry, len(app.history))
	copy(out, app.history)
	return out
}

// Manager returns the manager that owns the runtime's registrations.
func (app *Application) Manager() *shortcut.Manager {
	return app.manager
}

// Logger returns the application logger.
func (app *Application) Logger() *logging.Logger {
	return app.log
}

// Ready is closed once Run has initialized the screen.
func (app *Application) Ready() <-chan struct{} {
	return app.ready
}

// Done is closed by Shutdown.
func (app *Application) Done() <-chan struct{} {
	return app.done
}

// IsRunning reports whether Run is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Shutdown stops Run. It is safe to call more than once.
func (app *Application) Shutdown() {
	app.closeOnce.Do(func() {
		close(app.done)
	})
}

// Close releases resources held after Run returns.
func (app *Application) Close() error {
	app.Shutdown()
	app.manager.Destroy()
	return app.closeLog()
}

func (app *Application) closeLog() error {
	if app.logFile == nil {
		return nil
	}
	err := app.logFile.Close()
	app.logFile = nil
	return err
}

// runAction executes a binding. It runs on the dispatch goroutine.
func (app *Application) runAction(b keymap.Binding, sc string, _ key.Modifier) bool {
	switch b.Action {
	case keymap.ActionQuit:
		app.quit = true
	case keymap.ActionClear:
		app.mu.Lock()
		app.history = nil
		app.mu.Unlock()
		return true
	case keymap.ActionHelp:
		app.showHelp = !app.showHelp
	}
	app.record(Entry{Shortcut: sc, Action: b.Action, Handled: true})
	return true
}

func (app *Application) record(e Entry) {
	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	app.mu.Lock()
	defer app.mu.Unlock()

	app.history = append(app.history, e)
	if over := len(app.history) - maxHistory; over > 0 {
		app.history = append(app.history[:0:0], app.history[over:]...)
	}
}

func (e Entry) String() string {
	if !e.Handled {
		return fmt.Sprintf("%s  (unhandled)", e.Shortcut)
	}
	return fmt.Sprintf("%s  -> %s", e.Shortcut, e.Action)
}
