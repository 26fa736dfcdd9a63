package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/shortcuts/internal/input/key"
	"github.com/dshills/shortcuts/internal/input/keymap"
)

// Run opens the screen and dispatches key presses until the quit action
// runs or Shutdown is called. Bindings file changes are applied between
// key presses when watching is enabled.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return &InitError{Component: "screen", Err: err}
		}
		app.screen = s
	}
	if err := app.screen.Init(); err != nil {
		return &InitError{Component: "screen", Err: err}
	}
	defer app.screen.Fini()
	app.screenReady.Store(true)
	defer app.screenReady.Store(false)

	var (
		changes <-chan struct{}
		werrs   <-chan error
	)
	if app.cfg.Watch {
		w, err := keymap.NewWatcher(app.cfg.Bindings, app.cfg.WatchDebounce)
		if err != nil {
			return &InitError{Component: "watcher", Err: err}
		}
		defer w.Close()
		changes, werrs = w.Changes(), w.Errors()
		app.log.Info("watching %s", w.Path())
	}

	app.readyOnce.Do(func() { close(app.ready) })
	app.draw()
	return app.eventLoop(app.startInputPolling(), changes, werrs)
}

// eventLoop is the main application loop.
func (app *Application) eventLoop(events <-chan tcell.Event, changes <-chan struct{}, werrs <-chan error) error {
	for {
		select {
		case <-app.done:
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := app.handleEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}

		case <-changes:
			if err := app.Reload(); err != nil {
				app.log.Error("reload failed: %v", err)
			}
			app.draw()

		case err := <-werrs:
			app.log.Warn("watcher: %v", err)
		}
	}
}

// handleEvent processes a screen event.
// Returns ErrQuit if the application should exit.
func (app *Application) handleEvent(ev tcell.Event) error {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return app.handleKey(key.FromTcell(e))
	case *tcell.EventResize:
		app.screen.Sync()
		app.draw()
	}
	return nil
}

// handleKey dispatches one key press through the manager.
func (app *Application) handleKey(ev key.Event) error {
	sc, ok := key.FromEvent(ev)
	if !ok {
		return nil
	}

	app.quit = false
	if !app.manager.Event(ev) {
		app.record(Entry{Time: ev.Timestamp, Shortcut: sc})
	}
	if app.quit {
		return ErrQuit
	}
	app.draw()
	return nil
}

// startInputPolling starts a goroutine that polls the screen for events.
// PollEvent returns nil once the screen is finalized, which ends the
// goroutine.
func (app *Application) startInputPolling() <-chan tcell.Event {
	events := make(chan tcell.Event, 100)

	go func() {
		defer close(events)
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-app.done:
				return
			}
		}
	}()

	return events
}

// draw renders the key log, with the binding list above it when help is on.
func (app *Application) draw() {
	if !app.screenReady.Load() {
		return
	}
	s := app.screen
	s.Clear()
	width, height := s.Size()

	title := tcell.StyleDefault.Bold(true)
	dim := tcell.StyleDefault.Dim(true)

	y := 0
	drawText(s, 0, y, width, title, "shortcuts: press keys (f1 lists bindings)")
	y += 2

	if app.showHelp {
		for _, cat := range keymap.GroupByCategory(app.Bindings()) {
			drawText(s, 0, y, width, title, cat.Name)
			y++
			for _, b := range cat.Bindings {
				canonical, _ := key.Normalize(b.Keys)
				label := b.Description
				if label == "" {
					label = b.Action
				}
				drawText(s, 2, y, width, tcell.StyleDefault, fmt.Sprintf("%-20s %s", canonical, label))
				y++
			}
		}
		y++
	}

	history := app.History()
	if room := height - y; room < len(history) {
		if room < 0 {
			room = 0
		}
		history = history[len(history)-room:]
	}
	for _, e := range history {
		style := tcell.StyleDefault
		if !e.Handled {
			style = dim
		}
		drawText(s, 0, y, width, style, e.Time.Format(time.TimeOnly)+"  "+e.String())
		y++
	}

	s.Show()
}

func drawText(s tcell.Screen, x, y, width int, style tcell.Style, text string) {
	for _, r := range text {
		if x >= width {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
