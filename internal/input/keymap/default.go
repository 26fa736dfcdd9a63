package keymap

// Built-in action names.
const (
	ActionQuit  = "app.quit"
	ActionClear = "screen.clear"
	ActionHelp  = "help.show"
)

// DefaultKeymap returns the built-in bindings. All are defaults, so any
// bindings file can override them.
func DefaultKeymap() *Keymap {
	km := NewKeymap("default").WithSource("default")
	km.AddBinding(NewBinding("ctrl+q", ActionQuit).
		WithDescription("Quit").
		WithCategory("Application").
		AsDefault())
	km.AddBinding(NewBinding("ctrl+l", ActionClear).
		WithDescription("Clear the event log").
		WithCategory("View").
		AsDefault())
	km.AddBinding(NewBinding("f1", ActionHelp).
		WithDescription("Show bindings").
		WithCategory("Help").
		AsDefault())
	return km
}
