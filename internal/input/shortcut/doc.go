// Package shortcut registers handlers for keyboard shortcuts and dispatches
// key presses to them.
//
// # Key Concepts
//
// Registry: Owns the Store of registrations and the debug switch. Default
// returns the process-wide registry; NewRegistry creates an isolated one.
//
// Manager: A handle bound to a context. Every registration made through it
// belongs to that context, which scopes Remove and Destroy. The static
// manager (Registry.Static, Shortcuts) is bound to GlobalContext and
// refuses In.
//
// Store: Canonical shortcut to ordered registrations.
//
// # Dispatch Order
//
// For one shortcut, non-default registrations are tried before default
// ones regardless of registration time; within each tier the newest
// registration goes first. The first handler returning true wins:
//
//	editor, _ := shortcut.Shortcuts.Create(editorPane)
//	editor.OnFunc("ctrl+s", saveFile, true) // default
//	editor.OnFunc("ctrl+s", saveAll)        // tried first
//
//	handled := editor.Event(key.NewRuneEvent('s', key.ModCtrl))
package shortcut
