// Package keymap loads bindings files and registers their bindings as
// shortcut handlers.
//
// A bindings file names a keymap and lists bindings from shortcuts to
// actions. TOML and YAML are supported, chosen by file extension:
//
//	name = "editor"
//
//	[[bindings]]
//	keys = "ctrl+s"
//	action = "file.save"
//	description = "Save"
//	default = true
//
// Keymap.Validate reports every malformed shortcut at once. Keymap.Apply
// registers one handler per binding through a shortcut.Manager; Bind does
// the same and returns a Bound that can withdraw them again, which is how
// a reload triggered by Watcher replaces a keymap:
//
//	km, err := keymap.LoadFile("keys.toml")
//	bound, err := keymap.Bind(mgr, km, runAction)
//	...
//	bound.Unbind()
package keymap
