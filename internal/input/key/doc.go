// Package key turns keyboard shortcut specifications into canonical keys.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Shortcut: A modifier set plus exactly one key token
//   - Event, BrowserEvent: Key presses satisfying the KeyEvent interface
//
// # Canonical Keys
//
// A canonical key is the lower-case modifier tokens in ctrl, alt, shift,
// meta order followed by the key token, joined by "+":
//
//	Normalize("Shift+Ctrl+A")  // "ctrl+shift+a", true
//	Normalize("ctrl+shift")    // "", false (no key)
//	Normalize("a+b")           // "", false (two keys)
//
// Key-press events decode to the same form, so a handler registered for
// "ctrl+a" matches FromEvent(NewRuneEvent('a', ModCtrl)). A lone modifier
// press never yields a key.
//
// # Terminal Events
//
// FromTcell adapts *tcell.EventKey values, folding terminal control codes
// back into ctrl+letter combinations.
package key
