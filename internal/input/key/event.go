package key

import (
	"fmt"
	"time"
	"unicode"
)

// KeyEvent is the capability a key-press event must offer to be dispatched:
// four modifier flags and a key identifier (a character or a key name such
// as "Enter" or "ArrowUp").
type KeyEvent interface {
	CtrlKey() bool
	AltKey() bool
	ShiftKey() bool
	MetaKey() bool
	KeyName() string
}

// ModifiersOf collects the modifier flags of ev into a Modifier.
func ModifiersOf(ev KeyEvent) Modifier {
	var m Modifier
	if ev.CtrlKey() {
		m = m.With(ModCtrl)
	}
	if ev.AltKey() {
		m = m.With(ModAlt)
	}
	if ev.ShiftKey() {
		m = m.With(ModShift)
	}
	if ev.MetaKey() {
		m = m.With(ModMeta)
	}
	return m
}

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// CtrlKey reports whether Control was held.
func (e Event) CtrlKey() bool { return e.Modifiers.HasCtrl() }

// AltKey reports whether Alt was held.
func (e Event) AltKey() bool { return e.Modifiers.HasAlt() }

// ShiftKey reports whether Shift was held.
func (e Event) ShiftKey() bool { return e.Modifiers.HasShift() }

// MetaKey reports whether Meta was held.
func (e Event) MetaKey() bool { return e.Modifiers.HasMeta() }

// KeyName returns the character for rune events and the key name otherwise.
func (e Event) KeyName() string {
	if e.Key == KeyRune {
		switch e.Rune {
		case 0:
			return ""
		case ' ':
			return KeySpace.Name()
		}
		return string(e.Rune)
	}
	return e.Key.Name()
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// String returns the canonical shortcut key of the event, or "" when the
// event does not denote a dispatchable shortcut.
func (e Event) String() string {
	s, _ := FromEvent(e)
	return s
}

// Equals returns true if two events represent the same key press.
// Timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}

// BrowserEvent mirrors the fields of a DOM KeyboardEvent.
type BrowserEvent struct {
	// Key is the produced value, e.g. "a", "A", "Enter", "ArrowUp", " ".
	Key string

	// Code is the physical key, e.g. "KeyA", "Digit1", "Space".
	Code string

	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool
}

// CtrlKey reports whether Control was held.
func (e BrowserEvent) CtrlKey() bool { return e.Ctrl }

// AltKey reports whether Alt was held.
func (e BrowserEvent) AltKey() bool { return e.Alt }

// ShiftKey reports whether Shift was held.
func (e BrowserEvent) ShiftKey() bool { return e.Shift }

// MetaKey reports whether Meta was held.
func (e BrowserEvent) MetaKey() bool { return e.Meta }

// KeyName prefers Key and falls back to the physical Code when Key is empty
// or carries no usable value ("Unidentified", "Dead").
func (e BrowserEvent) KeyName() string {
	switch e.Key {
	case "", "Unidentified", "Dead", "Process":
		return codeName(e.Code)
	case " ":
		return "space"
	}
	return e.Key
}

// codeName turns a physical key code into a key identifier.
func codeName(code string) string {
	switch {
	case len(code) == 4 && code[:3] == "Key":
		return code[3:]
	case len(code) == 6 && code[:5] == "Digit":
		return code[5:]
	case len(code) == 7 && code[:6] == "Numpad" && code[6] >= '0' && code[6] <= '9':
		return "kp" + code[6:]
	}
	return code
}
