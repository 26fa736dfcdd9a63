package shortcut

import (
	"reflect"

	"github.com/dshills/shortcuts/internal/input/key"
)

// Handler responds to a dispatched shortcut.
//
// HandleShortcut receives the canonical shortcut, its modifiers and the
// context the handler was registered under. Returning true stops dispatch;
// false lets the next registered handler try.
type Handler interface {
	HandleShortcut(shortcut string, mods key.Modifier, from any) bool
}

// HandlerFunc adapts an ordinary function to Handler.
type HandlerFunc func(shortcut string, mods key.Modifier, from any) bool

// HandleShortcut calls f.
func (f HandlerFunc) HandleShortcut(shortcut string, mods key.Modifier, from any) bool {
	return f(shortcut, mods, from)
}

// sameHandler reports whether a and b identify the same handler.
// Comparable values use ==. Functions compare by code pointer, which the
// compiler may or may not share between closures of one literal; use
// RemoveRegistration to remove one exact registration.
func sameHandler(a, b Handler) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ta.Kind() == reflect.Func {
		return va.Pointer() == vb.Pointer()
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return false
}

// isComparable reports whether v can be used as a registration context.
func isComparable(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}
