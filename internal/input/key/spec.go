package key

// Spec is either a shortcut string or a key-press event.
// Both resolve to a canonical key through the same tables.
type Spec interface {
	Canonical() (string, bool)
}

// StringSpec is a human-readable shortcut such as "ctrl+shift+a".
type StringSpec string

// Canonical normalizes the string.
func (s StringSpec) Canonical() (string, bool) {
	return Normalize(string(s))
}

// EventSpec wraps a key-press event.
type EventSpec struct {
	Event KeyEvent
}

// Canonical decodes the event.
func (s EventSpec) Canonical() (string, bool) {
	return FromEvent(s.Event)
}

// SpecOf wraps ev so it can be passed where a Spec is expected.
func SpecOf(ev KeyEvent) Spec {
	return EventSpec{Event: ev}
}
