package key

import (
	"strings"
	"testing"
)

func TestNewRuneEvent(t *testing.T) {
	e := NewRuneEvent('a', ModNone)
	if e.Key != KeyRune {
		t.Errorf("NewRuneEvent key = %v, want KeyRune", e.Key)
	}
	if e.Rune != 'a' {
		t.Errorf("NewRuneEvent rune = %q, want 'a'", e.Rune)
	}
	if e.Timestamp.IsZero() {
		t.Error("NewRuneEvent should set a timestamp")
	}
}

func TestNewSpecialEvent(t *testing.T) {
	e := NewSpecialEvent(KeyEscape, ModCtrl)
	if e.Key != KeyEscape {
		t.Errorf("NewSpecialEvent key = %v, want KeyEscape", e.Key)
	}
	if e.Rune != 0 {
		t.Errorf("NewSpecialEvent rune = %q, want 0", e.Rune)
	}
	if !e.CtrlKey() {
		t.Error("expected CtrlKey")
	}
}

func TestEventKeyName(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('a', ModNone), "a"},
		{NewRuneEvent('A', ModShift), "A"},
		{NewRuneEvent(' ', ModNone), "space"},
		{NewSpecialEvent(KeyEnter, ModNone), "enter"},
		{NewSpecialEvent(KeyF5, ModAlt), "f5"},
		{Event{Key: KeyRune}, ""},
		{Event{}, ""},
	}

	for _, tt := range tests {
		if got := tt.event.KeyName(); got != tt.want {
			t.Errorf("%#v.KeyName() = %q, want %q", tt.event, got, tt.want)
		}
	}
}

func TestEventFlags(t *testing.T) {
	e := NewRuneEvent('x', ModCtrl|ModAlt|ModShift|ModMeta)
	if !e.CtrlKey() || !e.AltKey() || !e.ShiftKey() || !e.MetaKey() {
		t.Errorf("expected all modifier flags on %#v", e)
	}
	if got := ModifiersOf(e); got != e.Modifiers {
		t.Errorf("ModifiersOf() = %d, want %d", got, e.Modifiers)
	}
}

func TestEventIsRune(t *testing.T) {
	tests := []struct {
		event Event
		want  bool
	}{
		{NewRuneEvent('a', ModNone), true},
		{NewSpecialEvent(KeyEscape, ModNone), false},
		{Event{Key: KeyRune, Rune: 0}, false},
	}

	for _, tt := range tests {
		if got := tt.event.IsRune(); got != tt.want {
			t.Errorf("Event.IsRune() = %v, want %v for %+v", got, tt.want, tt.event)
		}
	}
}

func TestEventIsChar(t *testing.T) {
	if !NewRuneEvent(' ', ModNone).IsChar() {
		t.Error("space should be a printable char")
	}
	if NewRuneEvent('\n', ModNone).IsChar() {
		t.Error("newline should not be a printable char")
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewRuneEvent('s', ModCtrl), "ctrl+s"},
		{NewRuneEvent('S', ModCtrl|ModShift), "ctrl+shift+s"},
		{NewSpecialEvent(KeyTab, ModShift), "shift+tab"},
		{NewRuneEvent('+', ModCtrl), "ctrl+plus"},
		{Event{}, ""},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("Event.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEventEquals(t *testing.T) {
	a := NewRuneEvent('a', ModCtrl)
	b := NewRuneEvent('a', ModCtrl)
	c := NewRuneEvent('a', ModAlt)

	if !a.Equals(b) {
		t.Error("events with different timestamps should be equal")
	}
	if a.Equals(c) {
		t.Error("events with different modifiers should not be equal")
	}
}

func TestEventGoString(t *testing.T) {
	got := NewRuneEvent('q', ModCtrl).GoString()
	if !strings.Contains(got, `'q'`) || !strings.Contains(got, "ctrl") {
		t.Errorf("GoString() = %q", got)
	}
}

func TestBrowserEventKeyName(t *testing.T) {
	tests := []struct {
		event BrowserEvent
		want  string
	}{
		{BrowserEvent{Key: "a", Code: "KeyA"}, "a"},
		{BrowserEvent{Key: "ArrowUp", Code: "ArrowUp"}, "ArrowUp"},
		{BrowserEvent{Key: " ", Code: "Space"}, "space"},
		{BrowserEvent{Key: "Dead", Code: "KeyE"}, "E"},
		{BrowserEvent{Key: "Unidentified", Code: "Digit3"}, "3"},
		{BrowserEvent{Code: "Numpad7"}, "kp7"},
		{BrowserEvent{Code: "F4"}, "F4"},
	}

	for _, tt := range tests {
		if got := tt.event.KeyName(); got != tt.want {
			t.Errorf("%+v.KeyName() = %q, want %q", tt.event, got, tt.want)
		}
	}
}
