package key

import (
	"testing"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "escape"},
		{KeyEnter, "enter"},
		{KeyPageDown, "pagedown"},
		{KeyF12, "f12"},
		{KeySpace, "space"},
		{KeyKPAdd, "kpadd"},
		{KeyRune, "Rune"},
		{Key(999), "Key(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeyName(t *testing.T) {
	if got := KeyNone.Name(); got != "" {
		t.Errorf("KeyNone.Name() = %q, want empty", got)
	}
	if got := KeyRune.Name(); got != "" {
		t.Errorf("KeyRune.Name() = %q, want empty", got)
	}
	for k := KeyEscape; k < KeyRune; k++ {
		if k.Name() == "" {
			t.Errorf("Key(%d) has no canonical name", k)
		}
	}
}

func TestKeyClassification(t *testing.T) {
	tests := []struct {
		key                              Key
		special, function, arrow, keypad bool
	}{
		{KeyNone, false, false, false, false},
		{KeyRune, false, false, false, false},
		{KeyEscape, true, false, false, false},
		{KeyF6, true, true, false, false},
		{KeyLeft, true, false, true, false},
		{KeyKP5, true, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := tt.key.IsSpecial(); got != tt.special {
				t.Errorf("IsSpecial() = %v, want %v", got, tt.special)
			}
			if got := tt.key.IsFunctionKey(); got != tt.function {
				t.Errorf("IsFunctionKey() = %v, want %v", got, tt.function)
			}
			if got := tt.key.IsArrowKey(); got != tt.arrow {
				t.Errorf("IsArrowKey() = %v, want %v", got, tt.arrow)
			}
			if got := tt.key.IsKeypadKey(); got != tt.keypad {
				t.Errorf("IsKeypadKey() = %v, want %v", got, tt.keypad)
			}
		})
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"escape", KeyEscape},
		{"Esc", KeyEscape},
		{"RETURN", KeyEnter},
		{"pgup", KeyPageUp},
		{"Page_Down", KeyPageDown},
		{"ArrowLeft", KeyLeft},
		{" f5 ", KeyF5},
		{"menu", KeyContextMenu},
		{"a", KeyNone},
		{"unknown", KeyNone},
		{"", KeyNone},
	}

	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestKeyToken(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"a", "a", true},
		{"7", "7", true},
		{"/", "/", true},
		{"plus", "plus", true},
		{"minus", "-", true},
		{"-", "-", true},
		{"é", "é", true},
		{"esc", "escape", true},
		{"arrowup", "up", true},
		{"spacebar", "space", true},
		{"", "", false},
		{"ab", "", false},
		{"\t", "", false},
	}

	for _, tt := range tests {
		got, ok := keyToken(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("keyToken(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
