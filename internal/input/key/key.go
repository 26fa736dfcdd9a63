package key

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Other special keys
	KeySpace
	KeyPause
	KeyPrintScreen
	KeyScrollLock
	KeyNumLock
	KeyCapsLock
	KeyContextMenu

	// Keypad keys
	KeyKP0
	KeyKP1
	KeyKP2
	KeyKP3
	KeyKP4
	KeyKP5
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
	KeyKPAdd
	KeyKPSubtract
	KeyKPMultiply
	KeyKPDivide
	KeyKPDecimal
	KeyKPEnter

	// KeyRune is used for character keys (letters, numbers, punctuation).
	// The actual character is stored in Event.Rune.
	KeyRune
)

// keyNames holds the canonical token of every special key.
var keyNames = map[Key]string{
	KeyEscape:      "escape",
	KeyEnter:       "enter",
	KeyTab:         "tab",
	KeyBackspace:   "backspace",
	KeyDelete:      "delete",
	KeyInsert:      "insert",
	KeyHome:        "home",
	KeyEnd:         "end",
	KeyPageUp:      "pageup",
	KeyPageDown:    "pagedown",
	KeyUp:          "up",
	KeyDown:        "down",
	KeyLeft:        "left",
	KeyRight:       "right",
	KeyF1:          "f1",
	KeyF2:          "f2",
	KeyF3:          "f3",
	KeyF4:          "f4",
	KeyF5:          "f5",
	KeyF6:          "f6",
	KeyF7:          "f7",
	KeyF8:          "f8",
	KeyF9:          "f9",
	KeyF10:         "f10",
	KeyF11:         "f11",
	KeyF12:         "f12",
	KeySpace:       "space",
	KeyPause:       "pause",
	KeyPrintScreen: "printscreen",
	KeyScrollLock:  "scrolllock",
	KeyNumLock:     "numlock",
	KeyCapsLock:    "capslock",
	KeyContextMenu: "contextmenu",
	KeyKP0:         "kp0",
	KeyKP1:         "kp1",
	KeyKP2:         "kp2",
	KeyKP3:         "kp3",
	KeyKP4:         "kp4",
	KeyKP5:         "kp5",
	KeyKP6:         "kp6",
	KeyKP7:         "kp7",
	KeyKP8:         "kp8",
	KeyKP9:         "kp9",
	KeyKPAdd:       "kpadd",
	KeyKPSubtract:  "kpsubtract",
	KeyKPMultiply:  "kpmultiply",
	KeyKPDivide:    "kpdivide",
	KeyKPDecimal:   "kpdecimal",
	KeyKPEnter:     "kpenter",
}

// Name returns the canonical lower-case token for a special key,
// or "" for KeyNone and KeyRune.
func (k Key) Name() string {
	return keyNames[k]
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsKeypadKey returns true if this is a keypad key.
func (k Key) IsKeypadKey() bool {
	return k >= KeyKP0 && k <= KeyKPEnter
}

// keyNameMap maps key names and their aliases (lowercase) to Key values.
var keyNameMap = map[string]Key{
	"escape":      KeyEscape,
	"esc":         KeyEscape,
	"enter":       KeyEnter,
	"return":      KeyEnter,
	"cr":          KeyEnter,
	"tab":         KeyTab,
	"backspace":   KeyBackspace,
	"bs":          KeyBackspace,
	"delete":      KeyDelete,
	"del":         KeyDelete,
	"insert":      KeyInsert,
	"ins":         KeyInsert,
	"home":        KeyHome,
	"end":         KeyEnd,
	"pageup":      KeyPageUp,
	"page_up":     KeyPageUp,
	"pgup":        KeyPageUp,
	"pagedown":    KeyPageDown,
	"page_down":   KeyPageDown,
	"pgdn":        KeyPageDown,
	"up":          KeyUp,
	"arrowup":     KeyUp,
	"down":        KeyDown,
	"arrowdown":   KeyDown,
	"left":        KeyLeft,
	"arrowleft":   KeyLeft,
	"right":       KeyRight,
	"arrowright":  KeyRight,
	"f1":          KeyF1,
	"f2":          KeyF2,
	"f3":          KeyF3,
	"f4":          KeyF4,
	"f5":          KeyF5,
	"f6":          KeyF6,
	"f7":          KeyF7,
	"f8":          KeyF8,
	"f9":          KeyF9,
	"f10":         KeyF10,
	"f11":         KeyF11,
	"f12":         KeyF12,
	"space":       KeySpace,
	"spacebar":    KeySpace,
	"pause":       KeyPause,
	"printscreen": KeyPrintScreen,
	"prtsc":       KeyPrintScreen,
	"scrolllock":  KeyScrollLock,
	"numlock":     KeyNumLock,
	"capslock":    KeyCapsLock,
	"contextmenu": KeyContextMenu,
	"menu":        KeyContextMenu,
	"apps":        KeyContextMenu,
	"kp0":         KeyKP0,
	"kp1":         KeyKP1,
	"kp2":         KeyKP2,
	"kp3":         KeyKP3,
	"kp4":         KeyKP4,
	"kp5":         KeyKP5,
	"kp6":         KeyKP6,
	"kp7":         KeyKP7,
	"kp8":         KeyKP8,
	"kp9":         KeyKP9,
	"kpadd":       KeyKPAdd,
	"kpsubtract":  KeyKPSubtract,
	"kpmultiply":  KeyKPMultiply,
	"kpdivide":    KeyKPDivide,
	"kpdecimal":   KeyKPDecimal,
	"kpenter":     KeyKPEnter,
}

// runeAliases spells characters that cannot appear literally in a spec.
var runeAliases = map[string]rune{
	"plus":  '+',
	"minus": '-',
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	return KeyNone
}

// runeToken returns the canonical token for a character key.
func runeToken(r rune) string {
	switch r {
	case ' ':
		return keyNames[KeySpace]
	case '+':
		return "plus"
	}
	return string(unicode.ToLower(r))
}

// keyToken maps one lower-cased, trimmed key name to its canonical token.
// It accepts named keys, their aliases and single printable characters.
func keyToken(name string) (string, bool) {
	if k, ok := keyNameMap[name]; ok {
		return keyNames[k], true
	}
	if r, ok := runeAliases[name]; ok {
		return runeToken(r), true
	}
	if utf8.RuneCountInString(name) != 1 {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return "", false
	}
	return runeToken(r), true
}
