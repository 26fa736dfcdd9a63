package key

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// modMask covers every modifier the canonical form knows about.
const modMask = ModShift | ModCtrl | ModAlt | ModMeta

// modifierOrder is the fixed order modifiers take in a canonical key.
var modifierOrder = []struct {
	mod   Modifier
	token string
}{
	{ModCtrl, "ctrl"},
	{ModAlt, "alt"},
	{ModShift, "shift"},
	{ModMeta, "meta"},
}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasMeta returns true if Meta is pressed.
func (m Modifier) HasMeta() bool {
	return m.Has(ModMeta)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m&modMask == ModNone
}

// Tokens returns the canonical modifier tokens in ctrl, alt, shift, meta order.
func (m Modifier) Tokens() []string {
	var parts []string
	for _, o := range modifierOrder {
		if m.Has(o.mod) {
			parts = append(parts, o.token)
		}
	}
	return parts
}

// String returns the canonical representation like "ctrl+alt".
func (m Modifier) String() string {
	return strings.Join(m.Tokens(), Delimiter)
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
// No single-letter aliases: "a" and "s" are keys.
var modifierNameMap = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"altgr":   ModAlt,
	"shift":   ModShift,
	"meta":    ModMeta,
	"cmd":     ModMeta,
	"command": ModMeta,
	"win":     ModMeta,
	"super":   ModMeta,
	"os":      ModMeta,
}

// bareModifierNames are key identifiers a key-press event reports when a
// modifier key itself is pressed.
var bareModifierNames = map[string]bool{
	"controlleft":  true,
	"controlright": true,
	"shiftleft":    true,
	"shiftright":   true,
	"altleft":      true,
	"altright":     true,
	"metaleft":     true,
	"metaright":    true,
	"osleft":       true,
	"osright":      true,
	"hyper":        true,
	"fn":           true,
}

// ModifierFromName returns the Modifier for a given name (case-insensitive).
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m
	}
	return ModNone
}

// IsModifierName reports whether name identifies a modifier key on its own.
func IsModifierName(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if _, ok := modifierNameMap[name]; ok {
		return true
	}
	return bareModifierNames[name]
}
