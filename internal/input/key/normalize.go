package key

import (
	"errors"
	"fmt"
	"strings"
)

// Delimiter joins the tokens of a shortcut specification.
const Delimiter = "+"

// Parse errors
var (
	ErrEmptySpec     = errors.New("empty shortcut specification")
	ErrNoKey         = errors.New("shortcut has no key")
	ErrMultipleKeys  = errors.New("shortcut has more than one key")
	ErrUnknownToken  = errors.New("unknown token in shortcut")
	ErrModifierPress = errors.New("bare modifier press")
)

// Shortcut is a parsed key combination: a modifier set and one key token.
type Shortcut struct {
	// Modifiers contains the required modifier keys.
	Modifiers Modifier

	// Key is the canonical token of the non-modifier key, e.g. "a", "f5", "plus".
	Key string
}

// String returns the canonical shortcut key, e.g. "ctrl+shift+a".
func (s Shortcut) String() string {
	if s.Key == "" {
		return ""
	}
	tokens := append(s.Modifiers.Tokens(), s.Key)
	return strings.Join(tokens, Delimiter)
}

// IsZero reports whether s holds no key.
func (s Shortcut) IsZero() bool {
	return s.Key == ""
}

// Parse parses a shortcut specification such as "Ctrl+Shift+A".
//
// Tokens are separated by "+", matched case-insensitively and may appear in
// any order. Exactly one token must name a key; the rest must be modifiers.
// A literal plus key is written "plus".
func Parse(spec string) (Shortcut, error) {
	if strings.TrimSpace(spec) == "" {
		return Shortcut{}, ErrEmptySpec
	}

	var s Shortcut
	for _, part := range strings.Split(spec, Delimiter) {
		tok := strings.ToLower(strings.TrimSpace(part))
		if mod, ok := modifierNameMap[tok]; ok {
			s.Modifiers = s.Modifiers.With(mod)
			continue
		}
		name, ok := keyToken(tok)
		if !ok {
			return Shortcut{}, fmt.Errorf("%w: %q", ErrUnknownToken, part)
		}
		if s.Key != "" {
			return Shortcut{}, fmt.Errorf("%w: %q and %q", ErrMultipleKeys, s.Key, name)
		}
		s.Key = name
	}

	if s.Key == "" {
		return Shortcut{}, fmt.Errorf("%w: %q", ErrNoKey, spec)
	}
	return s, nil
}

// Normalize returns the canonical key for a shortcut specification.
// The second result is false when spec does not denote exactly one key
// with known modifiers.
func Normalize(spec string) (string, bool) {
	s, err := Parse(spec)
	if err != nil {
		return "", false
	}
	return s.String(), true
}

// ParseEvent decodes a key-press event into a Shortcut.
// Modifier flags are read from the event directly; the key identifier goes
// through the same name table Parse uses.
func ParseEvent(ev KeyEvent) (Shortcut, error) {
	if ev == nil {
		return Shortcut{}, ErrNoKey
	}
	name := strings.ToLower(strings.TrimSpace(ev.KeyName()))
	if name == "" {
		return Shortcut{}, ErrNoKey
	}
	if IsModifierName(name) {
		return Shortcut{}, fmt.Errorf("%w: %q", ErrModifierPress, ev.KeyName())
	}
	tok, ok := keyToken(name)
	if !ok {
		return Shortcut{}, fmt.Errorf("%w: %q", ErrUnknownToken, ev.KeyName())
	}
	return Shortcut{Modifiers: ModifiersOf(ev), Key: tok}, nil
}

// FromEvent returns the canonical key for a key-press event.
// FromEvent(ev) equals Normalize of the equivalent string spec, and is
// false for a lone modifier press or an unknown key identifier.
func FromEvent(ev KeyEvent) (string, bool) {
	s, err := ParseEvent(ev)
	if err != nil {
		return "", false
	}
	return s.String(), true
}

// MustNormalize normalizes a specification and panics on failure.
// Use only for known-valid specs in initialization code.
func MustNormalize(spec string) string {
	s, err := Parse(spec)
	if err != nil {
		panic("invalid shortcut specification: " + spec + ": " + err.Error())
	}
	return s.String()
}
