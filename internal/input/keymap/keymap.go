package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/shortcuts/internal/input/key"
)

// Keymap is a named set of bindings, typically loaded from one file.
type Keymap struct {
	// Name is the keymap identifier.
	Name string `toml:"name" yaml:"name"`

	// Source indicates where this keymap was defined.
	// Examples: "default", "user", "/home/me/.config/shortcuts/keys.toml"
	Source string `toml:"source,omitempty" yaml:"source,omitempty"`

	// Bindings are the shortcut-to-action mappings.
	Bindings []Binding `toml:"bindings" yaml:"bindings"`
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys, action string) *Keymap {
	k.Bindings = append(k.Bindings, NewBinding(keys, action))
	return k
}

// AddBinding adds a fully configured binding to this keymap.
func (k *Keymap) AddBinding(binding Binding) *Keymap {
	k.Bindings = append(k.Bindings, binding)
	return k
}

// Validate checks every binding and reports all failures together.
func (k *Keymap) Validate() error {
	var errs []error
	for i, b := range k.Bindings {
		if b.Keys == "" {
			errs = append(errs, fmt.Errorf("binding %d: empty keys", i))
			continue
		}
		if b.Action == "" {
			errs = append(errs, fmt.Errorf("binding %d (%s): empty action", i, b.Keys))
		}
		if _, err := key.Parse(b.Keys); err != nil {
			errs = append(errs, fmt.Errorf("binding %d (%s): %w", i, b.Keys, err))
		}
	}
	return errors.Join(errs...)
}

// Conflict lists the non-default bindings that share one shortcut.
// Only the last of them is reached first on dispatch.
type Conflict struct {
	Shortcut string
	Actions  []string
}

// Conflicts returns every shortcut bound by more than one non-default
// binding, sorted by shortcut. Invalid bindings are skipped.
func (k *Keymap) Conflicts() []Conflict {
	byKey := make(map[string][]string)
	for _, b := range k.Bindings {
		if b.Default {
			continue
		}
		canonical, ok := key.Normalize(b.Keys)
		if !ok {
			continue
		}
		byKey[canonical] = append(byKey[canonical], b.Action)
	}

	var out []Conflict
	for sc, actions := range byKey {
		if len(actions) > 1 {
			out = append(out, Conflict{Shortcut: sc, Actions: actions})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Shortcut < out[j].Shortcut })
	return out
}

// Clone creates a deep copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := &Keymap{
		Name:     k.Name,
		Source:   k.Source,
		Bindings: make([]Binding, len(k.Bindings)),
	}
	copy(clone.Bindings, k.Bindings)
	for i, b := range k.Bindings {
		if b.Args != nil {
			clone.Bindings[i].Args = make(map[string]any, len(b.Args))
			for name, v := range b.Args {
				clone.Bindings[i].Args[name] = v
			}
		}
	}
	return clone
}

// Merge returns a new keymap holding k's bindings followed by other's.
// Later bindings take precedence on dispatch.
func (k *Keymap) Merge(other *Keymap) *Keymap {
	merged := k.Clone()
	if other != nil {
		merged.Bindings = append(merged.Bindings, other.Clone().Bindings...)
	}
	return merged
}
