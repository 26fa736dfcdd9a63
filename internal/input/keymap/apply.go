package keymap

import (
	"errors"
	"fmt"

	"github.com/dshills/shortcuts/internal/input/key"
	"github.com/dshills/shortcuts/internal/input/shortcut"
)

// ActionFunc runs the action named by a binding. Returning false lets
// dispatch continue to the next handler for the shortcut.
type ActionFunc func(b Binding, shortcut string, mods key.Modifier) bool

// Apply registers one handler per binding through m. Bindings that fail
// to register are skipped and reported together in the returned error;
// the registrations that succeeded are returned either way.
func (k *Keymap) Apply(m *shortcut.Manager, run ActionFunc) ([]shortcut.Registration, error) {
	if run == nil {
		return nil, shortcut.ErrNilHandler
	}

	regs := make([]shortcut.Registration, 0, len(k.Bindings))
	var errs []error
	for i, b := range k.Bindings {
		reg, err := m.On(b.Keys, bindingHandler(b, run), b.Default)
		if err != nil {
			errs = append(errs, fmt.Errorf("binding %d (%s): %w", i, b.Action, err))
			continue
		}
		regs = append(regs, reg)
	}
	return regs, errors.Join(errs...)
}

func bindingHandler(b Binding, run ActionFunc) shortcut.HandlerFunc {
	return func(sc string, mods key.Modifier, _ any) bool {
		return run(b, sc, mods)
	}
}

// Bound is a keymap applied to a manager.
type Bound struct {
	Keymap  *Keymap
	manager *shortcut.Manager
	regs    []shortcut.Registration
}

// Bind applies k to m and remembers the registrations so they can be
// withdrawn as a unit.
func Bind(m *shortcut.Manager, k *Keymap, run ActionFunc) (*Bound, error) {
	regs, err := k.Apply(m, run)
	return &Bound{Keymap: k, manager: m, regs: regs}, err
}

// Registrations returns the registrations made by Bind.
func (b *Bound) Registrations() []shortcut.Registration {
	out := make([]shortcut.Registration, len(b.regs))
	copy(out, b.regs)
	return out
}

// Unbind removes every registration made by Bind and returns how many
// were still present.
func (b *Bound) Unbind() int {
	n := 0
	for _, reg := range b.regs {
		if b.manager.RemoveRegistration(reg) {
			n++
		}
	}
	b.regs = nil
	return n
}
