package shortcut

import (
	"fmt"
	"strings"

	"github.com/dshills/shortcuts/internal/input/key"
)

// Manager is a handle onto a Registry bound to one context.
// Registrations made through a manager belong to its context, and Remove
// and Destroy only touch that context's registrations.
type Manager struct {
	registry *Registry
	context  any
	static   bool
}

// Create returns a new manager on the same registry bound to ctx.
func (m *Manager) Create(ctx any) (*Manager, error) {
	return m.registry.Create(ctx)
}

// In rebinds the manager to ctx and returns it.
// Static managers are shared, so their context never changes.
func (m *Manager) In(ctx any) (*Manager, error) {
	if m.static {
		return m, ErrStaticContext
	}
	if !isComparable(ctx) {
		return m, ErrContextNotComparable
	}
	m.context = ctx
	return m, nil
}

// Context returns the context registrations are scoped to.
func (m *Manager) Context() any {
	return m.context
}

// IsStatic reports whether the manager's context is fixed.
func (m *Manager) IsStatic() bool {
	return m.static
}

// Registry returns the registry the manager operates on.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// On registers h for spec. Pass true for isDefault to register a fallback
// that every non-default registration of the same shortcut overrides.
func (m *Manager) On(spec string, h Handler, isDefault ...bool) (Registration, error) {
	if h == nil {
		return Registration{}, ErrNilHandler
	}
	sc, err := key.Parse(spec)
	if err != nil {
		return Registration{}, fmt.Errorf("%w %q: %w", ErrInvalidShortcut, spec, err)
	}

	def := len(isDefault) > 0 && isDefault[0]
	reg, ok := m.registry.store.Save(sc.String(), m.context, h, def)
	if !ok {
		return Registration{}, ErrContextNotComparable
	}
	m.registry.debugf("register %s as %s (default=%t)", spec, reg.Key, def)
	return reg, nil
}

// OnFunc registers a plain function for spec.
func (m *Manager) OnFunc(spec string, fn func(shortcut string, mods key.Modifier, from any) bool, isDefault ...bool) (Registration, error) {
	if fn == nil {
		return Registration{}, ErrNilHandler
	}
	return m.On(spec, HandlerFunc(fn), isDefault...)
}

// Normalize returns the canonical key of a string or event spec.
func (m *Manager) Normalize(spec key.Spec) (string, bool) {
	if spec == nil {
		return "", false
	}
	return spec.Canonical()
}

// Remove deletes this context's registrations for spec and h. An empty spec
// matches every shortcut and a nil handler matches every handler. A spec
// that does not normalize removes nothing.
func (m *Manager) Remove(spec string, h Handler) int {
	filters := []Filter{ByContext(m.context)}
	if strings.TrimSpace(spec) != "" {
		k, ok := key.Normalize(spec)
		if !ok {
			m.registry.debugf("remove %s: not a valid shortcut", spec)
			return 0
		}
		filters = append(filters, ByKey(k))
	}
	if h != nil {
		filters = append(filters, ByHandler(h))
	}

	n := m.registry.store.Remove(filters...)
	m.registry.debugf("remove %q: %d registration(s)", spec, n)
	return n
}

// RemoveRegistration deletes one registration made by this manager's context.
func (m *Manager) RemoveRegistration(reg Registration) bool {
	return m.registry.store.Remove(ByContext(m.context), ByID(reg.ID)) > 0
}

// Event dispatches a key press. Handlers for its shortcut are tried in
// precedence order until one returns true; Event reports whether any did.
//
// The handler list is captured before the first handler runs, so handlers
// may register or remove shortcuts without affecting the dispatch in flight.
// Handler panics are not recovered.
func (m *Manager) Event(ev key.KeyEvent) bool {
	if ev == nil {
		return false
	}
	sc, err := key.ParseEvent(ev)
	if err != nil {
		return false
	}
	k := sc.String()

	regs := m.registry.store.Get(k)
	if len(regs) == 0 {
		m.registry.debugf("no handler for %q", k)
		return false
	}

	m.registry.debugf("trying to handle %q, %d handler(s) available", k, len(regs))
	for i, reg := range regs {
		if reg.Handler.HandleShortcut(k, sc.Modifiers, reg.Context) {
			m.registry.debugf("handler %d (%s) handled %q", i, reg.ID, k)
			return true
		}
		m.registry.debugf("handler %d (%s) returned false, trying next", i, reg.ID)
	}
	m.registry.debugf("no more handlers for %q", k)
	return false
}

// Exists reports whether spec has any registration in any context.
func (m *Manager) Exists(spec key.Spec) bool {
	k, ok := m.Normalize(spec)
	result := ok && m.registry.store.Exists(k)
	if result {
		m.registry.debugf("shortcut %q is registered", k)
	} else {
		m.registry.debugf("shortcut %q is not registered", k)
	}
	return result
}

// Destroy removes every registration owned by the manager's context.
func (m *Manager) Destroy() int {
	return m.Remove("", nil)
}
