package shortcut

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Registration binds a handler to a canonical shortcut within a context.
// Registrations are immutable; removing and re-registering replaces them.
type Registration struct {
	// ID identifies this exact registration.
	ID uuid.UUID

	// Key is the canonical shortcut.
	Key string

	// Context is the owner the registration is scoped to.
	Context any

	// Handler is invoked on dispatch.
	Handler Handler

	// Default marks a fallback registration. Non-default registrations
	// are always tried before default ones.
	Default bool
}

// Filter selects registrations for removal.
type Filter func(Registration) bool

// ByContext matches registrations owned by ctx. A context that cannot be
// compared matches nothing.
func ByContext(ctx any) Filter {
	if !isComparable(ctx) {
		return func(Registration) bool { return false }
	}
	return func(r Registration) bool { return r.Context == ctx }
}

// ByKey matches registrations for a canonical key.
func ByKey(k string) Filter {
	return func(r Registration) bool { return r.Key == k }
}

// ByHandler matches registrations of h.
func ByHandler(h Handler) Filter {
	return func(r Registration) bool { return sameHandler(r.Handler, h) }
}

// ByID matches one exact registration.
func ByID(id uuid.UUID) Filter {
	return func(r Registration) bool { return r.ID == id }
}

// Store maps canonical keys to their registrations.
//
// Each list is kept in ascending precedence: defaults oldest to newest,
// then overrides oldest to newest. Dispatch walks it from the end.
type Store struct {
	mu    sync.RWMutex
	lists map[string][]Registration
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		lists: make(map[string][]Registration),
	}
}

// Save records a handler for key under ctx.
// An empty key, a nil handler or a context that cannot be compared is not
// stored; ok reports whether the registration was recorded.
func (s *Store) Save(k string, ctx any, h Handler, isDefault bool) (reg Registration, ok bool) {
	if k == "" || h == nil || !isComparable(ctx) {
		return Registration{}, false
	}

	reg = Registration{
		ID:      uuid.New(),
		Key:     k,
		Context: ctx,
		Handler: h,
		Default: isDefault,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[k]
	if !isDefault {
		s.lists[k] = append(list, reg)
		return reg, true
	}

	// New defaults go on top of the default tier, below every override.
	at := 0
	for at < len(list) && list[at].Default {
		at++
	}
	next := make([]Registration, 0, len(list)+1)
	next = append(next, list[:at]...)
	next = append(next, reg)
	next = append(next, list[at:]...)
	s.lists[k] = next
	return reg, true
}

// Remove deletes every registration matching all filters and returns how
// many were removed. With no filters every registration matches.
func (s *Store) Remove(filters ...Filter) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for k, list := range s.lists {
		kept := make([]Registration, 0, len(list))
		for _, r := range list {
			if matchAll(r, filters) {
				removed++
				continue
			}
			kept = append(kept, r)
		}
		if len(kept) == 0 {
			delete(s.lists, k)
			continue
		}
		if len(kept) != len(list) {
			s.lists[k] = kept
		}
	}
	return removed
}

func matchAll(r Registration, filters []Filter) bool {
	for _, f := range filters {
		if f != nil && !f(r) {
			return false
		}
	}
	return true
}

// Exists reports whether key has at least one registration.
func (s *Store) Exists(k string) bool {
	if k == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lists[k]) > 0
}

// Get returns the registrations for key in dispatch order: overrides
// newest first, then defaults newest first. The slice is a copy.
func (s *Store) Get(k string) []Registration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.lists[k]
	if len(list) == 0 {
		return nil
	}
	out := make([]Registration, len(list))
	for i, r := range list {
		out[len(list)-1-i] = r
	}
	return out
}

// Keys returns every key with registrations, sorted.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.lists))
	for k := range s.lists {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the total number of registrations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, list := range s.lists {
		n += len(list)
	}
	return n
}
