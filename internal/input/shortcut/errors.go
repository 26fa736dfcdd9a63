package shortcut

import "errors"

// Registry errors
var (
	// ErrStaticContext is returned when In is called on a static manager.
	// Create a dedicated manager for the context instead.
	ErrStaticContext = errors.New("cannot change context of a static manager")

	// ErrContextNotComparable is returned for contexts that cannot be
	// matched by equality, such as maps, slices and funcs.
	ErrContextNotComparable = errors.New("context is not comparable")

	// ErrInvalidShortcut is returned by On for a specification that does
	// not normalize.
	ErrInvalidShortcut = errors.New("invalid shortcut")

	// ErrNilHandler is returned by On when no handler is given.
	ErrNilHandler = errors.New("nil handler")
)
