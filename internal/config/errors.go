package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration loading and validation.
var (
	// ErrInvalidLogLevel indicates an unrecognized log level name.
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrWatchWithoutBindings indicates watch was requested with no bindings file.
	ErrWatchWithoutBindings = errors.New("watch requires a bindings file")

	// ErrInvalidDebounce indicates a negative watch debounce.
	ErrInvalidDebounce = errors.New("invalid watch debounce")
)

// ParseError represents a configuration file that could not be read.
type ParseError struct {
	// Path is the file path given by the caller, empty for the default lookup.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("reading config: %v", e.Err)
	}
	return fmt.Sprintf("reading config %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
