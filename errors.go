package configuron

import "errors"

var (
	// ErrUnconfigurableType is returned by Extend when the candidate is not a
	// module declaration: a non-nil pointer to a named struct type that embeds
	// Configurable by value.
	ErrUnconfigurableType = errors.New("unconfigurable type")
	// ErrNotExtended is returned by configuration accessors of a module that was
	// never passed to Extend.
	ErrNotExtended = errors.New("module has not been extended")
	// ErrNilCallback is returned by Configure when called without a callback.
	ErrNilCallback = errors.New("configure callback cannot be nil")
)
