package engine

import "errors"

// Invalid input is a caller contract violation surfaced as an error value,
// never a crash and never a silent coercion.
var (
	// ErrInvalidConfig marks configuration errors: bad resolutions, step
	// sizes, shape extents and the like, rejected at construction or call
	// time.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownGroup marks lookups of group ids outside the registry.
	ErrUnknownGroup = errors.New("unknown group")
)
