package alloc

import "errors"

var (
	// ErrOutOfMemory indicates the arena reached its growth limit and the
	// request cannot be satisfied. This is the only recoverable error.
	ErrOutOfMemory = errors.New("alloc: arena limit reached")

	// ErrBadRef indicates an invalid or out-of-bounds block reference.
	ErrBadRef = errors.New("alloc: bad block reference")
)
