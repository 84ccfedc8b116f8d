package dom

import "github.com/pkg/errors"

var (
	// ErrInvalidOperation is returned when a call would break the shape of
	// the tree, e.g. re-parenting a node that already has a parent.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrOutOfMemory is returned when the arena cannot grow any further.
	ErrOutOfMemory = errors.New("out of memory")
)
