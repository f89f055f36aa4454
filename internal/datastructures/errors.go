package datastructures

import "errors"

var (
	ErrEmpty      = errors.New("list is empty")
	ErrNotFound   = errors.New("value not found")
	ErrOutOfRange = errors.New("index out of range")

	// ErrCorrupted is returned by Verify when the next/prev relations disagree.
	// Seeing it means a mutation has a bug.
	ErrCorrupted = errors.New("list invariant violated")
)
