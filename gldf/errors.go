package gldf

import "errors"

var (
	// ErrDuplicateID is returned when an add or rename would collide with
	// an existing ID in the same namespace.
	ErrDuplicateID = errors.New("gldf: duplicate id")

	// ErrNotFound is returned when an ID does not exist in the collection
	// an operation targets.
	ErrNotFound = errors.New("gldf: id not found")
)
