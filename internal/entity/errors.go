package entity

import "errors"

var (
	// ErrNotFound means the id (or route resource) matched nothing.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName means a lookup item with the same name already exists
	// in the collection.
	ErrDuplicateName = errors.New("duplicate name")
)
