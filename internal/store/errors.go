package store

import "errors"

var (
	// ErrNotFound is returned when a format or profile id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateID is returned when creating a record whose id exists.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrReservedID is returned when a record id collides with the
	// built-in namespace.
	ErrReservedID = errors.New("id reserved by built-in catalogue")
)
