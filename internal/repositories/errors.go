package repositories

import "errors"

// ErrNotFound is wrapped by every repository when a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is wrapped when a unique field is already taken.
var ErrDuplicate = errors.New("duplicate record")
