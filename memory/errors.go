package memory

import "errors"

var (
	// ErrNotFound is returned when a collection / key pair does not exist.
	ErrNotFound = errors.New("memory record not found")
)
