package db

import "errors"

var (
	// ErrNotFound indicates the referenced record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrConflict indicates a conditional update matched a row that is no
	// longer in the expected state (e.g. a claim raced with another claim)
	ErrConflict = errors.New("record not in expected state")
)
