package repositories

import "errors"

// Sentinel errors shared by all repository implementations.
var (
	ErrNotFound  = errors.New("record not found")
	ErrInvalidID = errors.New("invalid ID format")
)
