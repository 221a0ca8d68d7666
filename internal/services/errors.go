package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned, wrapped, when a row does not exist
var ErrNotFound = errors.New("not found")

// ReferenceError reports a write naming a row that does not exist
type ReferenceError struct {
	Field string
	ID    uint64
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", e.ID)
}

// ProtectedError reports a delete blocked by dependent rows
type ProtectedError struct {
	Resource string
	Message  string
}

func (e *ProtectedError) Error() string {
	return e.Message
}
