package services

import (
	"errors"
	"fmt"

	"notes-labels/database"
)

// Common service-level errors. The not-found errors wrap
// database.ErrNotFound so callers may check either.
var (
	ErrLabelNotFound    = fmt.Errorf("label not found: %w", database.ErrNotFound)
	ErrNoteNotFound     = fmt.Errorf("note not found: %w", database.ErrNotFound)
	ErrLabelNotAttached = fmt.Errorf("label is not attached to note: %w", database.ErrNotFound)

	ErrInvalidName = errors.New("name must not be blank")
)

// mapNotFound swaps a bare database.ErrNotFound for the service error.
func mapNotFound(err, target error) error {
	if errors.Is(err, database.ErrNotFound) {
		return target
	}
	return err
}
