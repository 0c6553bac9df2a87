package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned by any operation invoked before
	// Open succeeded or after Close.
	ErrNotInitialized = errors.New("database not initialized")

	// ErrNotFound is returned when a load-by-id misses.
	ErrNotFound = errors.New("record not found")
)

// GuardedOverwriteError is the data-loss-prevention rejection: a save
// carrying boot-state content (empty editor state, not a deliberate
// clear) tried to overwrite a note that already holds real content.
type GuardedOverwriteError struct {
	NoteID      string
	Title       string
	ExistingLen int
}

func (e *GuardedOverwriteError) Error() string {
	return fmt.Sprintf("blocked overwrite of note %q (%d chars) with boot-state content", e.Title, e.ExistingLen)
}
