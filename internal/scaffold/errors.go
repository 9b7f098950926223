package scaffold

import "errors"

// Fatal run conditions. Both are detected before any filesystem mutation.
var (
	// ErrDestinationNotEmpty is the root guard: the destination exists,
	// already has entries, and force was not set.
	ErrDestinationNotEmpty = errors.New("destination exists and is not empty")

	// ErrInvalidProjectName rejects an empty or blank project name.
	ErrInvalidProjectName = errors.New("project name must not be empty")

	// ErrInvalidRoot rejects an empty destination root.
	ErrInvalidRoot = errors.New("destination root must not be empty")
)
