package interview

import "errors"

var (
	// ErrAborted signals the user cancelled a prompt (e.g., Ctrl+C).
	ErrAborted = errors.New("interview: aborted")
	// ErrNoChoices is returned when a menu would be empty.
	ErrNoChoices = errors.New("interview: nothing to choose from")
)
