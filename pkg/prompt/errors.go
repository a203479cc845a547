package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoMatches is returned when no template matches the collected
	// criteria.
	ErrNoMatches = errors.New("prompt: no matching templates")
	// ErrEmptyCatalog is returned when the catalog holds no templates to pick.
	ErrEmptyCatalog = errors.New("prompt: catalog has no templates")
)
