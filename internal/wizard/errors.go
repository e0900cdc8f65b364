package wizard

import "errors"

var (
	// ErrCancelled is returned when the user aborts a prompt.
	ErrCancelled = errors.New("wizard: cancelled by user")

	// ErrNonInteractive is returned when input is required but no terminal
	// is attached.
	ErrNonInteractive = errors.New("wizard: interactive input required; pass --editor and --mcps")
)
