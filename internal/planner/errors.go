package planner

import "errors"

var (
	// ErrNotDirectory indicates the scan root does not exist or is not a
	// directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrOutsideRoot indicates a planned destination resolved outside the
	// scanned root. It signals a programming error rather than bad
	// user input.
	ErrOutsideRoot = errors.New("path outside scan root")
)
