// Package engine orchestrates scanning and rename execution.
//
// The engine is the API surface called by the CLI and the TUI. Scanning is a
// pure read of the filesystem that produces a RenamePlan; execution consumes
// a plan strictly in order, re-checking each action against the live
// filesystem immediately before renaming, because an arbitrary amount of
// time may pass between planning and execution.
package engine

import (
	"github.com/danieljhkim/safename/internal/clock"
	"github.com/danieljhkim/safename/internal/fsops"
)

// Engine coordinates scanning and execution.
type Engine struct {
	fs    fsops.FS
	clock clock.Clock
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, clk clock.Clock) *Engine {
	return &Engine{
		fs:    fs,
		clock: clk,
	}
}
