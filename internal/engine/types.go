package engine

import (
	"github.com/danieljhkim/safename/internal/planner"
	"github.com/danieljhkim/safename/internal/sanitize"
)

// ScanRequest describes one scan invocation.
type ScanRequest struct {
	// Root is the directory to scan. Must exist and be a directory.
	Root string

	// Options configures the name-sanitization pipeline.
	Options sanitize.Options

	// FollowSymlinks controls whether symlinks participate in renaming.
	FollowSymlinks bool
}

// ExecuteRequest describes one execution of a previously built plan.
type ExecuteRequest struct {
	// Plan is the rename plan to execute.
	Plan *planner.RenamePlan

	// LogPath, when non-empty, is where the JSON audit log is written
	// after execution.
	LogPath string
}

// ExecuteResult is the outcome of executing a plan.
type ExecuteResult struct {
	// Results holds one entry per attempted action, in plan order.
	Results []planner.RenameResult

	// Succeeded counts successful renames.
	Succeeded int

	// Failed counts failed renames.
	Failed int

	// LogPath is where the audit log was written (empty if none).
	LogPath string
}
