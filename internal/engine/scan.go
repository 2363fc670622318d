package engine

import (
	"github.com/danieljhkim/safename/internal/planner"
)

// Scan builds a rename plan for the tree under req.Root. The filesystem is
// only read, never mutated.
func (e *Engine) Scan(req *ScanRequest) (*planner.RenamePlan, error) {
	scanner := planner.NewScanner(e.fs, planner.Config{
		Sanitize:       req.Options,
		FollowSymlinks: req.FollowSymlinks,
	})
	return scanner.BuildPlan(req.Root)
}
