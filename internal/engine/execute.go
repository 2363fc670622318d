package engine

import (
	"fmt"

	"github.com/danieljhkim/safename/internal/audit"
	"github.com/danieljhkim/safename/internal/planner"
)

// Execute performs the renames in req.Plan strictly in plan order.
//
// The plan may be arbitrarily stale by the time it is executed, so every
// action is re-checked immediately before renaming: the source must still
// exist (a symlink counts even if its target is gone) and the destination
// must not. Any per-action failure is recorded and execution continues with
// the remaining actions; Execute itself only fails if the audit log cannot
// be written.
func (e *Engine) Execute(req *ExecuteRequest) (*ExecuteResult, error) {
	result := &ExecuteResult{}

	for _, action := range req.Plan.Actions {
		if !action.NeedsRename {
			continue
		}
		result.record(e.executeRename(action))
	}

	if req.LogPath != "" {
		log := audit.NewLog(req.Plan.Root, result.Results, e.clock.Now())
		data, err := log.Marshal()
		if err != nil {
			return result, err
		}
		if err := e.fs.AtomicWrite(req.LogPath, data, 0644); err != nil {
			return result, fmt.Errorf("failed to write audit log: %w", err)
		}
		result.LogPath = req.LogPath
	}

	return result, nil
}

// DefaultLogPath returns the timestamped audit-log filename for a run
// starting now, using the engine's clock.
func (e *Engine) DefaultLogPath() string {
	return audit.Filename(e.clock.Now())
}

// executeRename attempts a single rename with pre-flight checks.
func (e *Engine) executeRename(action planner.RenameAction) planner.RenameResult {
	exists, err := e.fs.Exists(action.Source)
	if err != nil {
		return failure(action, fmt.Sprintf("failed to check source: %v", err))
	}
	if !exists {
		return failure(action, fmt.Sprintf("source no longer exists: %s", action.Source))
	}

	exists, err = e.fs.Exists(action.Destination)
	if err != nil {
		return failure(action, fmt.Sprintf("failed to check destination: %v", err))
	}
	if exists {
		return failure(action, fmt.Sprintf("destination already exists: %s", action.Destination))
	}

	if err := e.fs.Rename(action.Source, action.Destination); err != nil {
		return failure(action, err.Error())
	}
	return planner.RenameResult{Action: action, Success: true}
}

func (r *ExecuteResult) record(res planner.RenameResult) {
	r.Results = append(r.Results, res)
	if res.Success {
		r.Succeeded++
	} else {
		r.Failed++
	}
}

func failure(action planner.RenameAction, msg string) planner.RenameResult {
	return planner.RenameResult{Action: action, Success: false, ErrorMessage: msg}
}
