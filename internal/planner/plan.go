package planner

// EntryKind classifies one filesystem object.
type EntryKind int

const (
	// KindFile is a regular file.
	KindFile EntryKind = iota

	// KindDirectory is a directory.
	KindDirectory

	// KindSymlink is a symbolic link.
	KindSymlink
)

// String returns the lowercase kind name.
func (k EntryKind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindSymlink:
		return "symlink"
	default:
		return "file"
	}
}

// Label returns a short aligned label for display, e.g. "[dir] ".
func (k EntryKind) Label() string {
	switch k {
	case KindDirectory:
		return "[dir] "
	case KindSymlink:
		return "[link]"
	default:
		return "[file]"
	}
}

// RenameAction is a single planned rename. Actions are immutable once
// constructed; only entries that actually require a change appear in a plan.
type RenameAction struct {
	// Source is the absolute path of the entry as it exists now.
	Source string `json:"source"`

	// Destination is the absolute path after the rename.
	Destination string `json:"destination"`

	// Kind classifies the entry.
	Kind EntryKind `json:"kind"`

	// OriginalName is the entry's current base name.
	OriginalName string `json:"original_name"`

	// FinalName is the base name after sanitization and collision
	// resolution.
	FinalName string `json:"final_name"`

	// Issues describes, in order, why the name had to change.
	Issues []string `json:"issues"`

	// NeedsRename is true for every action emitted into a plan.
	NeedsRename bool `json:"needs_rename"`
}

// RenamePlan is the complete rename plan for one directory tree. Actions are
// ordered for safe execution: deepest directories first, so a directory's
// contents are always renamed before the directory itself.
type RenamePlan struct {
	// Root is the scanned root directory (absolute).
	Root string `json:"root"`

	// Actions is the ordered sequence of renames to perform.
	Actions []RenameAction `json:"actions"`

	// Warnings lists paths that exceed the Windows MAX_PATH ceiling,
	// including entries that are not being renamed.
	Warnings []string `json:"warnings"`

	// SkippedSymlinks lists symlinks that were recorded but not planned
	// because symlink following is disabled.
	SkippedSymlinks []string `json:"skipped_symlinks"`

	// TotalScanned counts every entry visited, including skipped
	// symlinks and entries that need no rename.
	TotalScanned int `json:"total_entries_scanned"`

	// RenamesNeeded counts the actions in the plan.
	RenamesNeeded int `json:"total_renames_needed"`
}

// HasChanges reports whether the plan contains any renames.
func (p *RenamePlan) HasChanges() bool {
	return p.RenamesNeeded > 0
}

// RenameResult is the outcome of executing one RenameAction. It is produced
// by the engine's executor; the shape is defined here because consumers of a
// plan rely on it.
type RenameResult struct {
	Action RenameAction `json:"action"`

	Success bool `json:"success"`

	// ErrorMessage is set when the rename failed.
	ErrorMessage string `json:"error_message,omitempty"`
}
