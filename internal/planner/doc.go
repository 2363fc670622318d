// Package planner scans a directory tree and produces a rename plan.
//
// The scanner walks the tree in explicit post-order (deepest directories
// first), sanitizes every entry name, resolves intra-directory naming
// collisions deterministically, and assembles an ordered plan of rename
// actions. The ordering is load-bearing: an action for a directory's
// contents always precedes the action for the directory itself, because
// renaming a directory changes the path of every descendant beneath it.
//
// Key responsibilities:
//   - Build a RenamePlan with safely ordered RenameActions
//   - Resolve name collisions within each directory (deterministic suffixes)
//   - Validate that every destination stays under the scanned root
//   - Warn about paths exceeding the Windows MAX_PATH ceiling
//   - Record skipped symlinks when symlink following is disabled
package planner
