package planner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/danieljhkim/safename/internal/fsops"
	"github.com/danieljhkim/safename/internal/sanitize"
)

// Config holds the scan configuration.
type Config struct {
	// Sanitize configures the name-sanitization pipeline.
	Sanitize sanitize.Options

	// FollowSymlinks controls whether symlinks participate in
	// sanitization. When false (the default), symlinks are recorded as
	// skipped and produce no rename action.
	FollowSymlinks bool
}

// Scanner walks a directory tree and builds rename plans.
type Scanner struct {
	fs  fsops.FS
	cfg Config
}

// NewScanner creates a Scanner using the given filesystem and configuration.
func NewScanner(fs fsops.FS, cfg Config) *Scanner {
	return &Scanner{fs: fs, cfg: cfg}
}

// BuildPlan scans the tree under root and returns a complete rename plan.
// root must exist and be a directory.
func (s *Scanner) BuildPlan(root string) (*RenamePlan, error) {
	if err := s.cfg.Sanitize.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sanitize options: %w", err)
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}

	// The root itself may be a symlink to a directory; resolve it so the
	// plan carries real paths. Symlinks inside the tree are still subject
	// to FollowSymlinks.
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotDirectory, root, err)
	}
	root = resolved

	info, err := s.fs.Lstat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotDirectory, root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	plan := &RenamePlan{Root: root}
	if err := s.walk(root, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// walk visits dir in post-order: all subdirectories are planned before the
// entries of dir itself, so a rename of dir's children never invalidates an
// already-planned descendant path.
func (s *Scanner) walk(dir string, plan *RenamePlan) error {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		// DirEntry reports symlinks-to-directories as non-directories,
		// so symlinked trees are never descended into.
		if entry.IsDir() {
			if err := s.walk(filepath.Join(dir, entry.Name()), plan); err != nil {
				return err
			}
		}
	}

	return s.planDirectory(dir, entries, plan)
}

// planDirectory sanitizes the immediate children of dir, resolves collisions
// among them, and appends the resulting actions and warnings to plan.
func (s *Scanner) planDirectory(dir string, entries []os.DirEntry, plan *RenamePlan) error {
	planned := make(map[string]string)
	kinds := make(map[string]EntryKind)
	issuesByName := make(map[string][]string)
	untouched := make(map[string]struct{})

	for _, entry := range entries {
		name := entry.Name()
		kind := classify(entry)

		if kind == KindSymlink && !s.cfg.FollowSymlinks {
			plan.SkippedSymlinks = append(plan.SkippedSymlinks, filepath.Join(dir, name))
			plan.TotalScanned++
			continue
		}
		plan.TotalScanned++

		sanitized, issues := sanitize.Sanitize(name, s.cfg.Sanitize)
		if sanitized != name {
			planned[name] = sanitized
			kinds[name] = kind
			issuesByName[name] = issues
		} else {
			untouched[name] = struct{}{}
		}
	}

	final := resolveCollisions(planned, untouched, s.cfg.Sanitize.MaxLength)

	originals := make([]string, 0, len(final))
	for name := range final {
		originals = append(originals, name)
	}
	sort.Strings(originals)

	for _, original := range originals {
		finalName := final[original]
		destination := filepath.Join(dir, finalName)

		issues := issuesByName[original]
		if finalName != planned[original] {
			issues = append(issues, fmt.Sprintf("Name collision resolved; final name is %q", finalName))
		}

		if err := validateUnderRoot(destination, plan.Root); err != nil {
			return err
		}

		plan.Actions = append(plan.Actions, RenameAction{
			Source:       filepath.Join(dir, original),
			Destination:  destination,
			Kind:         kinds[original],
			OriginalName: original,
			FinalName:    finalName,
			Issues:       issues,
			NeedsRename:  true,
		})
		plan.RenamesNeeded++

		s.checkPathLength(destination, plan)
	}

	// Long paths are a problem even for entries that keep their name.
	untouchedNames := make([]string, 0, len(untouched))
	for name := range untouched {
		untouchedNames = append(untouchedNames, name)
	}
	sort.Strings(untouchedNames)
	for _, name := range untouchedNames {
		s.checkPathLength(filepath.Join(dir, name), plan)
	}

	return nil
}

// checkPathLength appends a warning when path exceeds the Windows MAX_PATH
// ceiling.
func (s *Scanner) checkPathLength(path string, plan *RenamePlan) {
	if n := utf8.RuneCountInString(path); n > sanitize.WindowsMaxPath {
		plan.Warnings = append(plan.Warnings,
			fmt.Sprintf("Path length %d exceeds Windows MAX_PATH (%d): %s", n, sanitize.WindowsMaxPath, path))
	}
}

// classify maps a directory entry to its EntryKind.
func classify(entry os.DirEntry) EntryKind {
	switch {
	case entry.Type()&os.ModeSymlink != 0:
		return KindSymlink
	case entry.IsDir():
		return KindDirectory
	default:
		return KindFile
	}
}
