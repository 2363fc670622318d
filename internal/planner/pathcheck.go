package planner

import (
	"fmt"
	"path/filepath"
	"strings"
)

// validateUnderRoot verifies that path is nested under root. It works on
// cleaned paths rather than string prefixes, so a sibling directory that
// merely shares a textual prefix with root (e.g. /tmp/abc vs /tmp/abc-other)
// is rejected.
func validateUnderRoot(path, root string) error {
	path = filepath.Clean(path)
	root = filepath.Clean(root)

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return fmt.Errorf("%w: %s is not under %s: %v", ErrOutsideRoot, path, root, err)
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s is not under %s", ErrOutsideRoot, path, root)
	}
	return nil
}
