// Package sanitize transforms file and directory names so they are safe to
// use on Windows, macOS, and UNIX.
//
// The package contains no filesystem access - only pure, total string
// transformations. By default each restricted character is replaced with its
// Unicode visual analogue (fullwidth forms for Windows-forbidden punctuation,
// Control Pictures for control characters), inspired by rclone's encoding
// system. An optional single-character override replaces all restricted
// characters with one substitute instead.
//
// The pipeline runs four stages in fixed order:
//  1. Replace forbidden and control characters
//  2. Handle trailing dots and spaces (Windows silently strips these)
//  3. Prefix Windows reserved device names (CON, PRN, AUX, NUL, COM0-9, LPT0-9)
//  4. Truncate names exceeding the maximum length, preserving the extension
package sanitize

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// reservedNameRE matches Windows reserved device names. The check is
// case-insensitive and applies to the stem (the part before the first dot).
var reservedNameRE = regexp.MustCompile(`^(?i:CON|PRN|AUX|NUL|COM[0-9]|LPT[0-9])$`)

// Sanitize runs the full pipeline on a single file or directory name and
// returns the sanitized name together with human-readable descriptions of
// every change made. The function is total: it never fails, including for
// the empty string and names consisting entirely of restricted characters.
func Sanitize(name string, opts Options) (string, []string) {
	var all []string

	name, issues := replaceRestricted(name, opts)
	all = append(all, issues...)

	name, issues = handleTrailing(name, opts)
	all = append(all, issues...)

	// Runs after character substitution on purpose: a name like "CON:x"
	// is no longer reserved once its colon has been substituted, because
	// the stem no longer matches the reserved token exactly.
	name, issues = handleReserved(name, opts)
	all = append(all, issues...)

	name, issues = truncate(name, opts.MaxLength)
	all = append(all, issues...)

	return name, all
}

// IsNameSafe reports whether name requires no sanitization under opts.
func IsNameSafe(name string, opts Options) bool {
	sanitized, _ := Sanitize(name, opts)
	return sanitized == name
}

// replaceRestricted substitutes Windows-forbidden punctuation and ASCII
// control characters. In ModeUnicode each restricted character maps to a
// distinct analogue; in ModeReplace all collapse to the substitute character.
func replaceRestricted(name string, opts Options) (string, []string) {
	foundForbidden := make(map[rune]struct{})
	foundControl := make(map[rune]struct{})

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case isForbidden(r):
			foundForbidden[r] = struct{}{}
		case isControl(r):
			foundControl[r] = struct{}{}
		default:
			b.WriteRune(r)
			continue
		}
		if opts.Mode == ModeReplace {
			b.WriteRune(opts.ReplaceChar)
		} else {
			b.WriteRune(unicodeReplacement(r))
		}
	}

	if len(foundForbidden) == 0 && len(foundControl) == 0 {
		return name, nil
	}

	var parts []string
	if len(foundForbidden) > 0 {
		parts = append(parts, fmt.Sprintf("forbidden characters %s", formatForbidden(foundForbidden)))
	}
	if len(foundControl) > 0 {
		parts = append(parts, fmt.Sprintf("control characters %s", formatControl(foundControl)))
	}
	return b.String(), []string{"Replaced " + strings.Join(parts, ", ")}
}

// handleTrailing deals with the maximal run of trailing dots and spaces.
// In ModeUnicode each trailing character is replaced with its visual
// analogue, preserving length. In ModeReplace the run is stripped; if that
// empties the name, the substitute character is used as a fallback.
func handleTrailing(name string, opts Options) (string, []string) {
	runes := []rune(name)
	start := len(runes)
	for start > 0 && (runes[start-1] == '.' || runes[start-1] == ' ') {
		start--
	}
	if start == len(runes) {
		return name, nil
	}

	trailing := string(runes[start:])
	prefix := string(runes[:start])

	if opts.Mode == ModeReplace {
		issues := []string{fmt.Sprintf("Stripped trailing characters %q", trailing)}
		if prefix == "" {
			issues = append(issues, "Name was empty after stripping; used the substitute character")
			return string(opts.ReplaceChar), issues
		}
		return prefix, issues
	}

	var b strings.Builder
	b.WriteString(prefix)
	for _, r := range runes[start:] {
		if r == '.' {
			b.WriteRune(unicodeDotReplacement)
		} else {
			b.WriteRune(unicodeSpaceReplacement)
		}
	}
	return b.String(), []string{fmt.Sprintf("Replaced trailing characters %q", trailing)}
}

// handleReserved prefixes names whose stem matches a Windows reserved device
// name. The stem is everything before the first dot, so "CON.txt" is reserved
// while "notCON.txt" is not.
func handleReserved(name string, opts Options) (string, []string) {
	stem := name
	if idx := strings.IndexByte(name, '.'); idx != -1 {
		stem = name[:idx]
	}
	if !reservedNameRE.MatchString(stem) {
		return name, nil
	}

	prefix := "_"
	if opts.Mode == ModeReplace {
		prefix = string(opts.ReplaceChar)
	}
	return prefix + name, []string{fmt.Sprintf("Reserved Windows device name %q", stem)}
}

// truncate limits name to maxLength characters, preserving the extension
// (everything from the last dot) when possible. A leading dot with no later
// dot is treated as having no extension. If the extension alone is at or
// beyond the limit, the raw name is truncated instead.
func truncate(name string, maxLength int) (string, []string) {
	runes := []rune(name)
	if len(runes) <= maxLength {
		return name, nil
	}

	issues := []string{fmt.Sprintf("Name length %d exceeds limit %d; truncated", len(runes), maxLength)}

	dotIdx := lastDotIndex(runes)
	if dotIdx <= 0 {
		return string(runes[:maxLength]), issues
	}

	ext := runes[dotIdx:]
	if len(ext) >= maxLength {
		return string(runes[:maxLength]), issues
	}

	maxStem := maxLength - len(ext)
	return string(runes[:maxStem]) + string(ext), issues
}

// lastDotIndex returns the index of the last '.' in runes, or -1.
func lastDotIndex(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == '.' {
			return i
		}
	}
	return -1
}

func formatForbidden(found map[rune]struct{}) string {
	chars := make([]string, 0, len(found))
	for r := range found {
		chars = append(chars, fmt.Sprintf("%q", string(r)))
	}
	sort.Strings(chars)
	return "[" + strings.Join(chars, " ") + "]"
}

func formatControl(found map[rune]struct{}) string {
	codes := make([]string, 0, len(found))
	for r := range found {
		codes = append(codes, fmt.Sprintf("0x%02X", r))
	}
	sort.Strings(codes)
	return "[" + strings.Join(codes, " ") + "]"
}
