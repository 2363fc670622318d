package planner

import (
	"fmt"
	"sort"
)

// resolveCollisions disambiguates desired names within a single directory.
//
// planned maps original name to desired sanitized name for entries that need
// renaming; untouched holds the names of siblings that already pass and
// therefore occupy name slots. Candidates are processed in sorted order by
// original name so results are reproducible across runs.
func resolveCollisions(planned map[string]string, untouched map[string]struct{}, maxLength int) map[string]string {
	taken := make(map[string]struct{}, len(planned)+len(untouched))
	for name := range untouched {
		taken[name] = struct{}{}
	}

	originals := make([]string, 0, len(planned))
	for name := range planned {
		originals = append(originals, name)
	}
	sort.Strings(originals)

	result := make(map[string]string, len(planned))
	for _, original := range originals {
		final := findAvailableName(planned[original], taken, maxLength)
		taken[final] = struct{}{}
		result[original] = final
	}
	return result
}

// findAvailableName returns desired if unclaimed, otherwise appends a numeric
// suffix "_1", "_2", ... immediately before the extension until an unused
// name is found. If the suffixed name would exceed maxLength, the stem is
// truncated further to make room; if even the extension plus suffix alone
// exceed the limit, the suffixed candidate is hard-truncated.
func findAvailableName(desired string, taken map[string]struct{}, maxLength int) string {
	if _, ok := taken[desired]; !ok {
		return desired
	}

	runes := []rune(desired)
	dotIdx := lastDot(runes)

	var stem, ext []rune
	if dotIdx <= 0 {
		stem = runes
	} else {
		stem = runes[:dotIdx]
		ext = runes[dotIdx:]
	}

	for counter := 1; ; counter++ {
		suffix := []rune(fmt.Sprintf("_%d", counter))

		var candidate string
		maxStem := maxLength - len(ext) - len(suffix)
		switch {
		case maxStem < 1:
			// Extension plus suffix alone exceed the limit.
			hard := append(append([]rune{}, stem...), suffix...)
			if len(hard) > maxLength {
				hard = hard[:maxLength]
			}
			candidate = string(hard)
		case len(stem)+len(suffix)+len(ext) > maxLength:
			candidate = string(stem[:maxStem]) + string(suffix) + string(ext)
		default:
			candidate = string(stem) + string(suffix) + string(ext)
		}

		// Hard truncation can cut off the counter digits, making every
		// further candidate identical. Once the counter has outgrown the
		// taken set, the length cap and uniqueness cannot both hold; drop
		// the cap so the loop terminates.
		if counter > len(taken)+1 {
			candidate = string(stem) + string(suffix) + string(ext)
		}

		if _, ok := taken[candidate]; !ok {
			return candidate
		}
	}
}

// lastDot returns the index of the last '.' in runes, or -1.
func lastDot(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == '.' {
			return i
		}
	}
	return -1
}
