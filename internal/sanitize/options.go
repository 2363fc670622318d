package sanitize

import (
	"fmt"
	"unicode/utf8"
)

// Mode selects how restricted characters are substituted.
type Mode int

const (
	// ModeUnicode replaces each restricted character with a distinct
	// fullwidth or control-picture analogue. This is the default.
	ModeUnicode Mode = iota

	// ModeReplace collapses every restricted character to a single
	// caller-supplied substitute character.
	ModeReplace
)

const (
	// DefaultMaxNameLength is the default name-length limit in characters.
	DefaultMaxNameLength = 255

	// WindowsMaxPath is the legacy Windows MAX_PATH ceiling.
	WindowsMaxPath = 260
)

// Options configures the sanitization pipeline.
type Options struct {
	// Mode selects Unicode substitution or single-character replacement.
	Mode Mode

	// ReplaceChar is the substitute character used in ModeReplace.
	// Ignored in ModeUnicode.
	ReplaceChar rune

	// MaxLength is the maximum allowed name length in characters.
	MaxLength int
}

// DefaultOptions returns the default pipeline configuration:
// Unicode substitution with a 255-character limit.
func DefaultOptions() Options {
	return Options{Mode: ModeUnicode, MaxLength: DefaultMaxNameLength}
}

// ParseReplaceChar validates a user-supplied substitute character. It must be
// exactly one character and must not itself be restricted.
func ParseReplaceChar(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("replace character must be exactly one character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if IsRestricted(r) {
		return 0, fmt.Errorf("replace character %q is itself a restricted character", s)
	}
	return r, nil
}

// Validate checks that the options describe a usable configuration.
func (o Options) Validate() error {
	if o.MaxLength <= 0 {
		return fmt.Errorf("max length must be positive, got %d", o.MaxLength)
	}
	if o.Mode == ModeReplace {
		if o.ReplaceChar == 0 {
			return fmt.Errorf("replace mode requires a substitute character")
		}
		if IsRestricted(o.ReplaceChar) {
			return fmt.Errorf("replace character %q is itself a restricted character", string(o.ReplaceChar))
		}
	}
	return nil
}
