package cli

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/danieljhkim/safename/internal/clock"
	"github.com/danieljhkim/safename/internal/engine"
	"github.com/danieljhkim/safename/internal/fsops"
	"github.com/danieljhkim/safename/internal/sanitize"
)

// ErrCancelled indicates the user declined the confirmation prompt.
// The main entry point maps it to exit code 2.
var ErrCancelled = errors.New("cancelled")

// newEngine creates an engine with real implementations of all dependencies.
func newEngine() *engine.Engine {
	return engine.New(fsops.NewRealFS(), &clock.RealClock{})
}

// buildOptions turns the shared command-line flags into sanitizer options.
// An empty replaceChar selects Unicode-substitution mode; anything else must
// be a single non-restricted character and selects override mode.
func buildOptions(replaceChar string, maxLength int) (sanitize.Options, error) {
	opts := sanitize.DefaultOptions()
	opts.MaxLength = maxLength

	if replaceChar != "" {
		r, err := sanitize.ParseReplaceChar(replaceChar)
		if err != nil {
			return sanitize.Options{}, err
		}
		opts.Mode = sanitize.ModeReplace
		opts.ReplaceChar = r
	}

	if err := opts.Validate(); err != nil {
		return sanitize.Options{}, err
	}
	return opts, nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
