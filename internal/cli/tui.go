package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/safename/internal/sanitize"
	"github.com/danieljhkim/safename/internal/tui"
)

var (
	tuiReplaceChar    string
	tuiMaxLength      int
	tuiFollowSymlinks bool
	tuiLogFile        string
)

var tuiCmd = &cobra.Command{
	Use:   "tui <path>",
	Short: "Browse and apply renames in an interactive dashboard",
	Long: `Open an interactive terminal dashboard that scans the given directory,
lists the planned renames with their reasons, and applies them after an
in-dashboard confirmation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(tuiReplaceChar, tuiMaxLength)
		if err != nil {
			return err
		}

		return tui.Run(tui.Config{
			Root:           args[0],
			Options:        opts,
			FollowSymlinks: tuiFollowSymlinks,
			LogFile:        tuiLogFile,
			Engine:         newEngine(),
		})
	},
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiReplaceChar, "replace-char", "r", "",
		"Replace restricted characters with this single character instead of Unicode analogues")
	tuiCmd.Flags().IntVarP(&tuiMaxLength, "max-length", "m", sanitize.DefaultMaxNameLength,
		"Maximum name length before truncation")
	tuiCmd.Flags().BoolVar(&tuiFollowSymlinks, "follow-symlinks", false,
		"Rename symlinks too instead of skipping them")
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "",
		"Custom path for the JSON rename log")
}
