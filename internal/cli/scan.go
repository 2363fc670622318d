package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/safename/internal/engine"
	"github.com/danieljhkim/safename/internal/sanitize"
)

var (
	scanReplaceChar    string
	scanMaxLength      int
	scanFollowSymlinks bool
	scanVerbose        bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <path>",
	Short: "Preview the renames needed to make a tree portable",
	Long: `Scan a directory tree and show which files and directories would be renamed,
without touching the filesystem. Use 'safename rename' to apply the changes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(scanReplaceChar, scanMaxLength)
		if err != nil {
			return err
		}

		eng := newEngine()
		plan, err := eng.Scan(&engine.ScanRequest{
			Root:           args[0],
			Options:        opts,
			FollowSymlinks: scanFollowSymlinks,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(plan)
		}

		printPlanSummary(plan, scanVerbose)
		if !plan.HasChanges() {
			PrintSuccess("No renames needed. All names are already portable.")
		} else {
			PrintInfo("\nDry-run only. Use \"safename rename\" to apply changes.")
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanReplaceChar, "replace-char", "r", "",
		"Replace restricted characters with this single character instead of Unicode analogues")
	scanCmd.Flags().IntVarP(&scanMaxLength, "max-length", "m", sanitize.DefaultMaxNameLength,
		"Maximum name length before truncation")
	scanCmd.Flags().BoolVar(&scanFollowSymlinks, "follow-symlinks", false,
		"Rename symlinks too instead of skipping them")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false,
		"Show the issues found for each entry")
}
