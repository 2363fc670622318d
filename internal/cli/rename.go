package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/safename/internal/engine"
	"github.com/danieljhkim/safename/internal/sanitize"
)

var (
	renameReplaceChar    string
	renameMaxLength      int
	renameFollowSymlinks bool
	renameVerbose        bool
	renameYes            bool
	renameLogFile        string
)

var renameCmd = &cobra.Command{
	Use:   "rename <path>",
	Short: "Rename files and directories to portable names",
	Long: `Scan a directory tree, show the planned renames, and apply them after
confirmation. A JSON audit log recording every attempted rename is written
next to the current working directory (override with --log-file).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := buildOptions(renameReplaceChar, renameMaxLength)
		if err != nil {
			return err
		}

		eng := newEngine()
		plan, err := eng.Scan(&engine.ScanRequest{
			Root:           args[0],
			Options:        opts,
			FollowSymlinks: renameFollowSymlinks,
		})
		if err != nil {
			return err
		}

		if !jsonOutput {
			printPlanSummary(plan, renameVerbose)
		}

		if !plan.HasChanges() {
			if jsonOutput {
				return outputJSON(plan)
			}
			PrintSuccess("No renames needed. All names are already portable.")
			return nil
		}

		if !renameYes {
			if !confirm(fmt.Sprintf("Rename %s?", PrintCount(plan.RenamesNeeded, "entry", "entries"))) {
				PrintInfo("Cancelled.")
				return ErrCancelled
			}
		}

		logPath := renameLogFile
		if logPath == "" {
			logPath = eng.DefaultLogPath()
		}

		result, err := eng.Execute(&engine.ExecuteRequest{Plan: plan, LogPath: logPath})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(result)
		}

		printExecuteReport(result)
		if result.Failed > 0 {
			return fmt.Errorf("%s failed", PrintCount(result.Failed, "rename", "renames"))
		}
		return nil
	},
}

// confirm asks a yes/no question on stdin. EOF counts as "no".
func confirm(prompt string) bool {
	fmt.Printf("\n%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println()
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	renameCmd.Flags().StringVarP(&renameReplaceChar, "replace-char", "r", "",
		"Replace restricted characters with this single character instead of Unicode analogues")
	renameCmd.Flags().IntVarP(&renameMaxLength, "max-length", "m", sanitize.DefaultMaxNameLength,
		"Maximum name length before truncation")
	renameCmd.Flags().BoolVar(&renameFollowSymlinks, "follow-symlinks", false,
		"Rename symlinks too instead of skipping them")
	renameCmd.Flags().BoolVarP(&renameVerbose, "verbose", "v", false,
		"Show the issues found for each entry")
	renameCmd.Flags().BoolVarP(&renameYes, "yes", "y", false,
		"Skip the interactive confirmation")
	renameCmd.Flags().StringVar(&renameLogFile, "log-file", "",
		"Custom path for the JSON rename log")
}
