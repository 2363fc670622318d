package cli

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/safename/internal/engine"
	"github.com/danieljhkim/safename/internal/planner"
)

// printPlanSummary renders a rename plan for human consumption. In verbose
// mode the per-entry issues and skipped symlink paths are included.
func printPlanSummary(plan *planner.RenamePlan, verbose bool) {
	PrintInfo(fmt.Sprintf("Scanned %s under %s",
		PrintCount(plan.TotalScanned, "entry", "entries"), plan.Root))

	if len(plan.SkippedSymlinks) > 0 {
		PrintWarning(fmt.Sprintf("Skipped %s (use --follow-symlinks to process)",
			PrintCount(len(plan.SkippedSymlinks), "symlink", "symlinks")))
		if verbose {
			for _, sym := range plan.SkippedSymlinks {
				PrintDim(fmt.Sprintf("symlink: %s", sym))
			}
		}
	}

	if !plan.HasChanges() {
		printWarnings(plan)
		return
	}

	PrintSection(fmt.Sprintf("Found %s to rename", PrintCount(plan.RenamesNeeded, "entry", "entries")))

	for _, action := range plan.Actions {
		PrintInfo(fmt.Sprintf("  %s %s -> %s", action.Kind.Label(), action.OriginalName, action.FinalName))
		PrintDim(fmt.Sprintf("       in %s", filepath.Dir(action.Source)))
		if verbose {
			PrintList(action.Issues, 4)
		}
	}

	printWarnings(plan)
}

func printWarnings(plan *planner.RenamePlan) {
	if len(plan.Warnings) == 0 {
		return
	}
	fmt.Println()
	PrintWarning(fmt.Sprintf("Warnings (%d):", len(plan.Warnings)))
	for _, warning := range plan.Warnings {
		PrintDim(warning)
	}
}

// printExecuteReport renders the outcome of an executed plan.
func printExecuteReport(result *engine.ExecuteResult) {
	fmt.Println()
	if result.Failed == 0 {
		PrintSuccess(fmt.Sprintf("Done: %s renamed", PrintCount(result.Succeeded, "entry", "entries")))
	} else {
		PrintWarning(fmt.Sprintf("Done: %d renamed, %d failed", result.Succeeded, result.Failed))
		for _, res := range result.Results {
			if !res.Success {
				PrintError(fmt.Sprintf("%s: %s", res.Action.Source, res.ErrorMessage))
			}
		}
	}
	if result.LogPath != "" {
		PrintLabelValue("Log written to", result.LogPath)
	}
}
