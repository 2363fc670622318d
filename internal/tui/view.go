package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	colorAccent     = "39"
	colorBorder     = "240"
	colorTitleFg    = "15"
	colorTitleBg    = "33"
	colorDim        = "243"
	colorWarn       = "214"
	colorGood       = "42"
	colorBad        = "203"
	colorSelectedFg = "229"
	colorSelectedBg = "57"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorTitleFg)).
			Background(lipgloss.Color(colorTitleBg)).
			Bold(true).
			Padding(0, 1)

	detailStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color(colorBorder)).
			PaddingLeft(2)

	detailHeaderStyle = lipgloss.NewStyle().Bold(true)

	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorDim))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorWarn))
	goodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGood))
	badStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(colorBad)).Bold(true)

	confirmStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorAccent)).
			Padding(1, 3)
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("safename · portable rename dashboard"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("root: " + m.cfg.Root))
	b.WriteString("\n\n")

	switch m.screen {
	case screenScanning:
		fmt.Fprintf(&b, "%s Scanning...\n", m.spinner.View())

	case screenBrowsing:
		b.WriteString(m.viewPlan())
		b.WriteString("\n")
		b.WriteString(m.viewStatusLine())
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("↑/↓ select · r rename all · q quit"))

	case screenConfirming:
		b.WriteString(m.viewPlan())
		b.WriteString("\n")
		prompt := fmt.Sprintf("Rename %d entries? (y/n)", m.plan.RenamesNeeded)
		b.WriteString(confirmStyle.Render(prompt))

	case screenExecuting:
		fmt.Fprintf(&b, "%s Renaming %d entries...\n", m.spinner.View(), m.plan.RenamesNeeded)

	case screenDone:
		b.WriteString(m.viewResult())
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("q quit"))

	case screenError:
		b.WriteString(badStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("q quit"))
	}

	return b.String()
}

// viewPlan renders the action table beside the detail panel for the
// selected entry.
func (m Model) viewPlan() string {
	if m.plan == nil {
		return ""
	}
	if !m.plan.HasChanges() {
		return goodStyle.Render("No renames needed. All names are already portable.")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.table.View(), m.viewDetail())
}

// viewDetail renders the issues explaining why the selected entry is being
// renamed.
func (m Model) viewDetail() string {
	action := m.selectedAction()
	if action == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(detailHeaderStyle.Render(action.OriginalName))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("→ " + action.FinalName))
	b.WriteString("\n\n")
	for _, issue := range action.Issues {
		b.WriteString("• " + issue + "\n")
	}

	width := m.screenWidth - m.tableWidth() - 6
	if width < 20 {
		width = 20
	}
	return detailStyle.Width(width).Render(b.String())
}

// viewStatusLine summarizes scan counts, skipped symlinks, and warnings.
func (m Model) viewStatusLine() string {
	parts := []string{
		fmt.Sprintf("%d scanned", m.plan.TotalScanned),
		fmt.Sprintf("%d to rename", m.plan.RenamesNeeded),
	}
	if n := len(m.plan.SkippedSymlinks); n > 0 {
		parts = append(parts, warnStyle.Render(fmt.Sprintf("%d symlinks skipped", n)))
	}
	if n := len(m.plan.Warnings); n > 0 {
		parts = append(parts, warnStyle.Render(fmt.Sprintf("%d long-path warnings", n)))
	}
	return dimStyle.Render(strings.Join(parts, " · "))
}

// viewResult renders the post-execution summary.
func (m Model) viewResult() string {
	var b strings.Builder
	if m.result.Failed == 0 {
		b.WriteString(goodStyle.Render(fmt.Sprintf("Done: %d renamed", m.result.Succeeded)))
	} else {
		b.WriteString(warnStyle.Render(fmt.Sprintf("Done: %d renamed, %d failed", m.result.Succeeded, m.result.Failed)))
		b.WriteString("\n\n")
		for _, res := range m.result.Results {
			if !res.Success {
				b.WriteString(badStyle.Render("✗ ") + res.Action.Source + "\n")
				b.WriteString(dimStyle.Render("  "+res.ErrorMessage) + "\n")
			}
		}
	}
	if m.result.LogPath != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("log: " + m.result.LogPath))
	}
	return b.String()
}
