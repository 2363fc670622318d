// Package tui implements the interactive dashboard: scan a tree, browse the
// planned renames with their reasons, and apply the plan after confirmation.
package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/danieljhkim/safename/internal/engine"
	"github.com/danieljhkim/safename/internal/planner"
	"github.com/danieljhkim/safename/internal/sanitize"
)

// Config carries everything the dashboard needs to scan and execute.
type Config struct {
	Root           string
	Options        sanitize.Options
	FollowSymlinks bool
	LogFile        string
	Engine         *engine.Engine
}

// screen identifies the dashboard's current state.
type screen int

const (
	screenScanning screen = iota
	screenBrowsing
	screenConfirming
	screenExecuting
	screenDone
	screenError
)

// Messages delivered by background commands.
type (
	scanFinishedMsg struct {
		plan *planner.RenamePlan
		err  error
	}
	execFinishedMsg struct {
		result *engine.ExecuteResult
		err    error
	}
)

// Model is the bubbletea model for the rename dashboard.
type Model struct {
	cfg Config

	screen  screen
	spinner spinner.Model
	table   table.Model

	plan   *planner.RenamePlan
	result *engine.ExecuteResult
	err    error

	screenWidth  int
	screenHeight int
}

// NewModel creates the initial dashboard model.
func NewModel(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(colorAccent))

	return Model{
		cfg:     cfg,
		screen:  screenScanning,
		spinner: sp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.scanCmd())
}

// scanCmd runs the scan on a background goroutine so the UI stays
// responsive.
func (m Model) scanCmd() tea.Cmd {
	cfg := m.cfg
	return func() tea.Msg {
		plan, err := cfg.Engine.Scan(&engine.ScanRequest{
			Root:           cfg.Root,
			Options:        cfg.Options,
			FollowSymlinks: cfg.FollowSymlinks,
		})
		return scanFinishedMsg{plan: plan, err: err}
	}
}

// execCmd executes the plan on a background goroutine.
func (m Model) execCmd() tea.Cmd {
	cfg := m.cfg
	plan := m.plan
	return func() tea.Msg {
		logPath := cfg.LogFile
		if logPath == "" {
			logPath = cfg.Engine.DefaultLogPath()
		}
		result, err := cfg.Engine.Execute(&engine.ExecuteRequest{Plan: plan, LogPath: logPath})
		return execFinishedMsg{result: result, err: err}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screenWidth = msg.Width
		m.screenHeight = msg.Height
		if m.plan != nil {
			m.layoutTable()
		}
		return m, nil

	case scanFinishedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.screen = screenError
			return m, nil
		}
		m.plan = msg.plan
		m.screen = screenBrowsing
		m.buildTable()
		return m, nil

	case execFinishedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.screen = screenError
			return m, nil
		}
		m.result = msg.result
		m.screen = screenDone
		return m, nil

	case spinner.TickMsg:
		if m.screen == screenScanning || m.screen == screenExecuting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.screen {
	case screenBrowsing:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "r", "enter":
			if m.plan != nil && m.plan.HasChanges() {
				m.screen = screenConfirming
			}
			return m, nil
		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case screenConfirming:
		switch msg.String() {
		case "y", "Y":
			m.screen = screenExecuting
			return m, tea.Batch(m.spinner.Tick, m.execCmd())
		case "n", "N", "esc", "q":
			m.screen = screenBrowsing
			return m, nil
		}
		return m, nil

	case screenDone, screenError:
		switch msg.String() {
		case "q", "esc", "enter":
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// buildTable populates the action table from the plan.
func (m *Model) buildTable() {
	rows := make([]table.Row, 0, len(m.plan.Actions))
	for _, action := range m.plan.Actions {
		dir, err := filepath.Rel(m.plan.Root, filepath.Dir(action.Source))
		if err != nil || dir == "." {
			dir = "/"
		}
		rows = append(rows, table.Row{
			action.Kind.Label(),
			action.OriginalName,
			action.FinalName,
			dir,
		})
	}

	t := table.New(
		table.WithColumns(m.tableColumns()),
		table.WithRows(rows),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(colorBorder)).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color(colorSelectedFg)).
		Background(lipgloss.Color(colorSelectedBg)).
		Bold(false)
	t.SetStyles(styles)

	m.table = t
	m.layoutTable()
}

// layoutTable sizes the table to the current terminal dimensions.
func (m *Model) layoutTable() {
	width := m.tableWidth()
	height := m.screenHeight - 8
	if height < 4 {
		height = 4
	}
	m.table.SetColumns(m.tableColumns())
	m.table.SetWidth(width)
	m.table.SetHeight(height)
}

func (m *Model) tableWidth() int {
	width := m.screenWidth * 3 / 5
	if width < 48 {
		width = 48
	}
	return width
}

func (m *Model) tableColumns() []table.Column {
	width := m.tableWidth()
	nameWidth := (width - 14) / 3
	if nameWidth < 10 {
		nameWidth = 10
	}
	return []table.Column{
		{Title: "Kind", Width: 6},
		{Title: "Current", Width: nameWidth},
		{Title: "New", Width: nameWidth},
		{Title: "In", Width: nameWidth},
	}
}

// selectedAction returns the plan action behind the table cursor.
func (m Model) selectedAction() *planner.RenameAction {
	if m.plan == nil || len(m.plan.Actions) == 0 {
		return nil
	}
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.plan.Actions) {
		return nil
	}
	return &m.plan.Actions[idx]
}

// Run opens the dashboard and blocks until the user quits.
func Run(cfg Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
