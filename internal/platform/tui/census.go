package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-aquarium/internal/storage"
)

// Census browser layout constants
const (
	minWidthForSidebar = 80 // Minimum width to show the run list sidebar
	sidebarWidth       = 28 // Width of the run list sidebar
)

// CensusKeyMap defines the key bindings for the census browser.
type CensusKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Quit    key.Binding
	NextRun key.Binding
	PrevRun key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k CensusKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextRun, k.PrevRun, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k CensusKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextRun, k.PrevRun},
		{k.Quit},
	}
}

// DefaultCensusKeyMap returns default key bindings.
func DefaultCensusKeyMap() CensusKeyMap {
	return CensusKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev run"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next run"),
		),
		NextRun: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next run"),
		),
		PrevRun: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev run"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// CensusModel browses recorded runs and their per-species statistics.
type CensusModel struct {
	runs        []storage.RunInfo
	runCursor   int
	store       *storage.Store
	stats       []storage.SpeciesStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        CensusKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewCensusModel creates a census browser over the store's runs.
func NewCensusModel(store *storage.Store, width, height int) (CensusModel, error) {
	runs, err := store.Runs()
	if err != nil {
		return CensusModel{}, err
	}

	h := help.New()
	h.ShowAll = false

	m := CensusModel{
		runs:        runs,
		store:       store,
		keys:        DefaultCensusKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	if len(m.runs) > 0 {
		m.loadStats(m.runs[0].ID)
	}
	return m, nil
}

// createTable creates a new table with appropriate columns.
func (m *CensusModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Species", Width: 16},
		{Title: "Mean", Width: 8},
		{Title: "StdDev", Width: 8},
		{Title: "Min", Width: 6},
		{Title: "Max", Width: 6},
		{Title: "Last", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("25")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadStats loads the summary of the given run.
func (m *CensusModel) loadStats(runID string) {
	m.stats, m.loadErr = m.store.Summary(runID)
	m.updateTableRows()
}

// updateTableRows updates the table with current statistics.
func (m *CensusModel) updateTableRows() {
	rows := make([]table.Row, len(m.stats))
	for i, st := range m.stats {
		rows[i] = table.Row{
			st.Species,
			fmt.Sprintf("%.1f", st.Mean),
			fmt.Sprintf("%.2f", st.StdDev),
			fmt.Sprintf("%d", st.Min),
			fmt.Sprintf("%d", st.Max),
			fmt.Sprintf("%d", st.Last),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *CensusModel) selectRun(delta int) {
	if len(m.runs) == 0 {
		return
	}
	m.runCursor = (m.runCursor + delta + len(m.runs)) % len(m.runs)
	m.loadStats(m.runs[m.runCursor].ID)
}

// Init initializes the census browser.
func (m CensusModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the census browser.
func (m CensusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextRun), key.Matches(msg, m.keys.Right):
			m.selectRun(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevRun), key.Matches(msg, m.keys.Left):
			m.selectRun(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the census browser.
func (m CensusModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "CENSUS"
	if len(m.runs) > 0 {
		title = fmt.Sprintf("CENSUS - %s", m.runs[m.runCursor].ID)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the browser with a sidebar for run selection.
func (m CensusModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Runs\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, r := range m.runs {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.runCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := fmt.Sprintf("%s %s", r.Host, r.StartedAt.Local().Format("Jan 02 15:04"))
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = name[:maxLen-1] + "."
		}
		sidebar.WriteString(style.Render(cursor + name))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the browser with the current run above the table.
func (m CensusModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.runs) > 0 {
		r := m.runs[m.runCursor]
		line := fmt.Sprintf("< %s, %d samples >", r.Host, r.Samples)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m CensusModel) renderTableContent() string {
	if len(m.stats) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		msg := "No census recorded yet.\nRun the aquarium for a while!"
		if len(m.runs) > 0 && m.loadErr != nil {
			msg = "This run has no samples yet."
		}
		return emptyStyle.Render(msg)
	}

	return m.table.View()
}

// RunCensusBrowser runs the census browser until the user quits.
func RunCensusBrowser(store *storage.Store, width, height int) error {
	model, err := NewCensusModel(store, width, height)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
