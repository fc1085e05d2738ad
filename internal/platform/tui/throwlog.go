package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paperplane/internal/registry"
	"github.com/vovakirdan/paperplane/internal/storage"
)

// Throw log layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show game list sidebar
	sidebarWidth       = 26  // Width of game list sidebar
	maxThrows          = 100 // Max throws to load
	tableWidth         = 56  // Sum of column widths plus cell padding
)

// ThrowLogKeyMap defines the key bindings for the throw log.
type ThrowLogKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ThrowLogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ThrowLogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultThrowLogKeyMap returns default key bindings.
func DefaultThrowLogKeyMap() ThrowLogKeyMap {
	return ThrowLogKeyMap{
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
			key.WithHelp("left/h", "prev variant"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next variant"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next variant"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ThrowLogModel is the Bubble Tea model for the session throw log.
type ThrowLogModel struct {
	games       []registry.GameInfo // Registered variants
	gameCursor  int                 // Currently selected variant
	store       *storage.Store
	throws      []storage.Throw
	summary     storage.Summary
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ThrowLogKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewThrowLogModel creates a throw log opened on gameID.
// An unknown or empty gameID opens the first variant.
func NewThrowLogModel(store *storage.Store, width, height int, gameID string) ThrowLogModel {
	h := help.New()
	h.ShowAll = false

	m := ThrowLogModel{
		games:       registry.List(),
		store:       store,
		keys:        DefaultThrowLogKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	for i, g := range m.games {
		if g.ID == gameID {
			m.gameCursor = i
		}
	}

	m.table = m.createTable()
	if len(m.games) > 0 {
		m.loadThrows(m.games[m.gameCursor].ID)
	}

	return m
}

// createTable creates a new table with appropriate columns.
func (m *ThrowLogModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Outcome", Width: 8},
		{Title: "Award", Width: 6},
		{Title: "Distance", Width: 9},
		{Title: "Frames", Width: 7},
		{Title: "Time", Width: 9},
	}

	height := m.height - 10 // Title, summary, help and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(tableWidth),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadThrows loads the log and summary for the given variant.
func (m *ThrowLogModel) loadThrows(gameID string) {
	m.throws, m.summary, m.loadErr = nil, storage.Summary{GameID: gameID}, nil

	if m.store != nil {
		throws, err := m.store.RecentThrows(gameID, maxThrows)
		if err != nil {
			m.loadErr = err
		} else {
			m.throws = throws
		}

		if sum, err := m.store.Summarize(gameID); err == nil {
			m.summary = sum
		} else if m.loadErr == nil {
			m.loadErr = err
		}
	}

	m.updateTableRows()
}

// updateTableRows updates the table with current throws.
func (m *ThrowLogModel) updateTableRows() {
	rows := make([]table.Row, len(m.throws))
	for i, t := range m.throws {
		award := "-"
		if t.Award > 0 {
			award = fmt.Sprintf("+%d", t.Award)
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", len(m.throws)-i),
			string(t.Outcome),
			award,
			fmt.Sprintf("%.1f m", t.Distance),
			fmt.Sprintf("%d", t.Frames),
			t.CreatedAt.Local().Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the throw log model.
func (m ThrowLogModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the throw log.
func (m ThrowLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if next.quitting || next.goingBack {
		return next, tea.Quit
	}
	return next, cmd
}

// update is the embeddable form of Update: it never quits the program.
func (m ThrowLogModel) update(msg tea.Msg) (ThrowLogModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextGame), key.Matches(msg, m.keys.Right):
			m.cycle(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevGame), key.Matches(msg, m.keys.Left):
			m.cycle(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// cycle moves the variant cursor by delta, wrapping around.
func (m *ThrowLogModel) cycle(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + delta + len(m.games)) % len(m.games)
	m.loadThrows(m.games[m.gameCursor].ID)
}

// View renders the throw log.
func (m ThrowLogModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "THROW LOG"
	if len(m.games) > 0 {
		title = fmt.Sprintf("THROW LOG - %s", m.games[m.gameCursor].Title)
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	summaryStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(summaryStyle.Render(centerText(m.summaryLine(), m.width)))
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

// summaryLine formats the aggregate statistics of the current variant.
func (m ThrowLogModel) summaryLine() string {
	s := m.summary
	return fmt.Sprintf("Throws %d · Hits %d · Resets %d · Awarded %d · Farthest %.1f m",
		s.Throws, s.Hits, s.Resets, s.TotalAward, s.BestDistance)
}

// renderWideLayout renders the log with a sidebar for variant selection.
func (m ThrowLogModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Variants\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.games {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.gameCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}

		name := []rune(g.Title)
		maxLen := sidebarWidth - 6
		if len(name) > maxLen {
			name = append(name[:maxLen-1], '.')
		}
		sidebar.WriteString(style.Render(cursor + string(name)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()),
		"  ",
		tableStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout renders the current variant above the table.
func (m ThrowLogModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.games) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.games[m.gameCursor].Title), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ThrowLogModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render("Throw log unavailable:\n" + m.loadErr.Error())
	}
	if len(m.throws) == 0 {
		return emptyStyle.Render("No throws yet this session.\nDrag the plane and let go!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back.
func (m ThrowLogModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ThrowLogModel) IsQuitting() bool {
	return m.quitting
}

// RunThrowLog runs the throw log screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunThrowLog(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewThrowLogModel(store, width, height, "")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ThrowLogModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
