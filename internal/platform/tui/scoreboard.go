package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/leaderboard"
	"github.com/vovakirdan/neon-pong/internal/storage"
)

// StatsSource reports per-difficulty match statistics.
type StatsSource interface {
	StatsByDifficulty() (map[string]storage.Stats, error)
}

// ScoreboardModel shows the leaderboard and, when a stats source is
// available, match statistics per difficulty.
type ScoreboardModel struct {
	board   *leaderboard.Board
	stats   StatsSource
	entries []leaderboard.Entry
	summary []string
	size    int
	table   table.Model
	help    help.Model
	keys    KeyMap
	painter *Painter
	width   int
	height  int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel loads the top entries of board, showing at most size
// of them (leaderboard.DefaultTop when size is not positive). Both board and
// stats may be nil.
func NewScoreboardModel(board *leaderboard.Board, stats StatsSource, size int, painter *Painter, width, height int) ScoreboardModel {
	if painter == nil {
		painter = NewPainter(nil)
	}
	h := help.New()
	h.Width = width

	m := ScoreboardModel{
		board:   board,
		stats:   stats,
		size:    leaderboard.Size(size),
		help:    h,
		keys:    DefaultKeyMap(),
		painter: painter,
		width:   width,
		height:  height,
	}
	m.load()
	m.table = m.createTable()
	return m
}

func (m *ScoreboardModel) load() {
	if m.board != nil {
		m.entries = m.board.Top(m.size)
	}
	m.summary = nil
	if m.stats == nil {
		return
	}
	byDiff, err := m.stats.StatsByDifficulty()
	if err != nil {
		m.summary = []string{"stats unavailable: " + err.Error()}
		return
	}
	names := make([]string, 0, len(byDiff))
	for name := range byDiff {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s := byDiff[name]
		m.summary = append(m.summary, fmt.Sprintf("%-8s played %3d  won %3d  (%3.0f%%)  best margin %d",
			name, s.Played, s.Wins, s.WinRate()*100, s.BestMargin))
	}
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Name", Width: 20},
		{Title: "Difficulty", Width: 12},
		{Title: "Score", Width: 7},
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{fmt.Sprintf("#%d", i+1), e.Name, e.Difficulty, fmt.Sprintf("%d", e.Score)}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(core.Max(len(rows)+1, 2)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(string(core.ColorBackground))).
		Background(lipgloss.Color(string(core.ColorCyan))).
		Bold(false)
	t.SetStyles(s)
	return t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	title := m.painter.Style(core.ColorYellow).Bold(true).Render("LEADERBOARD")
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(string(core.ColorCyan))).
		Padding(0, 1)

	if len(m.entries) == 0 {
		empty := m.painter.Style(core.ColorDim).Italic(true).Render("No wins recorded yet.\nBeat the AI to get on the board!")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(empty)))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, boxStyle.Render(m.table.View())))
	}
	b.WriteString("\n")

	if len(m.summary) > 0 {
		b.WriteString("\n")
		for _, line := range m.summary {
			b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.painter.Style(core.ColorWhite).Render(line)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.painter.Style(core.ColorDim).Render(m.help.ShortHelpView(m.keys.ScoresHelp())))
	return b.String()
}

// Entries returns the entries shown, best first.
func (m ScoreboardModel) Entries() []leaderboard.Entry {
	return m.entries
}

// Summary returns the formatted statistics lines.
func (m ScoreboardModel) Summary() []string {
	return m.summary
}

// IsGoingBack reports whether the user wants the menu again.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user wants to exit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
