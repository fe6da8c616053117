package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// MenuChoice is what the user picked in the menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceScores
	ChoiceQuit
)

// MenuItem is one line of the menu.
type MenuItem struct {
	Title      string
	Choice     MenuChoice
	Difficulty string // Set for ChoicePlay
}

// MenuModel is the difficulty picker shown before each match.
type MenuModel struct {
	items   []MenuItem
	cursor  int
	width   int
	height  int
	player  string
	notice  string
	keys    KeyMap
	help    help.Model
	painter *Painter
	chosen  *MenuItem
}

// NewMenuModel creates a menu listing difficulties, the leaderboard and quit.
func NewMenuModel(difficulties []string, player string, painter *Painter, width, height int) MenuModel {
	if painter == nil {
		painter = NewPainter(nil)
	}
	items := make([]MenuItem, 0, len(difficulties)+2)
	for _, d := range difficulties {
		items = append(items, MenuItem{Title: "Play " + d, Choice: ChoicePlay, Difficulty: d})
	}
	items = append(items,
		MenuItem{Title: "Leaderboard", Choice: ChoiceScores},
		MenuItem{Title: "Quit", Choice: ChoiceQuit},
	)

	h := help.New()
	h.Width = width

	return MenuModel{
		items:   items,
		width:   width,
		height:  height,
		player:  player,
		keys:    DefaultKeyMap(),
		help:    h,
		painter: painter,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.chosen = &MenuItem{Choice: ChoiceQuit}
	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case core.ActionConfirm:
		item := m.items[m.cursor]
		m.chosen = &item
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	title := m.painter.Style(core.ColorCyan).Bold(true).Render("N E O N   P O N G")
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, "Player: "+m.player))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		style := m.painter.Style(core.ColorWhite)
		if i == m.cursor {
			line = "> " + item.Title
			style = m.painter.Style(core.ColorPink).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.painter.Style(core.ColorYellow).Render(m.notice)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.help.ShortHelpView(m.keys.MenuHelp())))
	b.WriteString("\n")
	return b.String()
}

// Chosen returns the picked item, if any.
func (m MenuModel) Chosen() (MenuItem, bool) {
	if m.chosen == nil {
		return MenuItem{}, false
	}
	return *m.chosen, true
}

// Reset clears the choice so the menu can be shown again. notice is shown
// under the items until the next reset.
func (m MenuModel) Reset(notice string) MenuModel {
	m.chosen = nil
	m.notice = notice
	return m
}

// Cursor returns the highlighted index.
func (m MenuModel) Cursor() int {
	return m.cursor
}
