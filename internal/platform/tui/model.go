package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/pong"
	"github.com/vovakirdan/neon-pong/internal/sfx"
)

// Rows under the field: status line and help bar.
const chromeRows = 2

// GameModel plays one match in the terminal. The mouse moves the player
// paddle; arrow keys nudge it by half a paddle.
type GameModel struct {
	match    *pong.Match
	screen   *core.Screen
	canvas   *CellCanvas
	painter  *Painter
	keys     KeyMap
	help     help.Model
	sound    sfx.Player
	logger   *log.Logger
	tickRate int
	gen      int

	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game view for a started match. gen tags its
// tick chain.
func NewGameModel(match *pong.Match, rt core.RuntimeConfig, painter *Painter, sound sfx.Player, logger *log.Logger, gen int) GameModel {
	rt = rt.Normalize()
	if painter == nil {
		painter = NewPainter(nil)
	}
	if sound == nil {
		sound = sfx.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := match.Config()
	screen := core.NewScreen(rt.ScreenW, core.Max(rt.ScreenH-chromeRows, 1))
	h := help.New()
	h.Width = rt.ScreenW

	return GameModel{
		match:    match,
		screen:   screen,
		canvas:   NewCellCanvas(screen, cfg.Field.Width, cfg.Field.Height),
		painter:  painter,
		keys:     DefaultKeyMap(),
		help:     h,
		sound:    sound,
		logger:   logger,
		tickRate: rt.TickRate,
		gen:      gen,
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.tickRate, m.gen)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.match.Abandon()
		m.backToMenu = true
	case core.ActionRestart:
		if m.match.Phase() == pong.PhaseGameOver {
			if err := m.match.Restart(); err != nil {
				m.logger.Debug("Restart rejected", "error", err)
			}
		}
	case core.ActionUp:
		m.nudge(-1)
	case core.ActionDown:
		m.nudge(1)
	}
	return m, nil
}

func (m GameModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return m, nil
	}
	_, y := m.canvas.Viewport().ToField(msg.X, msg.Y)
	m.match.SetPointer(y)
	return m, nil
}

// nudge moves the pointer half a paddle up (dir < 0) or down.
func (m GameModel) nudge(dir float64) {
	snap := m.match.Snapshot()
	center := snap.PlayerY + snap.PaddleH/2
	m.match.SetPointer(center + dir*snap.PaddleH/2)
}

func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.backToMenu || m.quitting {
		return m, nil
	}
	events := m.match.Step()
	sfx.Dispatch(events, m.sound, m.logger)
	return m, tickCmd(m.tickRate, m.gen)
}

func (m *GameModel) resize(width, height int) {
	m.screen.Resize(width, core.Max(height-chromeRows, 1))
	m.help.Width = width
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	pong.Draw(m.match.Snapshot(), m.canvas)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".neonpong", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("pong_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, the game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the field, a status line and the help bar.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	snap := m.match.Snapshot()
	pong.Draw(snap, m.canvas)

	status := fmt.Sprintf("%s  %d : %d  first to %d", snap.Difficulty, snap.PlayerScore, snap.AIScore, snap.TargetScore)
	if snap.Phase == pong.PhaseGameOver {
		status += "  press r to play again"
	}

	return m.painter.Render(m.screen) + "\n" +
		m.painter.Style(core.ColorDim).Render(status) + "\n" +
		m.help.ShortHelpView(m.keys.GameHelp())
}

// Match returns the match being played.
func (m GameModel) Match() *pong.Match {
	return m.match
}

// IsQuitting reports whether the user asked to exit.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user left the match.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}
