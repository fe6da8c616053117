package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/leaderboard"
	"github.com/vovakirdan/neon-pong/internal/pong"
	"github.com/vovakirdan/neon-pong/internal/sfx"
)

// Deps are the collaborators of a terminal session. Only Config is
// required.
type Deps struct {
	Config   config.PongConfig
	Runtime  core.RuntimeConfig
	Board    *leaderboard.Board
	Results  pong.ResultRecorder
	Stats    StatsSource
	Sound    sfx.Player
	Logger   *log.Logger
	Renderer *lipgloss.Renderer

	// Difficulty skips the menu and starts a match right away when set.
	Difficulty string
}

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
)

// App is the top-level model of a terminal session: menu, match and
// leaderboard screens around one long-lived Match.
type App struct {
	deps    Deps
	painter *Painter
	match   *pong.Match
	screen  screen
	menu    MenuModel
	game    *GameModel
	scores  ScoreboardModel
	gen     int

	quitting bool
}

// NewApp creates the session model.
func NewApp(d Deps) App {
	d.Runtime = d.Runtime.Normalize()
	if d.Runtime.Seed == 0 {
		d.Runtime.Seed = time.Now().UnixNano()
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.Sound == nil {
		d.Sound = sfx.Nop{}
	}

	opts := []pong.Option{
		pong.WithSeed(d.Runtime.Seed),
		pong.WithTickRate(d.Runtime.TickRate),
		pong.WithLogger(d.Logger),
	}
	if d.Board != nil {
		opts = append(opts, pong.WithRecorder(d.Board))
	}
	if d.Results != nil {
		opts = append(opts, pong.WithResults(d.Results))
	}

	painter := NewPainter(d.Renderer)
	a := App{
		deps:    d,
		painter: painter,
		match:   pong.NewMatch(d.Config, opts...),
		menu:    NewMenuModel(d.Config.DifficultyNames(), d.Config.Player.Name, painter, d.Runtime.ScreenW, d.Runtime.ScreenH),
	}
	if d.Difficulty != "" {
		next, _ := a.startMatch(d.Difficulty)
		a = next.(App)
	}
	return a
}

// Init starts the tick loop when a match was started by NewApp.
func (a App) Init() tea.Cmd {
	if a.screen == screenGame && a.game != nil {
		return a.game.Init()
	}
	return nil
}

// Update routes messages to the active screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		a.deps.Runtime.ScreenW = wsm.Width
		a.deps.Runtime.ScreenH = wsm.Height
		// The menu is kept across screens and must know the size when shown again.
		if a.screen != screenMenu {
			next, _ := a.menu.Update(wsm)
			if mm, ok := next.(MenuModel); ok {
				a.menu = mm
			}
		}
	}

	switch a.screen {
	case screenGame:
		return a.updateGame(msg)
	case screenScores:
		return a.updateScores(msg)
	default:
		return a.updateMenu(msg)
	}
}

func (a App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		a.menu = mm
	}

	item, ok := a.menu.Chosen()
	if !ok {
		return a, cmd
	}

	switch item.Choice {
	case ChoiceQuit:
		a.quitting = true
		return a, tea.Quit
	case ChoiceScores:
		a.scores = NewScoreboardModel(a.deps.Board, a.deps.Stats, a.deps.Config.Gameplay.LeaderboardTop, a.painter, a.deps.Runtime.ScreenW, a.deps.Runtime.ScreenH)
		a.screen = screenScores
		return a, nil
	case ChoicePlay:
		return a.startMatch(item.Difficulty)
	}
	a.menu = a.menu.Reset("")
	return a, cmd
}

func (a App) startMatch(difficulty string) (tea.Model, tea.Cmd) {
	a.match.Abandon()
	if err := a.match.Start(difficulty); err != nil {
		a.deps.Logger.Warn("Cannot start match", "difficulty", difficulty, "error", err)
		a.menu = a.menu.Reset(err.Error())
		return a, nil
	}

	a.gen++
	game := NewGameModel(a.match, a.deps.Runtime, a.painter, a.deps.Sound, a.deps.Logger, a.gen)
	a.game = &game
	a.screen = screenGame
	return a, game.Init()
}

func (a App) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		a.game = &gm
	}

	if a.game.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}
	if a.game.BackToMenu() {
		a.game = nil
		a.screen = screenMenu
		a.menu = a.menu.Reset("")
		return a, nil
	}
	return a, cmd
}

func (a App) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := a.scores.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		a.scores = sm
	}

	if a.scores.IsQuitting() {
		a.quitting = true
		return a, tea.Quit
	}
	if a.scores.IsGoingBack() {
		a.screen = screenMenu
		a.menu = a.menu.Reset("")
		return a, nil
	}
	return a, cmd
}

// View renders the active screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	switch a.screen {
	case screenGame:
		return a.game.View()
	case screenScores:
		return a.scores.View()
	default:
		return a.menu.View()
	}
}

// Match returns the session's match.
func (a App) Match() *pong.Match {
	return a.match
}

// Run starts a local terminal session and blocks until the user quits.
func Run(d Deps) error {
	p := tea.NewProgram(
		NewApp(d),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
