//go:build ebiten

package gui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/leaderboard"
	"github.com/vovakirdan/neon-pong/internal/pong"
	"github.com/vovakirdan/neon-pong/internal/sfx"
)

var difficultyKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

// Game adapts a pong Match to the ebiten.Game interface. Number keys pick
// a difficulty, the mouse moves the paddle, R restarts after a game over.
type Game struct {
	match        *pong.Match
	board        *leaderboard.Board
	difficulties []string
	canvas       *vectorCanvas
	sound        sfx.Player
	logger       *log.Logger
	fieldW       int
	fieldH       int
	notice       string
}

// New creates a game for opts.
func New(opts Options) *Game {
	opts = opts.normalize()
	cfg := opts.Config

	var sound sfx.Player = sfx.Nop{}
	if !opts.Mute {
		sound = newBeeper()
	}

	names := cfg.DifficultyNames()
	if len(names) > len(difficultyKeys) {
		names = names[:len(difficultyKeys)]
	}

	return &Game{
		match:        pong.NewMatch(cfg, opts.matchOptions()...),
		board:        opts.Board,
		difficulties: names,
		canvas:       &vectorCanvas{fonts: newFontCache()},
		sound:        sound,
		logger:       opts.Logger,
		fieldW:       int(cfg.Field.Width),
		fieldH:       int(cfg.Field.Height),
	}
}

// Update handles input and advances the match by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.match.Phase() != pong.PhaseRunning {
		for i, name := range g.difficulties {
			if inpututil.IsKeyJustPressed(difficultyKeys[i]) {
				g.start(name)
			}
		}
	}
	if g.match.Phase() == pong.PhaseGameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.match.Restart(); err != nil {
			g.logger.Debug("Restart rejected", "error", err)
		}
	}

	_, y := ebiten.CursorPosition()
	g.match.SetPointer(float64(y))

	sfx.Dispatch(g.match.Step(), g.sound, g.logger)
	return nil
}

func (g *Game) start(difficulty string) {
	if err := g.match.Start(difficulty); err != nil {
		g.notice = err.Error()
		return
	}
	g.notice = ""
}

// Draw renders the current frame and, outside a match, the menu overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	pong.Draw(g.match.Snapshot(), g.canvas)

	if g.match.Phase() == pong.PhaseRunning {
		return
	}

	cx := float64(g.fieldW) / 2
	y := 140.0
	if g.match.Phase() == pong.PhaseGameOver {
		y = float64(g.fieldH)/2 + 80
	} else {
		g.canvas.Text(cx, y, "NEON PONG", pong.TextStyle{Size: 56, Align: pong.AlignCenter, Color: core.ColorCyan, Bold: true})
		y += 60
	}

	opts := make([]string, len(g.difficulties))
	for i, name := range g.difficulties {
		opts[i] = fmt.Sprintf("%d: %s", i+1, name)
	}
	hint := strings.Join(opts, "   ")
	if g.match.Phase() == pong.PhaseGameOver {
		hint = "R: restart   " + hint
	}
	g.canvas.Text(cx, y, hint, pong.TextStyle{Size: 22, Align: pong.AlignCenter, Color: core.ColorWhite})

	if g.notice != "" {
		g.canvas.Text(cx, y+34, g.notice, pong.TextStyle{Size: 18, Align: pong.AlignCenter, Color: core.ColorYellow})
	}

	if g.board == nil || g.match.Phase() == pong.PhaseGameOver {
		return
	}
	y += 70
	g.canvas.Text(cx, y, "LEADERBOARD", pong.TextStyle{Size: 24, Align: pong.AlignCenter, Color: core.ColorYellow, Bold: true})
	for i, e := range g.board.Top(leaderboard.Size(g.match.Config().Gameplay.LeaderboardTop)) {
		g.canvas.Text(cx, y+30*float64(i+1), fmt.Sprintf("%d. %s", i+1, e),
			pong.TextStyle{Size: 18, Align: pong.AlignCenter, Color: core.ColorWhite})
	}
}

// Layout keeps field coordinates as the logical screen size.
func (g *Game) Layout(int, int) (int, int) {
	return g.fieldW, g.fieldH
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	opts = opts.normalize()
	g := New(opts)

	ebiten.SetTPS(opts.TickRate)
	ebiten.SetWindowTitle("Neon Pong")
	ebiten.SetWindowSize(int(float64(g.fieldW)*opts.Scale), int(float64(g.fieldH)*opts.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
