package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/pong"
)

// tenth maps the default 900x600 field onto 90x60 cells.
func tenth() (*core.Screen, *CellCanvas) {
	screen := core.NewScreen(90, 60)
	return screen, NewCellCanvas(screen, 900, 600)
}

func startedSnapshot(t *testing.T) pong.Snapshot {
	t.Helper()
	cfg := config.DefaultPongConfig()
	cfg.PowerUps.SpawnChance = 0
	m := pong.NewMatch(cfg, pong.WithSeed(3))
	if err := m.Start("easy"); err != nil {
		t.Fatal(err)
	}
	return m.Snapshot()
}

func TestCellCanvasDrawsFrame(t *testing.T) {
	screen, canvas := tenth()
	snap := startedSnapshot(t)
	pong.Draw(snap, canvas)

	// Player paddle: x 32..50, y 245..355.
	if cell := screen.GetCell(3, 30); cell.Rune != '█' || cell.Color != core.ColorCyan {
		t.Errorf("player paddle cell = %q %q", cell.Rune, cell.Color)
	}
	// AI paddle: x 850..868.
	if cell := screen.GetCell(85, 30); cell.Rune != '█' || cell.Color != core.ColorYellow {
		t.Errorf("AI paddle cell = %q %q", cell.Rune, cell.Color)
	}
	// Ball at the center.
	if cell := screen.GetCell(45, 30); cell.Rune != '●' || cell.Color != core.ColorPink {
		t.Errorf("ball cell = %q %q", cell.Rune, cell.Color)
	}

	// "AI" is right-aligned to the paddle's right edge, one row above it.
	if row := screen.Row(22); !strings.Contains(row, "AI") {
		t.Errorf("row 22 = %q, want AI label", row)
	}
	if row := screen.Row(22); !strings.Contains(row, snap.PlayerName) {
		t.Errorf("row 22 = %q, want player name", row)
	}
	if row := screen.Row(58); !strings.Contains(row, "0 : 0") {
		t.Errorf("row 58 = %q, want score", row)
	}
}

func TestCellCanvasDashedDivider(t *testing.T) {
	screen, canvas := tenth()
	canvas.DashedLine(450, 0, 450, 600, 16, 18, core.ColorCyan)

	dashes, gaps := 0, 0
	for y := range 60 {
		switch screen.Get(45, y) {
		case '│':
			dashes++
		case ' ':
			gaps++
		}
	}
	if dashes == 0 || gaps == 0 {
		t.Errorf("divider dashes=%d gaps=%d, want both", dashes, gaps)
	}
}

func TestCellCanvasStrokeRect(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h float64
		corner     rune
	}{
		{"wide box", 100, 100, 100, 100, '┌'},
		{"thin paddle", 100, 100, 15, 100, '█'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			screen, canvas := tenth()
			canvas.StrokeRect(tc.x, tc.y, tc.w, tc.h, core.ColorWhite)
			if got := screen.Get(10, 10); got != tc.corner {
				t.Errorf("corner = %q, want %q", got, tc.corner)
			}
		})
	}
}

func TestCellCanvasTextAlign(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		align pong.Align
		col   int
	}{
		{"left", 100, pong.AlignLeft, 10},
		{"center", 100, pong.AlignCenter, 8},
		{"right", 100, pong.AlignRight, 6},
		{"clamped to the left edge", 0, pong.AlignRight, 0},
		{"clamped to the right edge", 899, pong.AlignLeft, 86},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			screen, canvas := tenth()
			canvas.Text(tc.x, 50, "ABCD", pong.TextStyle{Align: tc.align})
			if got := screen.Get(tc.col, 5); got != 'A' {
				t.Errorf("cell %d = %q, row %q", tc.col, got, screen.Row(5))
			}
		})
	}
}

func TestPainterRender(t *testing.T) {
	screen := core.NewScreen(4, 2)
	screen.DrawText(0, 0, "ab", core.ColorDefault)
	screen.DrawText(0, 1, "cd", core.ColorCyan)

	out := NewPainter(nil).Render(screen)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines", len(lines))
	}
	if lines[0] != "ab  " {
		t.Errorf("default color row = %q", lines[0])
	}
	if !strings.Contains(lines[1], "cd") {
		t.Errorf("colored row = %q", lines[1])
	}
}
