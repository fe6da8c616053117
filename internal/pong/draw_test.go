package pong

import (
	"testing"

	"github.com/vovakirdan/neon-pong/internal/config"
	"github.com/vovakirdan/neon-pong/internal/core"
)

type recordingCanvas struct {
	ops   []string
	texts []string
	rects int
	dash  int
}

func (c *recordingCanvas) Clear() { c.ops = append(c.ops, "clear") }
func (c *recordingCanvas) DashedLine(x1, y1, x2, y2, dash, gap float64, col core.Color) {
	c.dash++
}
func (c *recordingCanvas) FillRect(x, y, w, h float64, col core.Color)   { c.rects++ }
func (c *recordingCanvas) StrokeRect(x, y, w, h float64, col core.Color) { c.rects++ }
func (c *recordingCanvas) Circle(x, y, r float64, fill, stroke core.Color) {
	c.ops = append(c.ops, "circle:"+string(stroke))
}
func (c *recordingCanvas) Text(x, y float64, text string, style TextStyle) {
	c.texts = append(c.texts, text)
}
func (c *recordingCanvas) Avatar(x, y, size float64, col core.Color) {
	c.ops = append(c.ops, "avatar")
}

func (c *recordingCanvas) hasText(s string) bool {
	for _, t := range c.texts {
		if t == s {
			return true
		}
	}
	return false
}

func TestDrawRunningFrame(t *testing.T) {
	p := testParams(t, config.DifficultyEasy)
	s := NewState(p, 1)
	c := &recordingCanvas{}

	Draw(s.Snapshot(p), c)

	if len(c.ops) == 0 || c.ops[0] != "clear" {
		t.Error("frame should start with Clear")
	}
	if c.dash != 1 {
		t.Errorf("expected one center divider, got %d", c.dash)
	}
	if c.rects != 4 {
		t.Errorf("expected fill+stroke for two paddles, got %d rects", c.rects)
	}
	for _, want := range []string{p.PlayerName, p.PlayerTag, "AI", "0 : 0"} {
		if !c.hasText(want) {
			t.Errorf("missing text %q in %v", want, c.texts)
		}
	}
	if c.hasText("GAME OVER!") {
		t.Error("GAME OVER banner drawn while running")
	}
}

func TestDrawPowerUpAndGameOver(t *testing.T) {
	p := testParams(t, config.DifficultyEasy)
	s := NewState(p, 1)

	s.Slot = Slot{State: SlotSpawned, Kind: PowerUpBallFast, X: 300, Y: 300}
	c := &recordingCanvas{}
	Draw(s.Snapshot(p), c)
	if !c.hasText("fastball") {
		t.Errorf("spawned pickup label missing: %v", c.texts)
	}

	s.activate(p)
	c = &recordingCanvas{}
	Draw(s.Snapshot(p), c)
	if !c.hasText("Speed up ball") {
		t.Errorf("effect banner missing: %v", c.texts)
	}
	if c.hasText("fastball") {
		t.Error("active power-up should not be drawn as a pickup")
	}

	s.Phase = PhaseGameOver
	s.Winner = SideAI
	c = &recordingCanvas{}
	Draw(s.Snapshot(p), c)
	if !c.hasText("GAME OVER!") || !c.hasText("🤖 AI Wins!") {
		t.Errorf("game over banner missing: %v", c.texts)
	}
}
