package pong

import (
	"fmt"

	"github.com/vovakirdan/neon-pong/internal/core"
)

// Align is the horizontal anchor of a text run.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// String returns the CSS-style alignment name.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// TextStyle describes a text run.
type TextStyle struct {
	Size   float64 // Font size in field units
	Align  Align
	Color  core.Color
	Bold   bool
	Italic bool
}

// Canvas is the rendering sink. Coordinates are field units; each front end
// scales them to its surface.
type Canvas interface {
	Clear()
	DashedLine(x1, y1, x2, y2, dash, gap float64, c core.Color)
	FillRect(x, y, w, h float64, c core.Color)
	StrokeRect(x, y, w, h float64, c core.Color)
	Circle(x, y, r float64, fill, stroke core.Color)
	Text(x, y float64, text string, style TextStyle)
	Avatar(x, y, size float64, c core.Color)
}

// Colors of the neon theme.
const (
	ColorPlayer = core.ColorCyan
	ColorAI     = core.ColorYellow
	ColorBall   = core.ColorPink
)

// Draw emits one frame of snap to c.
func Draw(snap Snapshot, c Canvas) {
	c.Clear()

	// Center divider
	c.DashedLine(snap.FieldW/2, 0, snap.FieldW/2, snap.FieldH, 16, 18, ColorPlayer)

	// Paddles
	c.FillRect(snap.PlayerX, snap.PlayerY, snap.PaddleW, snap.PaddleH, core.ColorPanel)
	c.StrokeRect(snap.PlayerX, snap.PlayerY, snap.PaddleW, snap.PaddleH, ColorPlayer)
	c.FillRect(snap.AIX, snap.AIY, snap.PaddleW, snap.PaddleH, core.ColorPanel)
	c.StrokeRect(snap.AIX, snap.AIY, snap.PaddleW, snap.PaddleH, ColorAI)

	if snap.Phase != PhaseNotStarted {
		c.Circle(snap.BallX, snap.BallY, snap.BallR, core.ColorWhite, ColorBall)
	}

	if snap.PowerUpSpawned {
		col := snap.PowerUpKind.Color()
		c.Circle(snap.PowerUpX, snap.PowerUpY, snap.PickupRadius, core.ColorBackground, col)
		c.Text(snap.PowerUpX, snap.PowerUpY+7, snap.PowerUpKind.String(),
			TextStyle{Size: 18, Align: AlignCenter, Color: col, Bold: true})
	}

	// Identity labels
	c.Text(snap.PlayerX, snap.PlayerY-18, snap.PlayerName,
		TextStyle{Size: 22, Align: AlignLeft, Color: ColorPlayer, Bold: true})
	c.Text(snap.PlayerX, snap.PlayerY-2, snap.PlayerTag,
		TextStyle{Size: 15, Align: AlignLeft, Color: core.ColorWhite, Italic: true})
	c.Text(snap.AIX+snap.PaddleW, snap.AIY-18, "AI",
		TextStyle{Size: 22, Align: AlignRight, Color: ColorAI, Bold: true})

	c.Avatar(snap.PlayerX-64, snap.PlayerY+snap.PaddleH/2-32, 56, ColorPlayer)

	// Score
	c.Text(snap.FieldW/2, snap.FieldH-16, fmt.Sprintf("%d : %d", snap.PlayerScore, snap.AIScore),
		TextStyle{Size: 22, Align: AlignCenter, Color: core.ColorWhite, Bold: true})

	if snap.PowerUpActive {
		col := snap.PowerUpKind.Color()
		c.Text(snap.FieldW/2, 60, snap.PowerUpKind.Effect(),
			TextStyle{Size: 32, Align: AlignCenter, Color: col, Bold: true})
	}

	if snap.Phase == PhaseGameOver {
		c.Text(snap.FieldW/2, snap.FieldH/2-20, "GAME OVER!",
			TextStyle{Size: 48, Align: AlignCenter, Color: ColorBall, Bold: true})
		c.Text(snap.FieldW/2, snap.FieldH/2+30, snap.WinnerText(),
			TextStyle{Size: 28, Align: AlignCenter, Color: core.ColorWhite, Bold: true})
	}
}
