package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/pong"
)

// CellCanvas draws pong frames onto a character Screen, scaling field
// coordinates to the current screen size.
type CellCanvas struct {
	screen         *core.Screen
	fieldW, fieldH float64
}

var _ pong.Canvas = (*CellCanvas)(nil)

// NewCellCanvas creates a canvas for a field of the given size.
func NewCellCanvas(screen *core.Screen, fieldW, fieldH float64) *CellCanvas {
	return &CellCanvas{screen: screen, fieldW: fieldW, fieldH: fieldH}
}

// Viewport returns the current field-to-cell mapping.
func (c *CellCanvas) Viewport() core.Viewport {
	return core.NewViewport(c.fieldW, c.fieldH, c.screen.Width(), c.screen.Height())
}

func (c *CellCanvas) Clear() {
	c.screen.Clear()
}

func (c *CellCanvas) DashedLine(x1, y1, x2, y2, dash, gap float64, col core.Color) {
	vp := c.Viewport()
	cx1, cy1 := vp.ToCell(x1, y1)
	cx2, cy2 := vp.ToCell(x2, y2)
	steps := core.Max(abs(cx2-cx1), abs(cy2-cy1))
	if steps == 0 {
		c.screen.SetCell(cx1, cy1, '·', col)
		return
	}

	r := '·'
	switch {
	case cx1 == cx2:
		r = '│'
	case cy1 == cy2:
		r = '─'
	}

	length := math.Hypot(x2-x1, y2-y1)
	period := dash + gap
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if period > 0 && math.Mod(t*length, period) >= dash {
			continue
		}
		cx, cy := vp.ToCell(x1+(x2-x1)*t, y1+(y2-y1)*t)
		c.screen.SetCell(cx, cy, r, col)
	}
}

func (c *CellCanvas) FillRect(x, y, w, h float64, col core.Color) {
	c.screen.DrawRect(c.cells(x, y, w, h), '█', col)
}

// StrokeRect draws a box when there is room for one and a solid block
// otherwise; paddles are usually one or two cells wide.
func (c *CellCanvas) StrokeRect(x, y, w, h float64, col core.Color) {
	r := c.cells(x, y, w, h)
	if r.W < 3 || r.H < 3 {
		c.screen.DrawRect(r, '█', col)
		return
	}
	c.screen.DrawBox(r, col)
}

func (c *CellCanvas) Circle(x, y, radius float64, _, stroke core.Color) {
	vp := c.Viewport()
	x0, y0 := vp.ToCell(x-radius, y-radius)
	x1, y1 := vp.ToCell(x+radius, y+radius)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			fx, fy := vp.ToField(cx, cy)
			if math.Hypot(fx-x, fy-y) <= radius {
				c.screen.SetCell(cx, cy, '●', stroke)
			}
		}
	}
	cx, cy := vp.ToCell(x, y)
	c.screen.SetCell(cx, cy, '●', stroke)
}

// Text ignores size and weight. The baseline row is the row containing y.
func (c *CellCanvas) Text(x, y float64, text string, style pong.TextStyle) {
	cx, cy := c.Viewport().ToCell(x, y)
	n := utf8.RuneCountInString(text)
	switch style.Align {
	case pong.AlignCenter:
		cx -= n / 2
	case pong.AlignRight:
		cx -= n
	}
	cx = core.Clamp(cx, 0, core.Max(c.screen.Width()-n, 0))
	c.screen.DrawText(cx, cy, text, style.Color)
}

func (c *CellCanvas) Avatar(x, y, size float64, col core.Color) {
	cx, cy := c.Viewport().ToCell(x+size/2, y+size/2)
	c.screen.SetCell(cx, cy, '☺', col)
}

// cells returns the cell rectangle covering a field rectangle, at least one
// cell in each direction.
func (c *CellCanvas) cells(x, y, w, h float64) core.Rect {
	vp := c.Viewport()
	x0, y0 := vp.ToCell(x, y)
	x1 := int(math.Ceil((x + w) * vp.ScaleX()))
	y1 := int(math.Ceil((y + h) * vp.ScaleY()))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
