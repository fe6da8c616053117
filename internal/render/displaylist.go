// Package render records pong frames as a display list: a flat sequence of
// draw commands that can be replayed by any surface or sent over the wire.
package render

import (
	"github.com/vovakirdan/neon-pong/internal/core"
	"github.com/vovakirdan/neon-pong/internal/pong"
)

// Op names a draw command.
type Op string

const (
	OpClear      Op = "clear"
	OpDashedLine Op = "dash"
	OpFillRect   Op = "fill"
	OpStrokeRect Op = "stroke"
	OpCircle     Op = "circle"
	OpText       Op = "text"
	OpAvatar     Op = "avatar"
)

// Command is one recorded draw call. Unused fields are omitted on the wire.
type Command struct {
	Op     Op         `json:"op"`
	X      float64    `json:"x,omitempty"`
	Y      float64    `json:"y,omitempty"`
	X2     float64    `json:"x2,omitempty"`
	Y2     float64    `json:"y2,omitempty"`
	W      float64    `json:"w,omitempty"`
	H      float64    `json:"h,omitempty"`
	R      float64    `json:"r,omitempty"`
	Dash   float64    `json:"dash,omitempty"`
	Gap    float64    `json:"gap,omitempty"`
	Color  core.Color `json:"color,omitempty"`
	Fill   core.Color `json:"fillColor,omitempty"`
	Text   string     `json:"text,omitempty"`
	Size   float64    `json:"size,omitempty"`
	Align  string     `json:"align,omitempty"`
	Bold   bool       `json:"bold,omitempty"`
	Italic bool       `json:"italic,omitempty"`
}

// DisplayList is a pong.Canvas that records commands.
type DisplayList struct {
	Commands []Command `json:"commands"`
}

var _ pong.Canvas = (*DisplayList)(nil)

// Record draws snap into a fresh display list.
func Record(snap pong.Snapshot) *DisplayList {
	dl := &DisplayList{Commands: make([]Command, 0, 16)}
	pong.Draw(snap, dl)
	return dl
}

// Reset drops recorded commands, keeping capacity.
func (d *DisplayList) Reset() {
	d.Commands = d.Commands[:0]
}

// Replay issues every recorded command to c.
func (d *DisplayList) Replay(c pong.Canvas) {
	for _, cmd := range d.Commands {
		switch cmd.Op {
		case OpClear:
			c.Clear()
		case OpDashedLine:
			c.DashedLine(cmd.X, cmd.Y, cmd.X2, cmd.Y2, cmd.Dash, cmd.Gap, cmd.Color)
		case OpFillRect:
			c.FillRect(cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Color)
		case OpStrokeRect:
			c.StrokeRect(cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Color)
		case OpCircle:
			c.Circle(cmd.X, cmd.Y, cmd.R, cmd.Fill, cmd.Color)
		case OpText:
			c.Text(cmd.X, cmd.Y, cmd.Text, pong.TextStyle{
				Size:   cmd.Size,
				Align:  parseAlign(cmd.Align),
				Color:  cmd.Color,
				Bold:   cmd.Bold,
				Italic: cmd.Italic,
			})
		case OpAvatar:
			c.Avatar(cmd.X, cmd.Y, cmd.W, cmd.Color)
		}
	}
}

// Texts returns every text run in order.
func (d *DisplayList) Texts() []string {
	var out []string
	for _, cmd := range d.Commands {
		if cmd.Op == OpText {
			out = append(out, cmd.Text)
		}
	}
	return out
}

func (d *DisplayList) Clear() {
	d.Commands = append(d.Commands, Command{Op: OpClear})
}

func (d *DisplayList) DashedLine(x1, y1, x2, y2, dash, gap float64, c core.Color) {
	d.Commands = append(d.Commands, Command{Op: OpDashedLine, X: x1, Y: y1, X2: x2, Y2: y2, Dash: dash, Gap: gap, Color: c})
}

func (d *DisplayList) FillRect(x, y, w, h float64, c core.Color) {
	d.Commands = append(d.Commands, Command{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (d *DisplayList) StrokeRect(x, y, w, h float64, c core.Color) {
	d.Commands = append(d.Commands, Command{Op: OpStrokeRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (d *DisplayList) Circle(x, y, r float64, fill, stroke core.Color) {
	d.Commands = append(d.Commands, Command{Op: OpCircle, X: x, Y: y, R: r, Fill: fill, Color: stroke})
}

func (d *DisplayList) Text(x, y float64, text string, style pong.TextStyle) {
	d.Commands = append(d.Commands, Command{
		Op:     OpText,
		X:      x,
		Y:      y,
		Text:   text,
		Size:   style.Size,
		Align:  style.Align.String(),
		Color:  style.Color,
		Bold:   style.Bold,
		Italic: style.Italic,
	})
}

func (d *DisplayList) Avatar(x, y, size float64, c core.Color) {
	d.Commands = append(d.Commands, Command{Op: OpAvatar, X: x, Y: y, W: size, H: size, Color: c})
}

func parseAlign(s string) pong.Align {
	switch s {
	case "center":
		return pong.AlignCenter
	case "right":
		return pong.AlignRight
	default:
		return pong.AlignLeft
	}
}
