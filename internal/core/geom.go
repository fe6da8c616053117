// Package core provides fundamental types and utilities shared by the
// simulation and the front ends. It has no external dependencies (especially
// no Bubble Tea) so game logic stays pure and testable.
package core

import "math"

// Rect represents an axis-aligned box in cell coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Viewport maps a logical play field (floating point units) onto a grid of
// cells. The mapping stretches each axis independently.
type Viewport struct {
	FieldW, FieldH float64
	CellsW, CellsH int
}

// NewViewport creates a viewport for the given field and cell grid sizes.
func NewViewport(fieldW, fieldH float64, cellsW, cellsH int) Viewport {
	return Viewport{FieldW: fieldW, FieldH: fieldH, CellsW: cellsW, CellsH: cellsH}
}

// ScaleX returns how many cells one field unit spans horizontally.
func (v Viewport) ScaleX() float64 {
	if v.FieldW <= 0 {
		return 0
	}
	return float64(v.CellsW) / v.FieldW
}

// ScaleY returns how many cells one field unit spans vertically.
func (v Viewport) ScaleY() float64 {
	if v.FieldH <= 0 {
		return 0
	}
	return float64(v.CellsH) / v.FieldH
}

// ToCell converts a field point to the cell containing it.
func (v Viewport) ToCell(x, y float64) (int, int) {
	return int(math.Floor(x * v.ScaleX())), int(math.Floor(y * v.ScaleY()))
}

// ToField converts the center of a cell back to field coordinates.
func (v Viewport) ToField(cx, cy int) (float64, float64) {
	sx, sy := v.ScaleX(), v.ScaleY()
	if sx == 0 || sy == 0 {
		return 0, 0
	}
	return (float64(cx) + 0.5) / sx, (float64(cy) + 0.5) / sy
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
// When max < min the result is min.
func ClampF(val, min, max float64) float64 {
	if val > max {
		val = max
	}
	if val < min {
		val = min
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
