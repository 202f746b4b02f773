package render

import (
	"math"

	"github.com/lixenwraith/vi-pong/core"
)

// CellRect is a half-open cell range [X0, X1) x [Y0, Y1) on the terminal
type CellRect struct {
	X0, Y0, X1, Y1 int
}

// Empty reports whether the range covers no cell
func (c CellRect) Empty() bool {
	return c.X1 <= c.X0 || c.Y1 <= c.Y0
}

// Viewport scales simulation coordinates onto a terminal grid
type Viewport struct {
	FieldWidth, FieldHeight float32
	Cols, Rows              int
}

// Map converts a simulation rectangle to the cells it covers
// A rectangle inside the field covers at least one cell; the result is clipped to the grid
func (v Viewport) Map(r core.Rect) CellRect {
	c := CellRect{
		X0: int(math.Floor(v.scaleX(r.X))),
		Y0: int(math.Floor(v.scaleY(r.Y))),
		X1: int(math.Ceil(v.scaleX(r.Right()))),
		Y1: int(math.Ceil(v.scaleY(r.Bottom()))),
	}
	if c.X1 <= c.X0 {
		c.X1 = c.X0 + 1
	}
	if c.Y1 <= c.Y0 {
		c.Y1 = c.Y0 + 1
	}

	c.X0 = max(c.X0, 0)
	c.Y0 = max(c.Y0, 0)
	c.X1 = min(c.X1, v.Cols)
	c.Y1 = min(c.Y1, v.Rows)
	return c
}

// Multiply before dividing so integral field coordinates land exactly on cell edges
func (v Viewport) scaleX(x float32) float64 {
	return float64(x) * float64(v.Cols) / float64(v.FieldWidth)
}

func (v Viewport) scaleY(y float32) float64 {
	return float64(y) * float64(v.Rows) / float64(v.FieldHeight)
}
