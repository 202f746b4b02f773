package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-pong/engine"
	"github.com/lixenwraith/vi-pong/parameter"
)

// TerminalRenderer draws frames as filled cell rectangles on a tcell screen
type TerminalRenderer struct {
	screen    tcell.Screen
	cfg       parameter.Config
	showClock bool
}

// NewTerminalRenderer creates a renderer for a field of cfg's dimensions
func NewTerminalRenderer(screen tcell.Screen, cfg parameter.Config, showClock bool) *TerminalRenderer {
	return &TerminalRenderer{
		screen:    screen,
		cfg:       cfg,
		showClock: showClock,
	}
}

// Viewport returns the current field to screen mapping
func (r *TerminalRenderer) Viewport() Viewport {
	cols, rows := r.screen.Size()
	return Viewport{
		FieldWidth:  r.cfg.ScreenWidth,
		FieldHeight: r.cfg.ScreenHeight,
		Cols:        cols,
		Rows:        rows,
	}
}

// Render renders the entire frame
func (r *TerminalRenderer) Render(frame engine.Frame) {
	defaultStyle := tcell.StyleDefault.Background(parameter.ColorBackground)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	vp := r.Viewport()

	// Clock first so entities stay visible when they cross it
	if r.showClock {
		clockStyle := defaultStyle.Foreground(parameter.ColorClock)
		for _, rect := range ClockRects(frame.WallTime, r.cfg.ScreenWidth) {
			r.fill(vp.Map(rect), clockStyle)
		}
	}

	paddleStyle := defaultStyle.Foreground(parameter.ColorPaddle)
	r.fill(vp.Map(frame.Left), paddleStyle)
	r.fill(vp.Map(frame.Right), paddleStyle)
	r.fill(vp.Map(frame.Ball), defaultStyle.Foreground(parameter.ColorBall))

	r.drawStatusLine(frame, vp, defaultStyle.Foreground(parameter.ColorStatus))

	r.screen.Show()
}

func (r *TerminalRenderer) fill(c CellRect, style tcell.Style) {
	for y := c.Y0; y < c.Y1; y++ {
		for x := c.X0; x < c.X1; x++ {
			r.screen.SetContent(x, y, parameter.GlyphBlock, nil, style)
		}
	}
}

// drawStatusLine prints score on the bottom row, and the pause marker when paused
func (r *TerminalRenderer) drawStatusLine(frame engine.Frame, vp Viewport, style tcell.Style) {
	if vp.Rows == 0 {
		return
	}
	row := vp.Rows - 1

	score := fmt.Sprintf("%d : %d", frame.Score.Left, frame.Score.Right)
	r.drawText((vp.Cols-len(score))/2, row, score, style)

	if frame.Paused {
		r.drawText(0, row, "PAUSED", style.Reverse(true))
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
