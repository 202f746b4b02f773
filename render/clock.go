package render

import (
	"time"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
)

// Seven-segment bits: a top, b upper right, c lower right, d bottom, e lower left, f upper left, g middle
const (
	segA = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG
)

var digitSegments = [10]uint8{
	segA | segB | segC | segD | segE | segF,
	segB | segC,
	segA | segB | segD | segE | segG,
	segA | segB | segC | segD | segG,
	segB | segC | segF | segG,
	segA | segC | segD | segF | segG,
	segA | segC | segD | segE | segF | segG,
	segA | segB | segC,
	segA | segB | segC | segD | segE | segF | segG,
	segA | segB | segC | segD | segF | segG,
}

// DigitRects returns the lit segments of digit d with its top-left corner at (x, y)
func DigitRects(d int, x, y float32) []core.Rect {
	const (
		w = parameter.ClockDigitWidth
		h = parameter.ClockDigitHeight
		t = parameter.ClockSegmentThick
	)
	mask := digitSegments[d%10]

	segments := [...]struct {
		bit  uint8
		rect core.Rect
	}{
		{segA, core.Rect{X: x, Y: y, Width: w, Height: t}},
		{segB, core.Rect{X: x + w - t, Y: y, Width: t, Height: h / 2}},
		{segC, core.Rect{X: x + w - t, Y: y + h/2, Width: t, Height: h / 2}},
		{segD, core.Rect{X: x, Y: y + h - t, Width: w, Height: t}},
		{segE, core.Rect{X: x, Y: y + h/2, Width: t, Height: h / 2}},
		{segF, core.Rect{X: x, Y: y, Width: t, Height: h / 2}},
		{segG, core.Rect{X: x, Y: y + (h-t)/2, Width: w, Height: t}},
	}

	rects := make([]core.Rect, 0, len(segments))
	for _, s := range segments {
		if mask&s.bit != 0 {
			rects = append(rects, s.rect)
		}
	}
	return rects
}

// ClockRects lays out HH:MM of t centered at the top of a field fieldWidth wide
func ClockRects(t time.Time, fieldWidth float32) []core.Rect {
	const (
		w   = parameter.ClockDigitWidth
		h   = parameter.ClockDigitHeight
		gap = parameter.ClockDigitGap
		cw  = parameter.ClockColonWidth
		top = parameter.ClockTop
	)
	total := float32(4*w + 4*gap + cw)
	x := (fieldWidth - total) / 2

	hour, minute := t.Hour(), t.Minute()

	var rects []core.Rect
	rects = append(rects, DigitRects(hour/10, x, top)...)
	x += w + gap
	rects = append(rects, DigitRects(hour%10, x, top)...)
	x += w + gap

	rects = append(rects,
		core.Rect{X: x, Y: top + h/3 - cw/2, Width: cw, Height: cw},
		core.Rect{X: x, Y: top + 2*h/3 - cw/2, Width: cw, Height: cw},
	)
	x += cw + gap

	rects = append(rects, DigitRects(minute/10, x, top)...)
	x += w + gap
	rects = append(rects, DigitRects(minute%10, x, top)...)
	return rects
}
