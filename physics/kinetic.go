package physics

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
)

// ReflectWalls inverts vertical velocity when the ball touches the top or bottom wall
// Position is not corrected, the ball may overlap the wall for a tick
// Returns true if reflection occurred
func ReflectWalls(cfg parameter.Config, b *core.Ball) bool {
	if b.Y <= 0 || b.Y+cfg.BallSize >= cfg.ScreenHeight {
		b.DY = -b.DY
		return true
	}
	return false
}

// OutOfBounds reports whether the ball touched a side wall, and which one
func OutOfBounds(cfg parameter.Config, b core.Ball) (core.Side, bool) {
	if b.X <= 0 {
		return core.SideLeft, true
	}
	if b.X+cfg.BallSize >= cfg.ScreenWidth {
		return core.SideRight, true
	}
	return core.SideLeft, false
}

// Serve resets the ball to the center at serve speed, heading away from the exited side
func Serve(cfg parameter.Config, b *core.Ball, exited core.Side) {
	b.X = cfg.CenterX()
	b.Y = cfg.CenterY()

	if exited == core.SideLeft {
		b.DX = cfg.BallSpeed
	} else {
		b.DX = -cfg.BallSpeed
	}

	if b.DY < 0 {
		b.DY = -cfg.BallSpeed
	} else {
		b.DY = cfg.BallSpeed
	}
}
