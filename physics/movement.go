package physics

import (
	"github.com/lixenwraith/vi-pong/core"
)

// CapSpeed limits |v| to maxSpeed preserving sign
// Returns true if velocity was clamped
func CapSpeed(v *float32, maxSpeed float32) bool {
	if *v > maxSpeed {
		*v = maxSpeed
		return true
	}
	if *v < -maxSpeed {
		*v = -maxSpeed
		return true
	}
	return false
}

// Accelerate grows horizontal speed by factor, capped at maxSpeed
func Accelerate(b *core.Ball, factor, maxSpeed float32) {
	b.DX *= factor
	CapSpeed(&b.DX, maxSpeed)
}

// MovePaddles advances only the paddle the ball is approaching
// The other paddle keeps its stale velocity but does not move
func MovePaddles(s *core.State) {
	p := s.Paddle(s.Trajectory.Collision)
	p.Y += p.DY
}
