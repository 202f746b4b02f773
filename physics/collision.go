package physics

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
)

// Contact is the result of testing the ball against one paddle
type Contact struct {
	// Touching is the loose condition: leading edge at or past the plane,
	// vertical extents overlapping or touching, ball heading toward the paddle
	Touching bool

	// Overlap is the strict condition: both ball edges strictly inside the paddle span
	Overlap bool
}

// TestPaddle checks the ball against the paddle on side without mutating anything
func TestPaddle(cfg parameter.Config, b core.Ball, p core.Paddle, side core.Side) Contact {
	var reached, heading bool
	if side == core.SideLeft {
		reached = b.X <= p.X+cfg.PaddleWidth
		heading = b.DX < 0
	} else {
		reached = b.X+cfg.BallSize >= p.X
		heading = b.DX > 0
	}

	touching := reached && heading &&
		b.Y+cfg.BallSize >= p.Y &&
		b.Y <= p.Y+cfg.PaddleHeight

	return Contact{
		Touching: touching,
		Overlap:  touching && b.Y+cfg.BallSize > p.Y && b.Y < p.Y+cfg.PaddleHeight,
	}
}

// ReturnBall reflects the ball off the paddle on side and snaps it to the paddle face
func ReturnBall(cfg parameter.Config, b *core.Ball, p core.Paddle, side core.Side) {
	b.DX = -b.DX
	if side == core.SideLeft {
		b.X = p.X + cfg.PaddleWidth
	} else {
		b.X = p.X - cfg.BallSize
	}
	Accelerate(b, cfg.SpeedGrowth, cfg.MaxBallSpeed)
}
