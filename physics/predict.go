package physics

import (
	"math"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
)

// Prediction is the outcome of a lookahead, applied by Retarget
type Prediction struct {
	Trajectory core.Trajectory

	// Ticks is the estimated number of ticks until the ball reaches the target plane, at least 1
	Ticks uint32

	// Velocity is the per-tick dy that closes the gap to Trajectory.Y in Ticks ticks
	Velocity float32

	// Landing is the raw simulated ball y before the paddle offset and clamp
	Landing float32
}

// Predict simulates a copy of the ball forward, bouncing off the top and bottom walls only,
// until it passes either paddle plane, and derives the target paddle's velocity
// Pure: ball and paddles are taken by value and never written
func Predict(cfg parameter.Config, ball core.Ball, left, right core.Paddle) Prediction {
	side := ball.Heading()

	ball.Move()

	var distance float32
	if side == core.SideLeft {
		distance = left.X - ball.X
	} else {
		distance = right.X - ball.X - cfg.BallSize
	}
	ticks := tickCount(distance, ball.DX)

	// Zero horizontal velocity never reaches a plane, keep the one-step position
	if ball.DX != 0 {
		maxSteps := lookaheadSteps(right.X-left.X, ball.DX)
		for step := 0; step < maxSteps && ball.X > left.X+cfg.PaddleWidth && ball.X+cfg.BallSize < right.X; step++ {
			x := ball.X
			ball.Move()
			if ball.Y <= 0 || ball.Y+cfg.BallSize >= cfg.ScreenHeight {
				ball.DY = -ball.DY
			}
			// dx below the float32 spacing at x, the ball never advances
			if ball.X == x {
				break
			}
		}
	}

	target := clamp(ball.Y-cfg.PaddleHeight/2, 0, cfg.MaxPaddleY())

	paddle := right
	if side == core.SideLeft {
		paddle = left
	}

	return Prediction{
		Trajectory: core.Trajectory{Collision: side, Y: target},
		Ticks:      ticks,
		Velocity:   -(paddle.Y - target) / float32(ticks),
		Landing:    ball.Y,
	}
}

// Retarget recomputes the trajectory for the current ball and steers the approached paddle
func Retarget(cfg parameter.Config, s *core.State) Prediction {
	p := Predict(cfg, s.Ball, s.Left, s.Right)
	s.Trajectory = p.Trajectory
	s.Paddle(p.Trajectory.Collision).DY = p.Velocity
	return p
}

// tickCount truncates distance/dx to an unsigned tick budget, floored at 1
// Negative, NaN and sub-tick ratios all floor to 1
func tickCount(distance, dx float32) uint32 {
	ratio := float64(distance) / float64(dx)
	if !(ratio >= 1) {
		return 1
	}
	if ratio >= math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(ratio)
}

// lookaheadSteps bounds the lookahead to one crossing of span at |dx| plus one step
func lookaheadSteps(span, dx float32) int {
	steps := math.Ceil(math.Abs(float64(span)/float64(dx))) + 1
	if !(steps < math.MaxInt32) {
		return math.MaxInt32
	}
	return int(steps)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
