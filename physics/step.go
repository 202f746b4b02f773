package physics

import (
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
)

// Events summarizes what happened during one Step
type Events struct {
	WallBounces int

	// PaddleContacts counts ticks where the loose paddle condition held, each one re-predicts
	PaddleContacts int

	// Returns counts strict overlaps that reflected the ball
	Returns int

	// Predictions counts trajectory recomputations, contacts plus a serve
	Predictions int

	Served bool
	// Exited is the side wall the ball left through, valid when Served
	Exited core.Side
}

// Step advances the ball by one tick: integrate, wall bounce, paddle contacts, serve
// The approached paddle's velocity is updated by every prediction
func Step(cfg parameter.Config, s *core.State) Events {
	var ev Events

	s.Ball.Move()

	if ReflectWalls(cfg, &s.Ball) {
		ev.WallBounces++
	}

	// Re-predicts on every tick the loose condition holds, including ticks where
	// the ball grazes a paddle corner and keeps travelling past the plane
	for _, side := range [...]core.Side{core.SideLeft, core.SideRight} {
		p := *s.Paddle(side)
		c := TestPaddle(cfg, s.Ball, p, side)
		if !c.Touching {
			continue
		}
		ev.PaddleContacts++
		if c.Overlap {
			ReturnBall(cfg, &s.Ball, p, side)
			ev.Returns++
		}
		Retarget(cfg, s)
		ev.Predictions++
	}

	if exited, out := OutOfBounds(cfg, s.Ball); out {
		Serve(cfg, &s.Ball, exited)
		Retarget(cfg, s)
		ev.Predictions++
		ev.Served = true
		ev.Exited = exited
	}

	return ev
}

// Advance runs one full simulation tick: ball step, then paddle motion
func Advance(cfg parameter.Config, s *core.State) Events {
	ev := Step(cfg, s)
	MovePaddles(s)
	s.Tick++
	return ev
}

// NewState places both paddles at vertical center with the initial paddle speed,
// serves the ball from the center heading right and runs the first prediction
func NewState(cfg parameter.Config) core.State {
	paddleY := cfg.CenterY() - cfg.PaddleHeight/2
	s := core.State{
		Left:  core.Paddle{X: cfg.LeftPaddleX(), Y: paddleY, DY: cfg.PaddleSpeed},
		Right: core.Paddle{X: cfg.RightPaddleX(), Y: paddleY, DY: cfg.PaddleSpeed},
		Ball: core.Ball{
			X:  cfg.CenterX(),
			Y:  cfg.CenterY(),
			DX: cfg.BallSpeed,
			DY: cfg.BallSpeed,
		},
	}
	Retarget(cfg, &s)
	return s
}
