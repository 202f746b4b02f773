package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/status"
)

// Frame is the per-tick draw request handed to the render collaborator
type Frame struct {
	Left, Right core.Rect
	Ball        core.Rect

	Trajectory core.Trajectory
	Score      core.Score
	Tick       uint64

	// WallTime feeds the clock overlay, unrelated to simulation time
	WallTime time.Time
	Paused   bool
}

// Game owns the simulation state and its configuration
// Not safe for concurrent use; the tick loop is the only caller
type Game struct {
	cfg   parameter.Config
	state core.State

	// Cached metric pointers
	statTicks       *atomic.Int64
	statWall        *atomic.Int64
	statContacts    *atomic.Int64
	statReturns     *atomic.Int64
	statServes      *atomic.Int64
	statPredictions *atomic.Int64
	statScoreLeft   *atomic.Int64
	statScoreRight  *atomic.Int64
	statSpeed       *status.AtomicFloat
	statTopSpeed    *status.AtomicFloat
}

// NewGame creates the initial serve and registers the game metrics in reg
func NewGame(cfg parameter.Config, reg *status.Registry) *Game {
	g := &Game{
		cfg:             cfg,
		state:           physics.NewState(cfg),
		statTicks:       reg.Ints.Get("engine.ticks"),
		statWall:        reg.Ints.Get("physics.wall_bounces"),
		statContacts:    reg.Ints.Get("physics.paddle_contacts"),
		statReturns:     reg.Ints.Get("physics.returns"),
		statServes:      reg.Ints.Get("physics.serves"),
		statPredictions: reg.Ints.Get("physics.predictions"),
		statScoreLeft:   reg.Ints.Get("score.left"),
		statScoreRight:  reg.Ints.Get("score.right"),
		statSpeed:       reg.Floats.Get("ball.speed"),
		statTopSpeed:    reg.Floats.Get("ball.top_speed"),
	}
	// Initial prediction made by NewState
	g.statPredictions.Add(1)
	g.recordSpeed()
	return g
}

// Tick advances the simulation by exactly one step
func (g *Game) Tick() physics.Events {
	ev := physics.Advance(g.cfg, &g.state)

	g.statTicks.Add(1)
	g.statWall.Add(int64(ev.WallBounces))
	g.statContacts.Add(int64(ev.PaddleContacts))
	g.statReturns.Add(int64(ev.Returns))
	g.statPredictions.Add(int64(ev.Predictions))

	if ev.Served {
		// Exiting through a side wall scores for the opposite paddle
		g.state.Score.Award(ev.Exited.Opposite())
		g.statScoreLeft.Store(int64(g.state.Score.Left))
		g.statScoreRight.Store(int64(g.state.Score.Right))
		g.statServes.Add(1)
		log.Printf("serve: ball exited %s at tick %d, score %d-%d",
			ev.Exited, g.state.Tick, g.state.Score.Left, g.state.Score.Right)
	}

	g.recordSpeed()
	return ev
}

func (g *Game) recordSpeed() {
	speed := float64(g.state.Ball.DX)
	if speed < 0 {
		speed = -speed
	}
	g.statSpeed.Set(speed)
	g.statTopSpeed.Max(speed)
}

// State returns a snapshot of the simulation state
func (g *Game) State() core.State {
	return g.state
}

// Config returns the configuration the game was created with
func (g *Game) Config() parameter.Config {
	return g.cfg
}

// Frame builds the draw request for the current state
func (g *Game) Frame(wall time.Time) Frame {
	s := &g.state
	return Frame{
		Left:       paddleRect(g.cfg, s.Left),
		Right:      paddleRect(g.cfg, s.Right),
		Ball:       core.Rect{X: s.Ball.X, Y: s.Ball.Y, Width: g.cfg.BallSize, Height: g.cfg.BallSize},
		Trajectory: s.Trajectory,
		Score:      s.Score,
		Tick:       s.Tick,
		WallTime:   wall,
	}
}

func paddleRect(cfg parameter.Config, p core.Paddle) core.Rect {
	return core.Rect{X: p.X, Y: p.Y, Width: cfg.PaddleWidth, Height: cfg.PaddleHeight}
}
