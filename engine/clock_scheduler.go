package engine

import (
	"time"

	"github.com/lixenwraith/vi-pong/parameter"
)

// Window is the windowing collaborator: close signal, pause state and event polling
type Window interface {
	// ShouldClose is checked at the top of every loop iteration
	ShouldClose() bool
	// Paused reports whether the user has paused the game
	Paused() bool
	// PollEvents drains pending input without blocking
	PollEvents()
}

// Renderer is the render collaborator, receives one frame per fired tick
type Renderer interface {
	Render(frame Frame)
}

// ClockScheduler gates simulation and rendering to a fixed tick interval
// A tick fires when at least one interval of game time elapsed since the last fired tick;
// missed ticks are not caught up
type ClockScheduler struct {
	game     *Game
	clock    *PausableClock
	window   Window
	renderer Renderer

	tickInterval time.Duration
	lastTickTime time.Time
	tickCount    uint64
}

// NewClockScheduler creates a scheduler whose first tick is due one interval from now
func NewClockScheduler(game *Game, clock *PausableClock, window Window, renderer Renderer) *ClockScheduler {
	return &ClockScheduler{
		game:         game,
		clock:        clock,
		window:       window,
		renderer:     renderer,
		tickInterval: game.Config().Tick,
		lastTickTime: clock.Now(),
	}
}

// TickCount returns the number of fired ticks
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount
}

// Remaining returns game time left until the next tick is due, zero if due
func (cs *ClockScheduler) Remaining() time.Duration {
	d := cs.tickInterval - cs.clock.Now().Sub(cs.lastTickTime)
	if d < 0 {
		return 0
	}
	return d
}

// Step performs one gate check and, if due, one tick: simulate, render, poll events
// Returns true if a tick fired
func (cs *ClockScheduler) Step() bool {
	now := cs.clock.Now()
	if now.Sub(cs.lastTickTime) < cs.tickInterval {
		return false
	}

	cs.game.Tick()
	cs.renderer.Render(cs.game.Frame(cs.clock.RealTime()))
	cs.window.PollEvents()

	cs.lastTickTime = now
	cs.tickCount++
	return true
}

// Run loops until the window requests close
func (cs *ClockScheduler) Run() {
	for !cs.window.ShouldClose() {
		cs.syncPause()

		if cs.clock.IsPaused() {
			frame := cs.game.Frame(cs.clock.RealTime())
			frame.Paused = true
			cs.renderer.Render(frame)
			cs.window.PollEvents()
			cs.clock.Sleep(parameter.PausedPollInterval)
			continue
		}

		if !cs.Step() {
			cs.clock.Sleep(min(cs.Remaining(), parameter.IdleSleepMax))
		}
	}
}

// syncPause follows the window's pause toggle, freezing game time while paused
func (cs *ClockScheduler) syncPause() {
	switch paused := cs.window.Paused(); {
	case paused && !cs.clock.IsPaused():
		cs.clock.Pause()
	case !paused && cs.clock.IsPaused():
		cs.clock.Resume()
	}
}
