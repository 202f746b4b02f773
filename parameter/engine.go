package parameter

import "time"

// Game Loop & Engine Timing
const (
	// TickInterval is the fixed simulation step, gated against wall-clock time
	TickInterval = 5 * time.Millisecond

	// IdleSleepMax caps a single idle sleep of the tick loop between gate checks
	IdleSleepMax = 2 * time.Millisecond

	// PausedPollInterval is the event polling cadence while the game is paused
	PausedPollInterval = 20 * time.Millisecond
)

// Logging
const (
	// LogDir is created on demand when debug logging is enabled
	LogDir = "logs"

	// LogFileName is the debug log file inside LogDir
	LogFileName = "vi-pong.log"
)
