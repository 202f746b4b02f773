package parameter

import "github.com/gdamore/tcell/v2"

// GlyphBlock fills every covered cell of a drawn rectangle
const GlyphBlock = '█'

// Colors
var (
	ColorBackground = tcell.ColorBlack
	ColorPaddle     = tcell.ColorWhite
	ColorBall       = tcell.ColorYellow
	ColorClock      = tcell.ColorDarkCyan
	ColorStatus     = tcell.ColorGray
)

// Clock overlay geometry in simulation units, seven-segment HH:MM at top center
const (
	ClockTop          = 40
	ClockDigitWidth   = 60
	ClockDigitHeight  = 110
	ClockSegmentThick = 12
	ClockDigitGap     = 24
	ClockColonWidth   = 12
)
