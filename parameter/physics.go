package parameter

// Field dimensions in simulation units
const (
	ScreenWidth  = 1600
	ScreenHeight = 1200
)

// Paddle geometry and motion
const (
	PaddleWidth  = 20
	PaddleHeight = 100

	// PaddleSpeed is the per-tick velocity a paddle starts with, before the first prediction
	PaddleSpeed = 10

	// PaddleInset is the gap between a side wall and the outer face of its paddle
	PaddleInset = 50
)

// Ball geometry and speed
const (
	BallSize = 20

	// BallSpeed is the per-tick speed on each axis at serve
	BallSpeed = 5

	// BallSpeedGrowth multiplies |dx| on every paddle return
	BallSpeedGrowth = 1.1

	// BallSpeedMax caps |dx| after growth
	BallSpeedMax = 15

	// BallSpeedMin is the smallest accepted serve speed
	BallSpeedMin = 0.01
)
