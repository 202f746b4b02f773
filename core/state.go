package core

// Side identifies a paddle, and the paddle a ball is approaching
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// String returns the lowercase side name
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Opposite returns the other side
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Trajectory is the latest prediction: which paddle the ball approaches and
// where that paddle's top edge should be when it arrives
// Y is already clamped to keep the paddle on screen
type Trajectory struct {
	Collision Side
	Y         float32
}

// Score counts serves won by each side
type Score struct {
	Left, Right int
}

// Award credits one point to side
func (s *Score) Award(side Side) {
	if side == SideLeft {
		s.Left++
	} else {
		s.Right++
	}
}

// State is the complete simulation state, owned by a single goroutine
// Copying a State yields an independent snapshot
type State struct {
	Left, Right Paddle
	Ball        Ball
	Trajectory  Trajectory
	Score       Score
	Tick        uint64
}

// Paddle returns a pointer to the paddle on the given side
func (s *State) Paddle(side Side) *Paddle {
	if side == SideLeft {
		return &s.Left
	}
	return &s.Right
}
