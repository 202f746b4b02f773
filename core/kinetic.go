package core

// Paddle is an AI-driven paddle fixed on one side of the field
// Y is the top edge; DY is applied once per tick while the paddle is the prediction target
type Paddle struct {
	X, Y float32
	DY   float32
}

// Ball is the single ball, X/Y is its top-left corner, DX/DY per-tick velocity
type Ball struct {
	X, Y   float32
	DX, DY float32
}

// Move advances the ball by one tick of its velocity
func (b *Ball) Move() {
	b.X += b.DX
	b.Y += b.DY
}

// Heading returns the paddle side the ball is travelling toward
// Zero horizontal velocity counts as heading right
func (b Ball) Heading() Side {
	if b.DX < 0 {
		return SideLeft
	}
	return SideRight
}
