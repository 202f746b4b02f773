package core

// Rect is an axis-aligned rectangle in simulation coordinates
type Rect struct {
	X, Y          float32 // Top-left corner
	Width, Height float32
}

// Right returns the x coordinate of the right edge
func (r Rect) Right() float32 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge
func (r Rect) Bottom() float32 { return r.Y + r.Height }
