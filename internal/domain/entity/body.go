package entity

// Facing represents the horizontal direction an entity looks at
type Facing int

const (
	FacingLeft Facing = iota
	FacingRight
)

// Flip returns the opposite direction
func (f Facing) Flip() Facing {
	if f == FacingLeft {
		return FacingRight
	}
	return FacingLeft
}

// Sign returns -1 for left and 1 for right
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// String returns the string representation of the facing
func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Rect is an axis-aligned rectangle in world coordinates
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether two rectangles share interior area.
// Rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Expand returns a copy grown by d on every side
func (r Rect) Expand(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Body represents the physical state of a movable entity.
// VX and VY are the intended displacement for the current tick; collision
// resolution may zero them.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
	Radius float64 // bounding circle radius, 0 never collides precisely
}

// CircleRadius returns the configured radius used for circle overlap tests
func (b *Body) CircleRadius() float64 {
	return b.Radius
}

// Bounds returns the body's bounding box
func (b *Body) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// CenterX returns the horizontal center
func (b *Body) CenterX() float64 {
	return b.X + b.W/2
}

// CenterY returns the vertical center
func (b *Body) CenterY() float64 {
	return b.Y + b.H/2
}

// SetPosition moves the body to the given world position
func (b *Body) SetPosition(x, y float64) {
	b.X = x
	b.Y = y
}

// SetVelocity replaces both velocity components
func (b *Body) SetVelocity(vx, vy float64) {
	b.VX = vx
	b.VY = vy
}

// Integrate moves the body by its velocity for one tick
func (b *Body) Integrate() {
	b.X += b.VX
	b.Y += b.VY
}
