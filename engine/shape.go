package engine

import (
	"fmt"
	"math"
)

// Shape is a collidable 2D primitive. Positions are world coordinates. A
// shape is translated exactly once, when a Group absorbs it; afterwards it
// is read-only state shared by many queries.
type Shape interface {
	// Collides reports whether the point (x, y) lies inside the shape.
	// Containment uses closed intervals, so boundary points count as
	// inside.
	Collides(x, y float64) bool

	// Bounds returns the tight axis-aligned bounding box of the shape.
	Bounds() Bounds

	// translate shifts the shape's anchor. Called once, by NewGroup.
	translate(dx, dy float64)
}

// Bounds is an axis-aligned bounding box in world coordinates.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Union returns the smallest box containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	return Bounds{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Contains reports whether (x, y) lies inside the box, boundary included.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Circle is a circle centered on its anchor.
type Circle struct {
	X, Y   float64
	Radius float64
}

// NewCircle creates a circle. The radius must be positive.
func NewCircle(x, y, r float64) (*Circle, error) {
	if r <= 0 {
		return nil, fmt.Errorf("%w: circle radius %g must be positive", ErrInvalidConfig, r)
	}
	return &Circle{X: x, Y: y, Radius: r}, nil
}

// Collides compares squared distances to avoid the square root.
func (c *Circle) Collides(x, y float64) bool {
	dx := x - c.X
	dy := y - c.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Bounds returns the anchor expanded by the radius on each axis.
func (c *Circle) Bounds() Bounds {
	return Bounds{c.X - c.Radius, c.Y - c.Radius, c.X + c.Radius, c.Y + c.Radius}
}

func (c *Circle) translate(dx, dy float64) {
	c.X += dx
	c.Y += dy
}

// Rect is a rectangle centered on its anchor and rotated by Angle degrees.
// The angle is stored as given, not normalized; the trigonometry wraps it.
type Rect struct {
	X, Y  float64
	HalfW float64
	HalfH float64
	Angle float64
}

// NewRect creates a rectangle from its full width and height. Both must be
// positive.
func NewRect(x, y, w, h, angle float64) (*Rect, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: rectangle size %gx%g must be positive", ErrInvalidConfig, w, h)
	}
	return &Rect{X: x, Y: y, HalfW: w / 2, HalfH: h / 2, Angle: angle}, nil
}

// Collides translates the point into the rectangle's frame, undoes the
// rectangle's rotation, then tests the axis-aligned half extents. The order
// matters: rotating before translating is wrong for off-origin rectangles.
func (r *Rect) Collides(x, y float64) bool {
	local := Vec{x - r.X, y - r.Y}.Rotate(-radians(r.Angle))
	return local.X >= -r.HalfW && local.X <= r.HalfW &&
		local.Y >= -r.HalfH && local.Y <= r.HalfH
}

// Corners returns the four corners in world space, wound bottom-left,
// bottom-right, top-right, top-left.
func (r *Rect) Corners() [4]Vec {
	rot := radians(r.Angle)
	anchor := Vec{r.X, r.Y}
	local := [4]Vec{
		{-r.HalfW, -r.HalfH},
		{r.HalfW, -r.HalfH},
		{r.HalfW, r.HalfH},
		{-r.HalfW, r.HalfH},
	}
	var corners [4]Vec
	for i, p := range local {
		corners[i] = p.Rotate(rot).Add(anchor)
	}
	return corners
}

// Bounds returns the tight box over the rotated corners. For a rotated
// rectangle this differs from the unrotated width x height box.
func (r *Rect) Bounds() Bounds {
	corners := r.Corners()
	b := Bounds{corners[0].X, corners[0].Y, corners[0].X, corners[0].Y}
	for _, p := range corners[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

func (r *Rect) translate(dx, dy float64) {
	r.X += dx
	r.Y += dy
}
