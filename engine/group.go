package engine

// Group is an aggregate of shapes translated to a common anchor: the unit
// of identity, coloring and collision. A group is created once with a
// fixed shape set and never gains or loses shapes.
type Group struct {
	X, Y   float64
	shapes []Shape
	id     int
}

// NewGroup creates a group at (x, y) and absorbs the given shapes,
// translating each by the anchor. Ownership transfers to the group; a
// shape must not be shared between groups.
func NewGroup(x, y float64, shapes ...Shape) *Group {
	for _, s := range shapes {
		s.translate(x, y)
	}
	return &Group{X: x, Y: y, shapes: shapes, id: -1}
}

// ID returns the registry index assigned by Scene.AddGroup, or -1 for an
// unregistered group.
func (g *Group) ID() int {
	return g.id
}

// Shapes returns the owned shapes in insertion order.
func (g *Group) Shapes() []Shape {
	return g.shapes
}

// Collides reports whether any owned shape contains the point. Shape order
// only affects early-exit cost, not the result.
func (g *Group) Collides(x, y float64) bool {
	for _, s := range g.shapes {
		if s.Collides(x, y) {
			return true
		}
	}
	return false
}

// Bounds returns the union of the member shapes' bounds. ok is false for a
// group with no shapes: an empty group has no extent, and defaulting to a
// box around the origin would wrongly include points no shape covers.
func (g *Group) Bounds() (Bounds, bool) {
	if len(g.shapes) == 0 {
		return Bounds{}, false
	}
	b := g.shapes[0].Bounds()
	for _, s := range g.shapes[1:] {
		b = b.Union(s.Bounds())
	}
	return b, true
}
