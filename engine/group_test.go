package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustCircle(t *testing.T, x, y, r float64) *Circle {
	t.Helper()
	c, err := NewCircle(x, y, r)
	require.NoError(t, err)
	return c
}

func mustRect(t *testing.T, x, y, w, h, angle float64) *Rect {
	t.Helper()
	r, err := NewRect(x, y, w, h, angle)
	require.NoError(t, err)
	return r
}

func TestGroupTranslatesShapesOnce(t *testing.T) {
	c := mustCircle(t, 0, 0, 1)
	g := NewGroup(5, 0, c)

	// The shape's anchor moved to the group's anchor at absorption time.
	require.Equal(t, 5.0, c.X)
	require.Equal(t, 0.0, c.Y)

	require.True(t, g.Collides(5, 0))
	require.True(t, g.Collides(6, 0))
	require.False(t, g.Collides(6.1, 0))
}

func TestGroupCollidesAnyShape(t *testing.T) {
	g := NewGroup(0, 0,
		mustCircle(t, -5, 0, 1),
		mustRect(t, 5, 0, 2, 2, 0),
	)

	require.True(t, g.Collides(-5, 0))
	require.True(t, g.Collides(5, 0))
	require.False(t, g.Collides(0, 0), "gap between member shapes is outside")
}

func TestGroupBoundsUnion(t *testing.T) {
	g := NewGroup(10, 10,
		mustCircle(t, 0, 0, 1),
		mustRect(t, 2, 0, 2, 2, 0),
	)

	b, ok := g.Bounds()
	require.True(t, ok)
	// Circle at (10,10) r=1 union rect centered (12,10) half-extent 1,
	// both axis aligned, so the union is exact.
	require.Equal(t, Bounds{9, 9, 13, 11}, b)
}

func TestGroupEmptyBounds(t *testing.T) {
	g := NewGroup(42, 42)

	_, ok := g.Bounds()
	require.False(t, ok, "an empty group must not report an origin-containing box")
	require.False(t, g.Collides(42, 42))
}

func TestGroupIDAssignedByScene(t *testing.T) {
	g := NewGroup(0, 0, mustCircle(t, 0, 0, 1))
	require.Equal(t, -1, g.ID())

	s := NewScene()
	id := s.AddGroup(g)
	require.Equal(t, id, g.ID())
}
