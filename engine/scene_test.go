package engine

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSceneIDsMonotonic(t *testing.T) {
	s := NewScene()
	for want := 0; want < 5; want++ {
		id := s.AddGroup(NewGroup(float64(want), 0, mustCircle(t, 0, 0, 1)))
		require.Equal(t, want, id)
	}
	require.Equal(t, 5, s.Len())

	g, err := s.Group(3)
	require.NoError(t, err)
	require.Equal(t, 3, g.ID())
}

func TestSceneUnknownGroup(t *testing.T) {
	s := NewScene()
	s.AddGroup(NewGroup(0, 0, mustCircle(t, 0, 0, 1)))

	_, err := s.Group(1)
	require.ErrorIs(t, err, ErrUnknownGroup)
	_, err = s.Group(-1)
	require.ErrorIs(t, err, ErrUnknownGroup)

	err = s.ColorGroup(7, color.NRGBA{R: 255, A: 255})
	require.ErrorIs(t, err, ErrUnknownGroup)
	err = s.UncolorGroup(7)
	require.ErrorIs(t, err, ErrUnknownGroup)
}

func TestSceneColoring(t *testing.T) {
	s := NewScene()
	a := s.AddGroup(NewGroup(0, 0, mustCircle(t, 0, 0, 1)))
	b := s.AddGroup(NewGroup(5, 0, mustCircle(t, 0, 0, 1)))

	_, ok := s.Color(a)
	require.False(t, ok)
	require.Equal(t, []int{a, b}, s.UncoloredIDs())

	want := color.NRGBA{R: 255, G: 10, B: 20, A: 150}
	require.NoError(t, s.ColorGroup(a, want))

	got, ok := s.Color(a)
	require.True(t, ok)
	require.Equal(t, want, got)
	require.Equal(t, []int{b}, s.UncoloredIDs())

	require.NoError(t, s.UncolorGroup(a))
	_, ok = s.Color(a)
	require.False(t, ok)
	require.Equal(t, []int{a, b}, s.UncoloredIDs())
}
