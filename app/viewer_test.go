package app

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"lidarsim/engine"
)

func testViewer(t *testing.T, x, y, heading float64) *Viewer {
	t.Helper()
	cam, err := engine.NewCamera(x, y, heading, 90, 5)
	require.NoError(t, err)
	// No strip: these tests only exercise movement and blending, which
	// never touch the image.
	return &Viewer{Camera: cam, MaxRange: 100, StepSize: 1}
}

func TestViewerMoveForward(t *testing.T) {
	v := testViewer(t, 0, 0, 0)
	v.Move(-10, 0)
	require.InDelta(t, 10, v.Camera.X, 1e-9)
	require.InDelta(t, 0, v.Camera.Y, 1e-9)
}

func TestViewerMoveRelativeToHeading(t *testing.T) {
	v := testViewer(t, 0, 0, 90)
	v.Move(-10, 0)
	require.InDelta(t, 0, v.Camera.X, 1e-9)
	require.InDelta(t, 10, v.Camera.Y, 1e-9)

	// Strafing is perpendicular to the heading.
	v = testViewer(t, 0, 0, 90)
	v.Move(0, 10)
	require.InDelta(t, -10, v.Camera.X, 1e-9)
	require.InDelta(t, 0, v.Camera.Y, 1e-9)
}

func TestViewerTurnAccumulates(t *testing.T) {
	v := testViewer(t, 0, 0, 350)
	v.Turn(10)
	v.Turn(10)
	// Headings stay un-normalized; the trigonometry wraps them.
	require.Equal(t, 370.0, v.Camera.Heading)
}

func TestBlendSourceOver(t *testing.T) {
	dst := color.NRGBA{A: 255}
	red := color.NRGBA{R: 200, A: 255}
	require.Equal(t, color.NRGBA{R: 200, A: 255}, blend(dst, red))

	// A transparent source leaves the destination.
	require.Equal(t, dst, blend(dst, color.NRGBA{R: 200, A: 0}))

	// A half-transparent source mixes proportionally.
	half := blend(color.NRGBA{R: 100, A: 255}, color.NRGBA{R: 200, A: 102})
	require.Equal(t, uint8(140), half.R)
	require.Equal(t, uint8(255), half.A)
}
